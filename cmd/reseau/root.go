package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/transitlab/reseau/transit"
)

var (
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:          "reseau",
	Short:        "Query and benchmark shortest paths over a transit feed",
	Long:         `reseau loads a transit feed directory (stops.txt, links.txt) and answers shortest-path queries, nearest-stop lookups, and algorithm timing runs against it.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "data", "feed directory holding stops.txt and links.txt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	routeCmd.Flags().StringVarP(&routeAlgorithm, "algorithm", "a", "dijkstra-heap", "dijkstra, dijkstra-heap or bellman-ford")
	rootCmd.AddCommand(routeCmd)

	stopsNearCmd.Flags().IntVarP(&nearCount, "count", "k", 5, "number of stops to return")
	stopsCmd.AddCommand(stopsNearCmd)
	rootCmd.AddCommand(stopsCmd)

	investigateCmd.Flags().IntVarP(&invSamples, "samples", "s", 10, "number of (origin, dest) pairs to time")
	investigateCmd.Flags().Int64Var(&invSeed, "seed", 0, "pair sampler seed (0 = fixed default)")
	investigateCmd.Flags().StringSliceVar(&invAlgorithms, "algorithms", nil, "algorithms to measure (default all)")
	investigateCmd.Flags().StringVarP(&invConfigPath, "config", "c", "", "YAML config file; explicit flags override it")
	rootCmd.AddCommand(investigateCmd)
}

// loadFeed reads the feed under --data and logs how long it took.
func loadFeed() (*transit.Feed, error) {
	started := time.Now()
	feed, err := transit.Load(dataDir)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d stops, %d links from %s in %v",
		len(feed.Stops), feed.Network.EdgeCount(), dataDir, time.Since(started))

	return feed, nil
}
