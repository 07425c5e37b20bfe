package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/transitlab/reseau/investigate"
)

var (
	invSamples    int
	invSeed       int64
	invAlgorithms []string
	invConfigPath string
)

var investigateCmd = &cobra.Command{
	Use:   "investigate",
	Short: "Time the shortest-path algorithms on random stop pairs",
	Args:  cobra.NoArgs,
	RunE:  runInvestigate,
}

func runInvestigate(cmd *cobra.Command, args []string) error {
	if invConfigPath != "" {
		cfg, err := loadInvestigateConfig(invConfigPath)
		if err != nil {
			return err
		}
		// file values fill in whatever the command line left untouched
		flags := cmd.Flags()
		if cfg.Data != "" && !flags.Changed("data") {
			dataDir = cfg.Data
		}
		if cfg.Samples != 0 && !flags.Changed("samples") {
			invSamples = cfg.Samples
		}
		if cfg.Seed != 0 && !flags.Changed("seed") {
			invSeed = cfg.Seed
		}
		if len(cfg.Algorithms) > 0 && !flags.Changed("algorithms") {
			invAlgorithms = cfg.Algorithms
		}
		log.Debugf("applied config %s", invConfigPath)
	}

	opts := []investigate.Option{
		investigate.WithSamples(invSamples),
		investigate.WithSeed(invSeed),
	}
	if len(invAlgorithms) > 0 {
		algos := make([]investigate.Algorithm, 0, len(invAlgorithms))
		for _, name := range invAlgorithms {
			a, err := investigate.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			algos = append(algos, a)
		}
		opts = append(opts, investigate.WithAlgorithms(algos...))
	}

	feed, err := loadFeed()
	if err != nil {
		return err
	}
	reports, err := investigate.Run(feed.Network, opts...)
	if err != nil {
		return err
	}
	for _, rep := range reports {
		fmt.Printf("%-14s samples=%d reachable=%d total=%v avg=%v\n",
			rep.Algorithm, rep.Samples, rep.Reachable, rep.Total, rep.Average)
	}

	return nil
}
