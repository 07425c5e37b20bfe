package main

import (
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/transitlab/reseau/investigate"
	"github.com/transitlab/reseau/shortest"
)

var routeAlgorithm string

var routeCmd = &cobra.Command{
	Use:   "route <origin> <dest>",
	Short: "Compute the cheapest route between two stop ids",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	origin, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("origin %q: %w", args[0], err)
	}
	dest, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("dest %q: %w", args[1], err)
	}
	algo, err := investigate.ParseAlgorithm(routeAlgorithm)
	if err != nil {
		return err
	}

	feed, err := loadFeed()
	if err != nil {
		return err
	}

	var (
		cost int64
		path []int64
	)
	started := time.Now()
	switch algo {
	case investigate.AlgorithmDijkstra:
		cost, path, err = shortest.Dijkstra(feed.Network, origin, dest)
	case investigate.AlgorithmDijkstraHeap:
		cost, path, err = shortest.DijkstraHeap(feed.Network, origin, dest)
	default:
		cost, path, err = shortest.BellmanFord(feed.Network, origin, dest)
	}
	if err != nil {
		return err
	}
	log.Debugf("%s answered in %v", algo, time.Since(started))

	if cost == shortest.Infinity {
		fmt.Printf("no route from %d to %d\n", origin, dest)
		return nil
	}
	fmt.Printf("cost %d over %d stops (%s):\n", cost, len(path), algo)
	for _, id := range path {
		if stop, ok := feed.Stops[id]; ok {
			fmt.Printf("  %d\t%s\n", id, stop.Name)
		} else {
			fmt.Printf("  %d\n", id)
		}
	}

	return nil
}
