package main

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/spf13/cobra"

	"github.com/transitlab/reseau/transit"
)

var nearCount int

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "Stop lookups",
}

var stopsNearCmd = &cobra.Command{
	Use:   "near <lon> <lat>",
	Short: "List the stops closest to a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE:  runStopsNear,
}

func runStopsNear(cmd *cobra.Command, args []string) error {
	lon, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("lon %q: %w", args[0], err)
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("lat %q: %w", args[1], err)
	}

	feed, err := loadFeed()
	if err != nil {
		return err
	}
	index := transit.NewStopIndex(feed.Stops)

	query := orb.Point{lon, lat}
	for _, stop := range index.Nearest(query, nearCount) {
		fmt.Printf("%d\t%s\t%.0f m\n", stop.ID, stop.Name, geo.Distance(query, stop.Location))
	}

	return nil
}
