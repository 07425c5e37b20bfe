// Package main provides the reseau CLI: shortest-path queries, stop
// lookups, and algorithm timing over a transit feed directory.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
