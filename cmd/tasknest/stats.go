package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmizzell/tasknest"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counters",
	Run:   showStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print as JSON")
}

func showStats(cmd *cobra.Command, args []string) {
	nest, release := mustOpenNest()
	defer release()
	requireUser(nest)

	stats := tasknest.ComputeStats(nest.State().Tasks, clock())
	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			fatal("Failed to encode stats: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Total:       %d\n", stats.Total)
	fmt.Printf("To do:       %d\n", stats.Pending)
	fmt.Printf("In progress: %d\n", stats.InProgress)
	fmt.Printf("Completed:   %d\n", stats.Completed)
	fmt.Printf("Overdue:     %d\n", stats.Overdue)
}
