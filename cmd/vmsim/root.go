package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "vmsim",
	Short: "vmsim simulates demand-paged virtual memory under a FIFO " +
		"replacement policy.",
	Long: `vmsim drives a page table, a fixed pool of physical frames, and a ` +
		`FIFO eviction queue through a sequence of page references, reporting ` +
		`page faults, swap-outs, and the final frame occupancy. Swapped-out ` +
		`pages are logged to a simulated swap file.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}
