package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/octypes-go/internal/octypes/leaktrack"
)

var leaksCmd = &cobra.Command{
	Use:   "leaks",
	Short: "Report anything still tracked as live in this process",
	Run: func(cmd *cobra.Command, args []string) {
		report := leaktrack.Report()
		if report == "" {
			fmt.Println("no outstanding allocations")
			return
		}
		fmt.Print(report)
	},
}
