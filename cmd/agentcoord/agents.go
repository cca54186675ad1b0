package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the built-in agent roster",
	Run: func(cmd *cobra.Command, args []string) {
		bold := color.New(color.Bold)
		for _, entry := range builtinRoster {
			bold.Printf("%-16s", entry.Name)
			fmt.Printf(" kind=%-9s %s\n", entry.Kind, strings.Join(entry.Capabilities, ", "))
		}
	},
}
