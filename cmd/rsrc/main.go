package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "rsrc",
	Short: "Inspect compiled resource containers",
	Long: `rsrc decodes compiled resource containers (resource tables, compiled
XML documents, compiled file headers) and prints their contents.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var verbose bool

func init() {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log decode progress")
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rsrc: %v\n", err)
		os.Exit(1)
	}
}
