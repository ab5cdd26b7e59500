package main

import (
	"github.com/matsen/abnt/internal/reference"
	"github.com/spf13/cobra"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum citations to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached citations in reference-list order",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	citations, err := db.ListAll(listLimit)
	if err != nil {
		exitWithError(ExitError, "listing citations: %v", err)
	}
	if citations == nil {
		citations = []reference.Citation{}
	}

	if humanOutput {
		printCitations(citations, "No citations cached (run 'abnt index')")
	} else {
		outputJSON(citations)
	}
	return nil
}
