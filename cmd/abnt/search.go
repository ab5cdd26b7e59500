package main

import (
	"fmt"

	"github.com/matsen/abnt/internal/reference"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search cached citations by keyword",
	Long: `Full-text search over the formatted citations in the cache.
Accents are ignored. Run 'abnt index' first.

Examples:
  abnt search sesmarias
  abnt search "Rio Grande"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	citations, err := db.Search(args[0], searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	// Empty result is not an error
	if citations == nil {
		citations = []reference.Citation{}
	}

	if humanOutput {
		printCitations(citations, "No citations found")
	} else {
		outputJSON(citations)
	}
	return nil
}

func printCitations(citations []reference.Citation, empty string) {
	if len(citations) == 0 {
		fmt.Println(empty)
		return
	}
	fmt.Printf("Found %d citations:\n\n", len(citations))
	for i, c := range citations {
		fmt.Printf("[%d] %s\n", i+1, c.Key)
		fmt.Printf("    %s\n\n", c.Text)
	}
}
