package main

import (
	"github.com/matsen/abnt/internal/reference"
	"github.com/matsen/abnt/internal/storage"
	"github.com/spf13/cobra"
)

var getJSONL string

func init() {
	getCmd.Flags().StringVar(&getJSONL, "jsonl", "", "Look up the key in a JSONL export instead of the cache")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a formatted citation by key",
	Long: `Get a single formatted citation by its citation key.

Example:
  abnt get Azevedo1959`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	var c *reference.Citation
	if getJSONL != "" {
		citations, err := storage.ReadAll(getJSONL)
		if err != nil {
			exitWithError(ExitDataError, "reading %s: %v", getJSONL, err)
		}
		if i, ok := storage.FindByKey(citations, key); ok {
			c = &citations[i]
		}
	} else {
		db := mustOpenDatabase()
		defer db.Close()

		var err error
		c, err = db.GetByKey(key)
		if err != nil {
			exitWithError(ExitError, "getting citation: %v", err)
		}
	}

	if c == nil {
		exitWithError(ExitError, "citation not found: %s", key)
	}

	if humanOutput {
		outputHuman("%s\n", c.Text)
	} else {
		outputJSON(c)
	}
	return nil
}
