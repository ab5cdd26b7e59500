package main

import (
	"log/slog"

	"github.com/matsen/abnt/internal/bibtex"
	"github.com/matsen/abnt/internal/reference"
	"github.com/spf13/cobra"
)

var indexFromJSONL string

func init() {
	indexCmd.Flags().StringVar(&indexFromJSONL, "from-jsonl", "", "Rebuild from a JSONL export instead of BibTeX")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [file.bib...]",
	Short: "Rebuild the citation cache",
	Long: `Format a BibTeX database and store the citations in the SQLite cache
used by get, search and list. The cache is replaced, not merged.

When a citation key appears more than once, only the first record is kept.

Examples:
  abnt index refs.bib
  abnt index --from-jsonl citations.jsonl`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	var (
		count int
		err   error
	)
	if indexFromJSONL != "" {
		count, err = db.RebuildFromJSONL(indexFromJSONL)
	} else {
		records := uniqueRecords(withoutSkipped(mustReadRecords(args), appConfig.SkipPrefix))
		count, err = db.RebuildFromCitations(cleaned(mustFormatAll(records)))
	}
	if err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		outputHuman("Indexed %d citations in %s\n", count, appConfig.DBPath)
	} else {
		outputJSON(StatusResponse{Status: "indexed", Path: appConfig.DBPath, Citations: count})
	}
	return nil
}

// uniqueRecords keeps the first record of each citation key.
func uniqueRecords(records []reference.Record) []reference.Record {
	idx := bibtex.NewIndex()
	kept := records[:0:0]
	for _, rec := range records {
		if idx.HasEntry(rec.Key, "") {
			slog.Warn("duplicate citation key, keeping first record", "key", rec.Key)
			continue
		}
		idx.Add(rec)
		kept = append(kept, rec)
	}
	return kept
}
