package main

import (
	"bufio"
	"os"

	"github.com/matsen/abnt/internal/bibtex"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fixYearsCmd)
}

var fixYearsCmd = &cobra.Command{
	Use:   "fix-years <prefix> [file.bib...]",
	Short: "Prefix citation keys and replace placeholder years",
	Long: `Reprint a BibTeX database with rewritten citation keys.

Every key is prefixed with <prefix>, and the placeholder year 2021 in the
key is replaced with the record's year field. Tags are reprinted in their
original order with aligned values. Output is always BibTeX.

Example:
  abnt fix-years Ec < exported.bib > refs.bib`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFixYears,
}

func runFixYears(cmd *cobra.Command, args []string) error {
	prefix := args[0]
	records := mustReadRecords(args[1:])

	for i, rec := range records {
		records[i] = bibtex.Rekey(rec, prefix)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := bibtex.WriteAll(out, records); err != nil {
		exitWithError(ExitError, "writing output: %v", err)
	}
	if err := out.Flush(); err != nil {
		exitWithError(ExitError, "writing output: %v", err)
	}
	return nil
}
