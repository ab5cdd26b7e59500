package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/matsen/abnt/internal/abnt"
	"github.com/matsen/abnt/internal/punct"
	"github.com/matsen/abnt/internal/reference"
	"github.com/matsen/abnt/internal/storage"
	"github.com/spf13/cobra"
)

var (
	formatBare       bool
	formatJSONL      string
	formatSkipPrefix string
)

func init() {
	formatCmd.Flags().BoolVar(&formatBare, "bare", false, "Print only the citations, without the wrapper and heading")
	formatCmd.Flags().StringVar(&formatJSONL, "jsonl", "", "Also write the citations as JSONL to this file")
	formatCmd.Flags().StringVar(&formatSkipPrefix, "skip-prefix", "", "Skip records whose key starts with this prefix (default from config)")
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format [file.bib...]",
	Short: "Render a BibTeX database as an ABNT reference list",
	Long: `Render a BibTeX database as an ABNT reference list.

Records whose citation key starts with the skip prefix (config key
skip-prefix, "Self" by default) are left out. The remaining records are
formatted, sorted and printed as a Markdown section. Doubled punctuation is
removed from the output.

The list is printed as Markdown regardless of --human. If any record cannot
be formatted, every failure is reported and nothing is printed.

Examples:
  abnt format refs.bib
  abnt format --bare < refs.bib
  abnt format refs.bib --jsonl citations.jsonl`,
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	prefix := appConfig.SkipPrefix
	if cmd.Flags().Changed("skip-prefix") {
		prefix = formatSkipPrefix
	}

	records := withoutSkipped(mustReadRecords(args), prefix)
	citations := mustFormatAll(records)

	if formatJSONL != "" {
		if err := storage.WriteAll(formatJSONL, cleaned(citations)); err != nil {
			exitWithError(ExitError, "writing JSONL: %v", err)
		}
		slog.Debug("wrote citations", "path", formatJSONL, "count", len(citations))
	}

	out := bufio.NewWriter(os.Stdout)
	if err := writeReferenceList(out, citations, appConfig.Heading, formatBare); err != nil {
		exitWithError(ExitError, "writing output: %v", err)
	}
	if err := out.Flush(); err != nil {
		exitWithError(ExitError, "writing output: %v", err)
	}
	return nil
}

// mustFormatAll formats records, exiting with every failure reported.
func mustFormatAll(records []reference.Record) []reference.Citation {
	citations, err := abnt.FormatAll(records)
	if err != nil {
		exitWithError(ExitDataError, "formatting references:\n%v", err)
	}
	slog.Debug("formatted citations", "count", len(citations))
	return citations
}

// cleaned returns copies of citations with doubled punctuation removed, as
// printed by format.
func cleaned(citations []reference.Citation) []reference.Citation {
	out := make([]reference.Citation, len(citations))
	for i, c := range citations {
		c.Text = punct.Clean(c.Text)
		out[i] = c
	}
	return out
}

const referencesOpen = `<div class="references txt-sml txt-left proportional-nums">`

// writeReferenceList prints the citations one paragraph each, wrapped in the
// references block and heading unless bare is set. Citation text goes
// through the punctuation filter.
func writeReferenceList(w io.Writer, citations []reference.Citation, heading string, bare bool) error {
	if !bare {
		if _, err := fmt.Fprintf(w, "%s\n\n## %s\n\n", referencesOpen, heading); err != nil {
			return err
		}
	}

	pw := punct.NewWriter(w)
	for _, c := range citations {
		if _, err := fmt.Fprintf(pw, "%s\n\n", c.Text); err != nil {
			return err
		}
	}
	if err := pw.Flush(); err != nil {
		return err
	}

	if !bare {
		if _, err := io.WriteString(w, "</div>\n"); err != nil {
			return err
		}
	}
	return nil
}
