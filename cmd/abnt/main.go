// Package main provides the abnt CLI entry point.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/matsen/abnt/internal/bibtex"
	"github.com/matsen/abnt/internal/config"
	"github.com/matsen/abnt/internal/reference"
	"github.com/matsen/abnt/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	// verbose forces debug logging
	verbose bool
	// appConfig is loaded before any command runs
	appConfig *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "abnt",
	Short: "Format BibTeX references in the ABNT style",
	Long: `abnt renders BibTeX databases as ABNT (NBR 6023) reference lists.

Records are read from the files given as arguments, or from stdin. Commands
that report results output JSON by default for easy integration with other
tools; use --human for readable text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnvironment,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
	rootCmd.Version = Version
}

// loadEnvironment loads .env, the configuration and the logger.
func loadEnvironment(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	appConfig = cfg

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	config.NewLogger(os.Stderr, level, cfg.LogFormat)
	slog.Debug("configuration loaded", "path", config.Path(), "db_path", cfg.DBPath)
	return nil
}

// mustReadRecords parses the BibTeX files named in args, or stdin when args
// is empty or "-". Exits on error.
func mustReadRecords(args []string) []reference.Record {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		records, err := bibtex.Parse(os.Stdin)
		if err != nil {
			exitWithError(ExitDataError, "parsing stdin: %v", err)
		}
		slog.Debug("parsed records", "source", "stdin", "count", len(records))
		return records
	}

	var records []reference.Record
	for _, path := range args {
		recs, err := bibtex.ParseFile(path)
		if err != nil {
			exitWithError(ExitDataError, "parsing %s: %v", path, err)
		}
		slog.Debug("parsed records", "source", path, "count", len(recs))
		records = append(records, recs...)
	}
	return records
}

// withoutSkipped drops the records whose key starts with the configured
// skip prefix.
func withoutSkipped(records []reference.Record, prefix string) []reference.Record {
	kept := records[:0:0]
	for _, rec := range records {
		if rec.HasPrefix(prefix) {
			slog.Debug("skipping record", "key", rec.Key, "prefix", prefix)
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// mustOpenDatabase opens the citation cache, creating its directory.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase() *storage.DB {
	dbPath := appConfig.DBPath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}
