package main

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/matsen/abnt/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  abnt config                        # Show effective config
  abnt config heading                # Get specific value
  abnt config skip-prefix Draft      # Set value in the config file

Keys:
  skip-prefix  Records whose key starts with this prefix are not formatted (default Self)
  heading      Title of the reference list (default Referências)
  db-path      Citation cache location (default $XDG_CACHE_HOME/abnt/citations.db)
  log-level    debug, info, warn or error (default warn)
  log-format   text or json (default text)

Values shown are effective: environment variables (ABNT_SKIP_PREFIX,
ABNT_HEADING, ABNT_DB_PATH, ABNT_LOG_LEVEL, ABNT_LOG_FORMAT) override the
file. Setting a value only writes the file.`,
	Args: cobra.MaximumNArgs(2),
	// An invalid config file must not prevent fixing it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := config.Path()

	if len(args) == 2 {
		key, value := args[0], args[1]

		cfg, err := config.LoadFile(path)
		if err != nil {
			exitWithError(ExitConfigError, "loading config: %v", err)
		}
		if err := cfg.Set(key, value); err != nil {
			exitWithError(configErrorCode(err), "%v", err)
		}
		if err := cfg.Save(path); err != nil {
			exitWithError(ExitError, "saving config: %v", err)
		}

		if humanOutput {
			outputHuman("%s set to %s in %s\n", key, value, path)
		} else {
			outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// One arg: get specific value
	if len(args) == 1 {
		value, err := cfg.Get(args[0])
		if err != nil {
			exitWithError(configErrorCode(err), "%v", err)
		}
		if humanOutput {
			outputHuman("%s\n", value)
		} else {
			outputJSON(map[string]string{args[0]: value})
		}
		return nil
	}

	// No args: show all config
	if humanOutput {
		outputHuman("config:      %s\n", path)
		for _, key := range config.Keys {
			value, _ := cfg.Get(key)
			outputHuman("%-12s %s\n", key+":", value)
		}
	} else {
		outputJSON(cfg)
	}
	return nil
}

// configErrorCode maps an unknown key to a usage error and anything else to
// a configuration error.
func configErrorCode(err error) int {
	if errors.Is(err, config.ErrUnknownKey) {
		return ExitError
	}
	return ExitConfigError
}
