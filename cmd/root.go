package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/pokecard/internal/config"
	"github.com/arcanaland/pokecard/internal/observability"
)

var (
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pokecard",
	Short: "Generate trading-card images for Pokémon",
	Long: `Pokecard resolves a (possibly misspelled) Pokémon name against the PokeAPI
catalog, fetches its record and renders a 400x700 trading-card PNG into the
output directory.

Configuration lives in $XDG_CONFIG_HOME/pokecard/config.toml and is created
with defaults on first run.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/pokecard/config.toml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	RootCmd.AddCommand(validateCmd)
}

// loadSettings reads the config file and builds the logger before any
// subcommand runs.
func loadSettings(cmd *cobra.Command, args []string) error {
	path := configFilePath()
	loaded, err := config.LoadConfigFrom(path)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %v", path, err)
	}

	l, err := observability.NewLogger(loaded.Logging)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logger.Debug("config loaded", zap.String("path", path), zap.String("output_dir", cfg.OutputDir))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
