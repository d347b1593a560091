package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pokecard/internal/config"
)

// configCmd manages the config file itself, so it skips loadSettings.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pokecard config file",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			fmt.Println("Config file already exists at:", path)
			fmt.Println("Use --force to overwrite it with defaults.")
			return nil
		}

		if err := config.WriteConfig(path, config.Default()); err != nil {
			return err
		}
		fmt.Println("Config file initialized at:", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(configFilePath())
	},
}

func configFilePath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.GetConfigFilePath()
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}
