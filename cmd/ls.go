package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pokecard/internal/card"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List generated cards in the output directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := card.List(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("error reading output directory: %v", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No cards found in %s.\n", cfg.OutputDir)
			fmt.Println("Run 'pokecard card <name>' to generate one.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("  %-24s %s\n", e.Name, e.Path)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)
}
