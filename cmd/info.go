package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info name",
	Short: "Print a Pokémon's stats without generating a card",
	Long: `Info resolves the name, fetches the record and species from PokeAPI and
prints height, weight, types, stat bars, abilities and species details.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		input := strings.Join(args, " ")

		a, err := newApp(ctx, cfg.CardSuffix)
		if err != nil {
			return err
		}

		name, ok := a.finder.Resolve(input)
		if !ok {
			return noMatch(input)
		}

		rec, species, err := a.client.FetchByName(ctx, name)
		if err != nil {
			return fmt.Errorf("error fetching '%s': %v", name, err)
		}

		fmt.Println()
		for _, line := range recordLines(rec, species, terminalWidth()-4) {
			fmt.Println("  " + line)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}
