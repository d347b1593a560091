package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pokecard/internal/generator"
)

var cardCmd = &cobra.Command{
	Use:   "card [name]",
	Short: "Generate a trading card for a Pokémon",
	Long: `Card resolves the given name to the closest catalog entry, fetches its
record from PokeAPI and writes a PNG card to the output directory.
Misspellings are forgiven; with no name a random Pokémon is picked.

Examples:
  pokecard card charizard
  pokecard card charzard --preview
  pokecard card mr mime --suffix _brutalist
  pokecard card`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		suffix := cfg.CardSuffix
		if cmd.Flags().Changed("suffix") {
			suffix, _ = cmd.Flags().GetString("suffix")
		}
		showPreview, _ := cmd.Flags().GetBool("preview")

		a, err := newApp(ctx, suffix)
		if err != nil {
			return err
		}

		input := strings.TrimSpace(strings.Join(args, " "))
		if input == "" {
			input = a.generator.Random(ctx)
			fmt.Printf("🎲 Random Pokémon selected: %s\n", colorize.HiWhiteString(title(input)))
		}

		fmt.Printf("🔍 Searching for '%s'...\n", input)
		res, err := a.generator.Generate(ctx, input)
		if err != nil {
			return fmt.Errorf("error generating card for '%s': %v", input, err)
		}
		if !res.Matched {
			return noMatch(input)
		}
		reportMatch(res)

		if res.Card.Placeholder {
			colorize.Yellow("⚠️  No sprite available, the card uses a placeholder.")
		}
		fmt.Printf("🎉 Card generated: %s\n", colorize.GreenString(res.Card.Path))

		if showPreview {
			return printPreview(res.Card.Path, func(width int) []string {
				return recordLines(res.Record, res.Species, width)
			})
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)

	cardCmd.Flags().BoolP("preview", "p", false, "Show the generated card in the terminal")
	cardCmd.Flags().StringP("suffix", "s", "", "Suffix appended to the card file name (overrides card_suffix)")
}

// printBatch reports one line per batch item and returns the failure count.
func printBatch(items []generator.BatchItem) int {
	failed := 0
	for _, item := range items {
		res := item.Result
		switch {
		case item.Err != nil:
			failed++
			fmt.Printf("%s %s: %v\n", colorize.RedString("✗"), res.Input, item.Err)
		case !res.Matched:
			failed++
			fmt.Printf("%s %s: no match\n", colorize.YellowString("?"), res.Input)
		default:
			fmt.Printf("%s %s → %s\n", colorize.GreenString("✓"), res.Input, res.Card.Path)
		}
	}
	return failed
}
