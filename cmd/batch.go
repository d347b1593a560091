package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch name...",
	Short: "Generate cards for several Pokémon concurrently",
	Long: `Batch generates one card per name. Requests run with bounded concurrency
and a minimum interval between starts to stay polite with PokeAPI.
A failed name is reported and does not stop the others.

Examples:
  pokecard batch bulbasaur charmander squirtle
  pokecard batch --concurrency 2 --interval 1s pikachu raichu`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		concurrency, _ := cmd.Flags().GetInt("concurrency")
		interval, _ := cmd.Flags().GetDuration("interval")
		suffix := cfg.CardSuffix
		if cmd.Flags().Changed("suffix") {
			suffix, _ = cmd.Flags().GetString("suffix")
		}

		a, err := newApp(ctx, suffix)
		if err != nil {
			return err
		}

		items, err := a.generator.Batch(ctx, args, concurrency, interval)
		failed := printBatch(items)
		if err != nil {
			return fmt.Errorf("batch interrupted: %v", err)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d cards failed", failed, len(items))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntP("concurrency", "c", 4, "Maximum cards generated at once")
	batchCmd.Flags().Duration("interval", 250*time.Millisecond, "Minimum delay between starting requests")
	batchCmd.Flags().StringP("suffix", "s", "", "Suffix appended to each card file name (overrides card_suffix)")
}
