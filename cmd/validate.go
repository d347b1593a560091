package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pokecard/internal/creature"
	"github.com/arcanaland/pokecard/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate name",
	Short: "Check a Pokémon's PokeAPI record",
	Long: `Validate fetches the record for a name and checks it the way the card
renderer would: identity, types, stats and references. Errors make the
record unusable; warnings only degrade the card.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cfg.CardSuffix)
		if err != nil {
			return err
		}

		name, ok := a.finder.Resolve(args[0])
		if !ok {
			return noMatch(args[0])
		}

		return validateRecord(ctx, os.Stdout, a.client, name)
	},
}

// recordSource fetches a record without rejecting malformed ones.
type recordSource interface {
	FetchRecord(ctx context.Context, name string) (*creature.Record, error)
}

// validateRecord fetches name from src and writes every validation error and
// warning to w. It fails when the record has errors.
func validateRecord(ctx context.Context, w io.Writer, src recordSource, name string) error {
	rec, err := src.FetchRecord(ctx, name)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	results := validator.NewValidator(rec).Validate()

	fmt.Fprintln(w, "Validation Results:")
	fmt.Fprintln(w, "-------------------")

	if len(results.Errors) == 0 {
		fmt.Fprintf(w, "✅ Record '%s' is valid.\n", name)
	} else {
		fmt.Fprintf(w, "❌ Record '%s' has %d validation errors:\n", name, len(results.Errors))
		for i, err := range results.Errors {
			fmt.Fprintf(w, "%d. %s\n", i+1, err)
		}
	}

	if len(results.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for i, warn := range results.Warnings {
			fmt.Fprintf(w, "%d. %s\n", i+1, warn)
		}
	}

	if len(results.Errors) > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}
