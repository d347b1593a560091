package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find query",
	Short: "Show the catalog entries closest to a query",
	Long: `Find scores the query against every catalog name and lists the best
matches at or above the similarity cutoff, best first.

Examples:
  pokecard find charzard
  pokecard find --limit 10 pika`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		query := strings.Join(args, " ")

		a, err := newApp(cmd.Context(), cfg.CardSuffix)
		if err != nil {
			return err
		}

		matches := a.finder.Rank(query, limit)
		if len(matches) == 0 {
			return noMatch(query)
		}

		for i, m := range matches {
			name := m.Name
			if i == 0 {
				name = colorize.HiWhiteString(name)
			}
			fmt.Printf("  %s  %s\n", colorize.CyanString("%.3f", m.Score), name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(findCmd)

	findCmd.Flags().IntP("limit", "n", 5, "Maximum matches to show (0 for all)")
}
