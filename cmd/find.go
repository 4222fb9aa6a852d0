package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/hecto/internal/log"
	"github.com/zjrosen/hecto/internal/row"
)

func newFindCmd(e *env) *cobra.Command {
	var (
		query     string
		at        int
		direction string
	)

	cmd := &cobra.Command{
		Use:   "find <text|->",
		Short: "Print the grapheme index of a query within a line",
		Long: `Search the line for --query starting at grapheme --at.

Forward returns the first match at or after --at. Backward returns the last
match strictly before --at (default for backward: end of line). The default
direction comes from search.direction in the config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := readRow(cmd, args[0])
			if err != nil {
				return err
			}

			if direction == "" {
				direction = e.cfg.Search.Direction
			}
			dir, err := row.ParseDirection(direction)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("at") && dir == row.Backward {
				at = r.Len()
			}

			idx, found := r.Find(query, at, dir)
			log.Debug(log.CatRow, "Find", "query", query, "at", at, "direction", dir, "found", found, "index", idx)
			if !found {
				return fmt.Errorf("%q from %d %s: %w", query, at, dir, ErrNotFound)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), idx)
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "text to search for (required)")
	cmd.Flags().IntVarP(&at, "at", "a", 0, "grapheme index to start from")
	cmd.Flags().StringVarP(&direction, "direction", "d", "", "forward or backward")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}
