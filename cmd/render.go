package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/hecto/internal/log"
)

func newRenderCmd(_ *env) *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "render <text|->",
		Short: "Print the display form of graphemes [start, end)",
		Long: `Print graphemes [start, end) of the line as they would be displayed,
with tabs expanded to four spaces. Out-of-range bounds are clamped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := readRow(cmd, args[0])
			if err != nil {
				return err
			}
			if end < 0 {
				end = r.Len()
			}
			log.Debug(log.CatRow, "Rendering row", "start", start, "end", end, "len", r.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Render(start, end))
			return err
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", 0, "first grapheme to render")
	cmd.Flags().IntVarP(&end, "end", "e", -1, "grapheme to stop before (default: end of line)")
	return cmd
}
