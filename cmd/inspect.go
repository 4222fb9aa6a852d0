package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/hecto/internal/log"
	"github.com/zjrosen/hecto/internal/ui/styles"
)

func newInspectCmd(_ *env) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text|->",
		Short: "Show grapheme, byte and cell counts of a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := readRow(cmd, args[0])
			if err != nil {
				return err
			}
			log.Debug(log.CatRow, "Inspecting row", "len", r.Len(), "bytes", len(r.RawBytes()))

			out := cmd.OutOrStdout()
			label := func(s string) string { return styles.LabelStyle.Render(fmt.Sprintf("%-9s", s)) }

			fmt.Fprintf(out, "%s %q\n", label("text:"), r.String())
			fmt.Fprintf(out, "%s %d\n", label("length:"), r.Len())
			fmt.Fprintf(out, "%s %d\n", label("bytes:"), len(r.RawBytes()))
			fmt.Fprintf(out, "%s %d\n", label("width:"), r.DisplayWidth())
			fmt.Fprintf(out, "%s %t\n", label("empty:"), r.IsEmpty())

			clusters := make([]string, 0, r.Len())
			for i := range r.Len() {
				clusters = append(clusters, fmt.Sprintf("%d:%q", i, r.Grapheme(i)))
			}
			fmt.Fprintf(out, "%s %s\n", label("clusters:"), strings.Join(clusters, " "))
			return nil
		},
	}
}
