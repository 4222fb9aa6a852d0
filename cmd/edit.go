package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/hecto/internal/log"
	"github.com/zjrosen/hecto/internal/row"
)

var errBadOp = errors.New("invalid edit operation")

// editOp is one parsed step of `hecto edit`.
type editOp struct {
	name string // insert, delete, split or join
	at   int
	char rune
}

func (op editOp) String() string {
	switch op.name {
	case "insert":
		return fmt.Sprintf("insert=%d:%q", op.at, op.char)
	case "join":
		return "join"
	default:
		return fmt.Sprintf("%s=%d", op.name, op.at)
	}
}

// parseOp parses insert=AT:CHAR, delete=AT, split=AT or join. CHAR is a
// single rune or a Go escape such as \t or \u0301.
func parseOp(s string) (editOp, error) {
	name, arg, hasArg := strings.Cut(s, "=")
	switch name {
	case "join":
		if hasArg {
			return editOp{}, fmt.Errorf("%w %q: join takes no argument", errBadOp, s)
		}
		return editOp{name: name}, nil
	case "delete", "split":
		at, err := strconv.Atoi(arg)
		if !hasArg || err != nil {
			return editOp{}, fmt.Errorf("%w %q: want %s=AT", errBadOp, s, name)
		}
		return editOp{name: name, at: at}, nil
	case "insert":
		atStr, charStr, ok := strings.Cut(arg, ":")
		at, err := strconv.Atoi(atStr)
		if !hasArg || !ok || err != nil || charStr == "" {
			return editOp{}, fmt.Errorf("%w %q: want insert=AT:CHAR", errBadOp, s)
		}
		c, _, tail, err := strconv.UnquoteChar(charStr, 0)
		if err != nil || tail != "" {
			return editOp{}, fmt.Errorf("%w %q: CHAR must be one character", errBadOp, s)
		}
		return editOp{name: name, at: at, char: c}, nil
	default:
		return editOp{}, fmt.Errorf("%w %q", errBadOp, s)
	}
}

// applyOps runs ops against r in order. A split keeps the tail so a later
// join can append it back; the tail left over at the end is returned.
func applyOps(r *row.Row, ops []editOp) *row.Row {
	var tail *row.Row
	for _, op := range ops {
		switch op.name {
		case "insert":
			r.Insert(op.at, op.char)
		case "delete":
			r.Delete(op.at)
		case "split":
			tail = r.Split(op.at)
		case "join":
			r.Append(tail)
			tail = nil
		}
		log.Debug(log.CatRow, "Applied edit", "op", op, "len", r.Len())
	}
	return tail
}

func newEditCmd(_ *env) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "edit <text|-> OP...",
		Short: "Apply grapheme-indexed edits to a line",
		Long: `Apply edit operations to the line in order and print the result.

Operations:
  insert=AT:CHAR   insert CHAR before grapheme AT (appends when AT >= length)
  delete=AT        remove grapheme AT (no-op when out of range)
  split=AT         cut the line at grapheme AT, holding the tail
  join             append the held tail back onto the line

CHAR is one character or a Go escape such as \t or \u0301.`,
		Example: `  hecto edit "héllo" insert=1:X delete=0
  hecto edit abc split=1 insert=1:Z join`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := make([]editOp, 0, len(args)-1)
			for _, a := range args[1:] {
				op, err := parseOp(a)
				if err != nil {
					return err
				}
				ops = append(ops, op)
			}

			r, err := readRow(cmd, args[0])
			if err != nil {
				return err
			}
			before := r.Clone()
			tail := applyOps(r, ops)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "row: %q (%d)\n", r.String(), r.Len())
			if tail != nil {
				fmt.Fprintf(out, "tail: %q (%d)\n", tail.String(), tail.Len())
			}
			if showDiff {
				if d, ok := graphemeDiff(before, r); ok {
					fmt.Fprintf(out, "diff: %s\n", d)
				} else {
					fmt.Fprintf(out, "diff: skipped, more than %d graphemes\n", diffMaxGraphemes)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "also print a per-grapheme diff of the line")
	return cmd
}
