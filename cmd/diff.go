package cmd

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/hecto/internal/row"
)

// clusterBase is the first code point of Supplementary Private Use Area-A.
// Each distinct cluster is mapped to one code point from here so the diff
// runs per grapheme instead of per rune.
const clusterBase = 0xF0000

// diffMaxGraphemes bounds the combined length of the two rows. It keeps
// every cluster id below U+10FFFE.
const diffMaxGraphemes = 100_000

// graphemeDiff describes how after differs from before, one grapheme at a
// time, in word-diff notation: [-removed-] and {+added+}. Returns false when
// the rows together exceed diffMaxGraphemes.
func graphemeDiff(before, after *row.Row) (string, bool) {
	if before.Len()+after.Len() > diffMaxGraphemes {
		return "", false
	}

	var (
		ids   = make(map[string]rune)
		names []string
	)
	encode := func(r *row.Row) []rune {
		out := make([]rune, r.Len())
		for i := range out {
			g := r.Grapheme(i)
			id, ok := ids[g]
			if !ok {
				id = rune(clusterBase + len(names))
				ids[g] = id
				names = append(names, g)
			}
			out[i] = id
		}
		return out
	}
	decode := func(text string) string {
		var b strings.Builder
		for _, id := range text {
			b.WriteString(names[id-clusterBase])
		}
		return b.String()
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(encode(before), encode(after), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		text := decode(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(text)
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + text + "+}")
		}
	}
	return b.String(), true
}
