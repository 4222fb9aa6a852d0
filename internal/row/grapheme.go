package row

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// clusterIter walks the grapheme clusters of a string front to back.
//
//	it := newClusterIter("héllo")
//	for it.next() {
//	    fmt.Println(it.index, it.bytePos, it.cluster)
//	}
type clusterIter struct {
	original string
	rest     string
	state    int
	cluster  string
	bytePos  int
	index    int
}

func newClusterIter(s string) *clusterIter {
	return &clusterIter{
		original: s,
		rest:     s,
		state:    -1,
		index:    -1,
	}
}

// next advances to the following cluster. Returns false once the string is exhausted.
func (it *clusterIter) next() bool {
	if len(it.rest) == 0 {
		return false
	}
	it.bytePos = len(it.original) - len(it.rest)
	it.index++

	cluster, rest, _, newState := uniseg.StepString(it.rest, it.state)
	it.cluster = cluster
	it.rest = rest
	it.state = newState
	return true
}

// graphemeCount returns the number of grapheme clusters in s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// byteOffset converts a grapheme index into a byte offset of s.
// Returns 0 for idx <= 0 and len(s) when idx is at or past the last cluster.
func byteOffset(s string, idx int) int {
	if idx <= 0 {
		return 0
	}
	it := newClusterIter(s)
	for it.next() {
		if it.index == idx {
			return it.bytePos
		}
	}
	return len(s)
}

// asciiJoint reports whether concatenating left and right is guaranteed to
// keep a cluster boundary between them, so the combined count is the sum of
// both counts. Only the ASCII case is decided here; anything else needs a
// recount (combining marks, ZWJ sequences, regional indicators, CR LF).
func asciiJoint(left, right string) bool {
	if left == "" || right == "" {
		return true
	}
	last := left[len(left)-1]
	first := right[0]
	if last >= 0x80 || first >= 0x80 {
		return false
	}
	return !(last == '\r' && first == '\n')
}

// clusterWidth returns the cell width of a rendered cluster.
func clusterWidth(cluster string) int {
	if cluster == "\t" {
		return TabWidth
	}
	return runewidth.StringWidth(cluster)
}
