package row

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TabWidth is the number of spaces a tab cluster expands to when rendered.
const TabWidth = 4

var tabSpaces = strings.Repeat(" ", TabWidth)

// Row is a single line of text addressed by grapheme index.
//
// length always equals the grapheme cluster count of content. Every mutating
// method re-establishes that before returning.
type Row struct {
	content string
	length  int
}

// New builds a row holding a copy of s.
func New(s string) *Row {
	return &Row{
		content: strings.Clone(s),
		length:  graphemeCount(s),
	}
}

// Parse validates b as UTF-8 and builds a row from it.
func Parse(b []byte) (*Row, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w at byte %d", ErrInvalidUTF8, firstInvalid(b))
	}
	return New(string(b)), nil
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int {
	return r.length
}

// IsEmpty reports whether the row holds no text.
func (r *Row) IsEmpty() bool {
	return r.length == 0
}

// String returns the row's text.
func (r *Row) String() string {
	return r.content
}

// RawBytes returns the encoded text for writing the line out verbatim.
// The returned slice is a copy; modifying it does not affect the row.
func (r *Row) RawBytes() []byte {
	return []byte(r.content)
}

// Clone returns an independent copy of the row.
func (r *Row) Clone() *Row {
	return &Row{content: r.content, length: r.length}
}

// Grapheme returns the cluster at index i, or "" when i is out of range.
func (r *Row) Grapheme(i int) string {
	if i < 0 || i >= r.length {
		return ""
	}
	it := newClusterIter(r.content)
	for it.next() {
		if it.index == i {
			return it.cluster
		}
	}
	return ""
}

// DisplayWidth returns the number of terminal cells Render(0, Len()) occupies.
func (r *Row) DisplayWidth() int {
	width := 0
	it := newClusterIter(r.content)
	for it.next() {
		width += clusterWidth(it.cluster)
	}
	return width
}

// Render returns the clusters in [start, end) for display, with each tab
// expanded to TabWidth spaces.
//
// end is clamped to the byte length of the content, which is never smaller
// than the grapheme count, and start is clamped to end. Out-of-range values
// therefore produce a shorter or empty result rather than a panic.
func (r *Row) Render(start, end int) string {
	end = min(end, len(r.content))
	start = max(min(start, end), 0)
	if end <= start {
		return ""
	}

	var b strings.Builder
	it := newClusterIter(r.content)
	for it.next() {
		if it.index >= end {
			break
		}
		if it.index < start {
			continue
		}
		if it.cluster == "\t" {
			b.WriteString(tabSpaces)
		} else {
			b.WriteString(it.cluster)
		}
	}
	return b.String()
}

// Insert places c before the cluster at index at. Any at >= Len() appends.
func (r *Row) Insert(at int, c rune) {
	s := string(c)
	at = max(at, 0)

	if at >= r.length {
		joint := asciiJoint(r.content, s)
		r.content += s
		if joint {
			r.length++
		} else {
			r.length = graphemeCount(r.content)
		}
		return
	}

	var b strings.Builder
	b.Grow(len(r.content) + len(s))

	length := 0
	joint := true
	prev := ""
	it := newClusterIter(r.content)
	for it.next() {
		if it.index == at {
			joint = asciiJoint(prev, s) && asciiJoint(s, it.cluster)
			b.WriteString(s)
			length++
		}
		b.WriteString(it.cluster)
		length++
		prev = it.cluster
	}

	r.content = b.String()
	if !joint {
		// c may have merged with a neighbour (combining mark, ZWJ, regional indicator).
		length = graphemeCount(r.content)
	}
	r.length = length
}

// Delete removes the cluster at index at. Indexes outside [0, Len()) are ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.length {
		return
	}

	var b strings.Builder
	b.Grow(len(r.content))

	length := 0
	prev := ""
	removed := false
	joint := true
	it := newClusterIter(r.content)
	for it.next() {
		if it.index == at {
			removed = true
			continue
		}
		if removed {
			joint = asciiJoint(prev, it.cluster)
			removed = false
		}
		b.WriteString(it.cluster)
		length++
		prev = it.cluster
	}

	r.content = b.String()
	if !joint {
		length = graphemeCount(r.content)
	}
	r.length = length
}

// Append concatenates other onto the end of r. other is left unchanged.
func (r *Row) Append(other *Row) {
	if other == nil || other.length == 0 {
		return
	}
	joint := asciiJoint(r.content, other.content)
	r.content += other.content
	if joint {
		r.length += other.length
	} else {
		r.length = graphemeCount(r.content)
	}
}

// Split truncates r to the clusters before at and returns a new row holding
// the clusters from at onward. Appending the result back onto r restores the
// original row.
func (r *Row) Split(at int) *Row {
	var kept, split strings.Builder
	keptLen, splitLen := 0, 0

	it := newClusterIter(r.content)
	for it.next() {
		if it.index < at {
			kept.WriteString(it.cluster)
			keptLen++
		} else {
			split.WriteString(it.cluster)
			splitLen++
		}
	}

	r.content = kept.String()
	r.length = keptLen
	return &Row{content: split.String(), length: splitLen}
}

// Find locates query in the row and returns its grapheme index.
//
// Forward searches [at, Len()) for the first match. Backward searches
// [0, at) for the last match, so a match starting at at itself is never
// returned going backward. Only the first (or last) byte match is
// considered: if it begins inside a cluster there is no result. An empty
// query matches at the start of a non-empty forward window. at outside
// [0, Len()] reports no match.
func (r *Row) Find(query string, at int, dir Direction) (int, bool) {
	if at < 0 || at > r.length {
		return 0, false
	}

	start, end := at, r.length
	if dir == Backward {
		start, end = 0, at
	}

	window := r.content[byteOffset(r.content, start):byteOffset(r.content, end)]

	var match int
	if dir == Backward {
		match = strings.LastIndex(window, query)
	} else {
		match = strings.Index(window, query)
	}
	if match < 0 {
		return 0, false
	}

	it := newClusterIter(window)
	for it.next() {
		if it.bytePos == match {
			return start + it.index, true
		}
		if it.bytePos > match {
			break
		}
	}
	return 0, false
}
