package row

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lengthCases = []struct {
	name   string
	input  string
	length int
}{
	{"empty", "", 0},
	{"ASCII", "hello", 5},
	{"precomposed accent", "h\u00e9llo", 5},
	{"combining accent", "he\u0301llo", 5},
	{"multiple combining", "e\u0301\u0327", 1},
	{"simple emoji", "h😀llo", 5},
	{"ZWJ family", "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466", 1},
	{"skin tone", "\U0001F44B\U0001F3FD", 1},
	{"flags", "\U0001F1FA\U0001F1F8\U0001F1EF\U0001F1F5", 2},
	{"CRLF", "a\r\n", 2},
	{"tab", "a\tb", 3},
	{"CJK", "中文", 2},
}

func TestNew_Length(t *testing.T) {
	for _, tc := range lengthCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.input)
			assert.Equal(t, tc.length, r.Len())
			assert.Equal(t, tc.input, r.String())
			assert.Equal(t, tc.length == 0, r.IsEmpty())
		})
	}
}

func TestParse(t *testing.T) {
	r, err := Parse([]byte("h\u00e9llo"))
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())

	_, err = Parse([]byte{'a', 'b', 0xff, 'c'})
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Contains(t, err.Error(), "at byte 2")
}

func TestRawBytes_IsCopy(t *testing.T) {
	r := New("abc")
	b := r.RawBytes()
	require.Equal(t, []byte("abc"), b)

	b[0] = 'x'
	require.Equal(t, "abc", r.String())
}

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		start, end int
		expected   string
	}{
		{"full row", "hello", 0, 5, "hello"},
		{"middle", "hello", 1, 3, "el"},
		{"end past length", "hello", 2, 100, "llo"},
		{"start past end", "hello", 4, 2, ""},
		{"negative start", "hello", -3, 2, "he"},
		{"negative end", "hello", 0, -1, ""},
		{"tab expands", "a\tb", 0, 3, "a    b"},
		{"only tab", "\t", 0, 1, "    "},
		{"emoji clusters", "h😀llo", 1, 3, "😀l"},
		{"combining kept whole", "he\u0301llo", 1, 2, "e\u0301"},
		{"empty row", "", 0, 10, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, New(tc.input).Render(tc.start, tc.end))
		})
	}
}

// end is clamped by byte length, so a multi-byte row accepts end values
// beyond its grapheme count without dropping clusters.
func TestRender_EndClampedToBytes(t *testing.T) {
	r := New("😀😀")
	require.Equal(t, 2, r.Len())
	require.Equal(t, "😀😀", r.Render(0, 5))
	require.Equal(t, "😀", r.Render(1, 8))
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		at       int
		c        rune
		expected string
		length   int
	}{
		{"append", "abc", 3, 'd', "abcd", 4},
		{"append far past end", "abc", 99, 'd', "abcd", 4},
		{"front", "abc", 0, 'x', "xabc", 4},
		{"middle", "abc", 1, 'x', "axbc", 4},
		{"negative inserts at front", "abc", -2, 'x', "xabc", 4},
		{"into empty", "", 0, 'a', "a", 1},
		{"negative into empty", "", -1, 'x', "x", 1},
		{"negative into empty combining", "", -3, '\u0301', "\u0301", 1},
		{"before emoji", "h😀", 1, 'x', "hx😀", 3},
		{"emoji into ASCII", "ab", 1, '😀', "a😀b", 3},
		{"combining mark merges on append", "e", 1, '\u0301', "e\u0301", 1},
		{"combining mark merges in middle", "eb", 1, '\u0301', "e\u0301b", 2},
		{"regional indicator pairs on append", "\U0001F1FA", 1, '\U0001F1F8', "\U0001F1FA\U0001F1F8", 1},
		{"LF after CR", "a\r", 2, '\n', "a\r\n", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.input)
			r.Insert(tc.at, tc.c)
			assert.Equal(t, tc.expected, r.String())
			assert.Equal(t, tc.length, r.Len())
			assert.Equal(t, graphemeCount(r.String()), r.Len())
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		at       int
		expected string
		length   int
	}{
		{"first", "abc", 0, "bc", 2},
		{"middle", "abc", 1, "ac", 2},
		{"last", "abc", 2, "ab", 2},
		{"past end is no-op", "abc", 3, "abc", 3},
		{"negative is no-op", "abc", -1, "abc", 3},
		{"empty is no-op", "", 0, "", 0},
		{"whole emoji cluster", "a\U0001F468\u200d\U0001F469\u200d\U0001F467b", 1, "ab", 2},
		{"combining cluster", "he\u0301llo", 1, "hllo", 4},
		{"neighbours merge", "\U0001F1FAx\U0001F1F8", 1, "\U0001F1FA\U0001F1F8", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.input)
			r.Delete(tc.at)
			assert.Equal(t, tc.expected, r.String())
			assert.Equal(t, tc.length, r.Len())
		})
	}
}

func TestInsertDelete_Scenario(t *testing.T) {
	r := New("h\u00e9llo")
	require.Equal(t, 5, r.Len())
	require.Len(t, r.RawBytes(), 6)

	r.Insert(1, 'X')
	require.Equal(t, "hX\u00e9llo", r.String())
	require.Equal(t, 6, r.Len())

	r.Delete(2)
	require.Equal(t, "hXllo", r.String())
	require.Equal(t, 5, r.Len())
}

func TestAppend(t *testing.T) {
	a := New("ab")
	b := New("c😀")
	a.Append(b)

	require.Equal(t, "abc😀", a.String())
	require.Equal(t, 4, a.Len())
	require.Equal(t, "c😀", b.String(), "argument must not be modified")
	require.Equal(t, 2, b.Len())
}

func TestAppend_EdgeCases(t *testing.T) {
	r := New("abc")
	r.Append(nil)
	r.Append(New(""))
	require.Equal(t, "abc", r.String())
	require.Equal(t, 3, r.Len())

	empty := New("")
	empty.Append(New("xy"))
	require.Equal(t, "xy", empty.String())
	require.Equal(t, 2, empty.Len())
}

func TestAppend_MergingJunction(t *testing.T) {
	r := New("e")
	r.Append(New("\u0301x"))
	require.Equal(t, "e\u0301x", r.String())
	require.Equal(t, 2, r.Len())
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		at             int
		kept, split    string
		keptLen, spLen int
	}{
		{"middle", "abc", 1, "a", "bc", 1, 2},
		{"at zero", "abc", 0, "", "abc", 0, 3},
		{"negative", "abc", -4, "", "abc", 0, 3},
		{"at length", "abc", 3, "abc", "", 3, 0},
		{"past length", "abc", 10, "abc", "", 3, 0},
		{"emoji boundary", "a😀b", 2, "a😀", "b", 2, 1},
		{"flags", "\U0001F1FA\U0001F1F8\U0001F1EF\U0001F1F5", 1, "\U0001F1FA\U0001F1F8", "\U0001F1EF\U0001F1F5", 1, 1},
		{"empty", "", 0, "", "", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.input)
			tail := r.Split(tc.at)
			assert.Equal(t, tc.kept, r.String())
			assert.Equal(t, tc.keptLen, r.Len())
			assert.Equal(t, tc.split, tail.String())
			assert.Equal(t, tc.spLen, tail.Len())
		})
	}
}

func TestSplitAppend_Scenario(t *testing.T) {
	r := New("abc")
	tail := r.Split(1)
	require.Equal(t, "a", r.String())
	require.Equal(t, 1, r.Len())
	require.Equal(t, "bc", tail.String())
	require.Equal(t, 2, tail.Len())

	r.Append(tail)
	require.Equal(t, "abc", r.String())
	require.Equal(t, 3, r.Len())
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		query string
		at    int
		dir   Direction
		want  int
		found bool
	}{
		{"forward from match", "ababab", "ab", 2, Forward, 2, true},
		{"forward skips earlier", "ababab", "ab", 1, Forward, 2, true},
		{"forward from zero", "ababab", "ab", 0, Forward, 0, true},
		{"forward at end", "ababab", "ab", 6, Forward, 0, false},
		{"backward strictly before", "ababab", "ab", 4, Backward, 2, true},
		{"backward full row", "ababab", "ab", 6, Backward, 4, true},
		{"backward partial overlap excluded", "ababab", "ab", 5, Backward, 2, true},
		{"backward at zero", "ababab", "ab", 0, Backward, 0, false},
		{"at beyond length", "ababab", "ab", 7, Forward, 0, false},
		{"at beyond length backward", "ababab", "ab", 7, Backward, 0, false},
		{"negative at", "ababab", "ab", -1, Forward, 0, false},
		{"missing", "ababab", "zz", 0, Forward, 0, false},
		{"empty query matches window start", "ababab", "", 1, Forward, 1, true},
		{"empty query empty window", "ababab", "", 6, Forward, 0, false},
		{"empty query on empty row", "", "", 0, Forward, 0, false},
		{"empty query backward", "ababab", "", 3, Backward, 0, false},
		{"grapheme index after emoji", "😀😀ab", "ab", 0, Forward, 2, true},
		{"grapheme index after combining", "e\u0301e\u0301x", "x", 0, Forward, 2, true},
		{"backward after emoji", "a😀b😀b", "b", 5, Backward, 4, true},
		{"query is cluster", "ab\U0001F468\u200d\U0001F469\u200d\U0001F467cd", "\U0001F468\u200d\U0001F469\u200d\U0001F467", 0, Forward, 2, true},
		{"first match inside cluster", "\U0001F468\u200d\U0001F469x\U0001F469", "\U0001F469", 0, Forward, 0, false},
		{"last match inside cluster backward", "\U0001F469x\U0001F468\u200d\U0001F469", "\U0001F469", 3, Backward, 0, false},
		{"match after cluster from later start", "\U0001F468\u200d\U0001F469x\U0001F469", "\U0001F469", 1, Forward, 2, true},
		{"only match inside cluster", "\U0001F468\u200d\U0001F469", "\U0001F469", 0, Forward, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, found := New(tc.input).Find(tc.query, tc.at, tc.dir)
			require.Equal(t, tc.found, found)
			if tc.found {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestGrapheme(t *testing.T) {
	r := New("h😀e\u0301")
	assert.Equal(t, "h", r.Grapheme(0))
	assert.Equal(t, "😀", r.Grapheme(1))
	assert.Equal(t, "e\u0301", r.Grapheme(2))
	assert.Equal(t, "", r.Grapheme(3))
	assert.Equal(t, "", r.Grapheme(-1))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 0, New("").DisplayWidth())
	assert.Equal(t, 5, New("hello").DisplayWidth())
	assert.Equal(t, 6, New("h😀llo").DisplayWidth())
	assert.Equal(t, 6, New("a\tb").DisplayWidth())
	assert.Equal(t, 4, New("中文").DisplayWidth())
}

func TestClone_Independent(t *testing.T) {
	r := New("abc")
	c := r.Clone()
	c.Insert(0, 'x')

	require.Equal(t, "abc", r.String())
	require.Equal(t, "xabc", c.String())
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"forward", "Forward", "f", " FORWARD "} {
		d, err := ParseDirection(in)
		require.NoError(t, err, in)
		require.Equal(t, Forward, d)
	}
	for _, in := range []string{"backward", "B"} {
		d, err := ParseDirection(in)
		require.NoError(t, err, in)
		require.Equal(t, Backward, d)
	}

	_, err := ParseDirection("sideways")
	require.ErrorIs(t, err, ErrInvalidDirection)

	require.Equal(t, "forward", Forward.String())
	require.Equal(t, "backward", Backward.String())
	require.Equal(t, "unknown", Direction(9).String())
}

