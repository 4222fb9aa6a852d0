package row

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterIter(t *testing.T) {
	it := newClusterIter("h\U0001F600\u00e9")

	var clusters []string
	var positions []int
	for it.next() {
		require.Equal(t, len(clusters), it.index)
		clusters = append(clusters, it.cluster)
		positions = append(positions, it.bytePos)
	}

	require.Equal(t, []string{"h", "\U0001F600", "\u00e9"}, clusters)
	require.Equal(t, []int{0, 1, 5}, positions)
	require.False(t, it.next(), "exhausted iterator stays exhausted")
}

func TestClusterIter_Empty(t *testing.T) {
	it := newClusterIter("")
	require.False(t, it.next())
	require.Equal(t, -1, it.index)
}

func TestByteOffset(t *testing.T) {
	s := "h\U0001F600llo"
	tests := []struct {
		idx      int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 5},
		{5, 8},
		{9, 8},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, byteOffset(s, tc.idx), "byteOffset(%q, %d)", s, tc.idx)
	}
}

func TestAsciiJoint(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		expected    bool
	}{
		{"both ASCII", "ab", "cd", true},
		{"empty left", "", "\u0301", true},
		{"empty right", "e", "", true},
		{"CR LF", "a\r", "\n", false},
		{"LF CR", "\n", "\r", true},
		{"combining right", "e", "\u0301", false},
		{"non-ASCII left", "\U0001F600", "a", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, asciiJoint(tc.left, tc.right))
		})
	}
}

func TestClusterWidth(t *testing.T) {
	assert.Equal(t, TabWidth, clusterWidth("\t"))
	assert.Equal(t, 1, clusterWidth("a"))
	assert.Equal(t, 2, clusterWidth("\U0001F600"))
	assert.Equal(t, 2, clusterWidth("中"))
}
