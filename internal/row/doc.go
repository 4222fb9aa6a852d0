// Package row provides the text row used by the hecto line editor.
//
// A Row holds one line of Unicode text. Every position accepted or returned
// by a Row is a grapheme index: the count of user-perceived characters before
// that point, not a byte offset or a rune index.
//
// Unit Model:
//
//  1. Bytes: the storage unit. Go strings are UTF-8, so a single grapheme can
//     span many bytes (e.g., 👨‍👩‍👧‍👦 is 25 bytes).
//
//  2. Graphemes: the positional unit. "e" + U+0301 is one grapheme, a flag made
//     of two regional indicators is one grapheme.
//
//  3. Display columns: the width in terminal cells, only used for rendering.
//
// Rows are plain values owned by a single writer. They perform no locking.
package row
