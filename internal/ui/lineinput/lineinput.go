// Package lineinput provides a single-row text input backed by row.Row.
//
// All cursor positions are grapheme indexes into the row, so emoji and
// combining sequences move and delete as one character.
package lineinput

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/hecto/internal/keys"
	"github.com/zjrosen/hecto/internal/log"
	"github.com/zjrosen/hecto/internal/row"
	"github.com/zjrosen/hecto/internal/ui/styles"
)

// SubmitMsg is produced when the user presses enter.
type SubmitMsg struct {
	Content string
}

// Model is a horizontally scrolling single-line input.
type Model struct {
	row         *row.Row
	cursor      int // grapheme index (0 = before first cluster)
	offset      int // first visible grapheme
	focused     bool
	width       int
	placeholder string
	query       string
	status      string
	keys        keys.LineKeyMap

	placeholderStyle lipgloss.Style
}

// New creates an empty input model.
func New() Model {
	return Model{
		row:              row.New(""),
		width:            40,
		keys:             keys.Line,
		placeholderStyle: styles.PlaceholderStyle,
	}
}

// Value returns the current text.
func (m Model) Value() string {
	return m.row.String()
}

// Row returns the backing row.
func (m Model) Row() *row.Row {
	return m.row
}

// SetValue replaces the text and clamps the cursor.
func (m *Model) SetValue(v string) {
	m.row = row.New(v)
	m.SetCursor(m.cursor)
}

// Cursor returns the cursor's grapheme index.
func (m Model) Cursor() int {
	return m.cursor
}

// SetCursor sets the cursor position (clamped to valid range).
func (m *Model) SetCursor(pos int) {
	m.cursor = max(0, min(pos, m.row.Len()))
	m.scroll()
}

// Offset returns the first visible grapheme index.
func (m Model) Offset() int {
	return m.offset
}

// Focused returns whether the input is focused.
func (m Model) Focused() bool {
	return m.focused
}

// Focus focuses the input.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus from the input.
func (m *Model) Blur() {
	m.focused = false
}

// SetWidth sets the display width in cells.
func (m *Model) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	m.width = w
	m.scroll()
}

// Width returns the display width.
func (m Model) Width() int {
	return m.width
}

// SetPlaceholder sets the placeholder text.
func (m *Model) SetPlaceholder(p string) {
	m.placeholder = p
}

// SetQuery sets the text searched for by the find keys.
func (m *Model) SetQuery(q string) {
	m.query = q
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.query
}

// Status returns the message from the last search, "" after a match.
func (m Model) Status() string {
	return m.status
}

// Find moves the cursor to the next match of the query in dir.
// Forward starts after the cursor so repeated calls advance; Backward
// starts at the cursor, whose own match is excluded by the row's search.
func (m *Model) Find(dir row.Direction) bool {
	if m.query == "" {
		m.status = "no search query"
		return false
	}
	at := m.cursor
	if dir == row.Forward {
		at++
	}
	idx, ok := m.row.Find(m.query, at, dir)
	if !ok {
		m.status = "not found: " + m.query
		log.Debug(log.CatUI, "Search miss", "query", m.query, "at", at, "direction", dir)
		return false
	}
	m.status = ""
	m.SetCursor(idx)
	log.Debug(log.CatUI, "Search hit", "query", m.query, "index", idx, "direction", dir)
	return true
}

// Update handles key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Submit):
		content := m.row.String()
		return m, func() tea.Msg { return SubmitMsg{Content: content} }
	case key.Matches(keyMsg, m.keys.Left):
		m.SetCursor(m.cursor - 1)
	case key.Matches(keyMsg, m.keys.Right):
		m.SetCursor(m.cursor + 1)
	case key.Matches(keyMsg, m.keys.WordLeft):
		m.SetCursor(prevWordStart(m.row, m.cursor))
	case key.Matches(keyMsg, m.keys.WordRight):
		m.SetCursor(nextWordEnd(m.row, m.cursor))
	case key.Matches(keyMsg, m.keys.Home):
		m.SetCursor(0)
	case key.Matches(keyMsg, m.keys.End):
		m.SetCursor(m.row.Len())
	case key.Matches(keyMsg, m.keys.Backspace):
		if m.cursor > 0 {
			m.row.Delete(m.cursor - 1)
			m.SetCursor(m.cursor - 1)
		}
	case key.Matches(keyMsg, m.keys.Delete):
		m.row.Delete(m.cursor)
		m.SetCursor(m.cursor)
	case key.Matches(keyMsg, m.keys.KillToEnd):
		m.row.Split(m.cursor)
	case key.Matches(keyMsg, m.keys.KillToStart):
		m.row = m.row.Split(m.cursor)
		m.SetCursor(0)
	case key.Matches(keyMsg, m.keys.FindNext):
		m.Find(row.Forward)
	case key.Matches(keyMsg, m.keys.FindPrev):
		m.Find(row.Backward)
	case keyMsg.Type == tea.KeySpace:
		m.insert(' ')
	case keyMsg.Type == tea.KeyRunes && !keyMsg.Alt:
		for _, r := range keyMsg.Runes {
			m.insert(r)
		}
	}

	return m, nil
}

// insert places r at the cursor. The cursor only advances when r formed a
// new cluster; a combining mark joins the cluster before it.
func (m *Model) insert(r rune) {
	before := m.row.Len()
	m.row.Insert(m.cursor, r)
	m.SetCursor(m.cursor + max(0, m.row.Len()-before))
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
		return
	}
	for m.offset < m.cursor && m.cellsBetween(m.offset, m.cursor)+m.cursorCells() > m.width {
		m.offset++
	}
}

func (m Model) cellsBetween(start, end int) int {
	return runewidth.StringWidth(m.row.Render(start, end))
}

func (m Model) cursorCells() int {
	if m.cursor >= m.row.Len() {
		return 1
	}
	return max(1, m.cellsBetween(m.cursor, m.cursor+1))
}

// ANSI codes for cursor - only toggle reverse, don't reset other styles
const (
	cursorOn  = "\x1b[7m"  // reverse video on
	cursorOff = "\x1b[27m" // reverse video off (not full reset)
)

// View renders the visible part of the row with the cursor.
func (m Model) View() string {
	if m.row.IsEmpty() {
		if m.focused {
			return cursorOn + " " + cursorOff
		}
		if m.placeholder != "" {
			return m.placeholderStyle.Render(m.placeholder)
		}
		return ""
	}

	var b strings.Builder
	left := m.row.Render(m.offset, m.cursor)
	b.WriteString(left)
	used := runewidth.StringWidth(left)

	if m.cursor < m.row.Len() {
		under := m.row.Render(m.cursor, m.cursor+1)
		if m.focused {
			b.WriteString(cursorOn + under + cursorOff)
		} else {
			b.WriteString(under)
		}
		used += runewidth.StringWidth(under)
	} else if m.focused {
		b.WriteString(cursorOn + " " + cursorOff)
		used++
	}

	for i := m.cursor + 1; i < m.row.Len(); i++ {
		cluster := m.row.Render(i, i+1)
		w := runewidth.StringWidth(cluster)
		if used+w > m.width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}

// nextWordEnd finds the position after the next word from pos.
// Skips non-word clusters first, then skips word clusters.
func nextWordEnd(r *row.Row, pos int) int {
	n := r.Len()
	for pos < n && !isWordCluster(r.Grapheme(pos)) {
		pos++
	}
	for pos < n && isWordCluster(r.Grapheme(pos)) {
		pos++
	}
	return pos
}

// prevWordStart finds the position at the start of the previous word from pos.
func prevWordStart(r *row.Row, pos int) int {
	for pos > 0 && !isWordCluster(r.Grapheme(pos-1)) {
		pos--
	}
	for pos > 0 && isWordCluster(r.Grapheme(pos-1)) {
		pos--
	}
	return pos
}

// isWordCluster classifies a cluster by its base rune: letters, digits and
// underscore are word characters.
func isWordCluster(cluster string) bool {
	if cluster == "" {
		return false
	}
	c, _ := utf8.DecodeRuneInString(cluster)
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
