package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"github.com/zjrosen/hecto/internal/config"
	"github.com/zjrosen/hecto/internal/keys"
	"github.com/zjrosen/hecto/internal/log"
	"github.com/zjrosen/hecto/internal/ui/lineinput"
	"github.com/zjrosen/hecto/internal/ui/styles"
)

// promptModel is the top-level bubbletea model of `hecto prompt`.
type promptModel struct {
	input     lineinput.Model
	help      help.Model
	keys      keys.LineKeyMap
	width     int // terminal width, 0 until the first WindowSizeMsg
	submitted bool
	result    []byte
}

func newPromptModel(cfg config.Config, initial string) promptModel {
	in := lineinput.New()
	in.SetWidth(cfg.Prompt.Width)
	in.SetPlaceholder(cfg.Prompt.Placeholder)
	in.SetQuery(cfg.Search.Query)
	in.SetValue(initial)
	in.SetCursor(in.Row().Len())
	in.Focus()

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	return promptModel{input: in, help: h, keys: keys.Line}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lineinput.SubmitMsg:
		m.submitted = true
		m.result = m.input.Row().RawBytes()
		log.Info(log.CatUI, "Prompt submitted", "bytes", len(m.result), "len", m.input.Row().Len())
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			log.Debug(log.CatUI, "Prompt cancelled")
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	var status string
	if s := m.input.Status(); s != "" {
		status = styles.ErrorStyle.Render(s)
	} else {
		status = styles.StatusStyle.Render(fmt.Sprintf("%d/%d", m.input.Cursor(), m.input.Row().Len()))
	}
	footer := status + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	if m.width > 0 {
		footer = truncate.StringWithTail(footer, uint(m.width), "…")
	}

	var b strings.Builder
	b.WriteString("> ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

func newPromptCmd(e *env) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "prompt [text|-]",
		Short: "Edit one line interactively",
		Long: `Open an interactive single-line editor. Enter prints the line to stdout,
esc or ctrl+c cancels. ctrl+n and ctrl+p jump between matches of --query.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				r, err := readRow(cmd, args[0])
				if err != nil {
					return err
				}
				initial = r.String()
			}

			cfg := e.cfg
			if cmd.Flags().Changed("query") {
				cfg.Search.Query = query
			}

			p := tea.NewProgram(
				newPromptModel(cfg, initial),
				tea.WithOutput(cmd.ErrOrStderr()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running prompt: %w", err)
			}

			m, ok := final.(promptModel)
			if !ok || !m.submitted {
				return nil
			}
			_, err = cmd.OutOrStdout().Write(append(m.result, '\n'))
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search text for ctrl+n / ctrl+p (default: search.query)")
	return cmd
}
