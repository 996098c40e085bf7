package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// previewCommand creates the preview command: render a workflow and browse
// the diagram in a scrollable pager instead of dumping it to stdout.
func (c *CLI) previewCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Browse a rendered workflow diagram in a pager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeOpts, err := c.pipelineOptions(args[0], &opts)
			if err != nil {
				return err
			}
			result, err := c.newRunner().Execute(cmd.Context(), pipeOpts)
			if err != nil {
				return err
			}

			model := newPagerModel(args[0], result.Text)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.yamlMode, "yaml", false, "treat the input as YAML regardless of extension")
	cmd.Flags().BoolVar(&opts.jsonMode, "json", false, "treat the input as JSON regardless of extension")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: .flowscii.toml in the working directory)")
	cmd.Flags().IntVar(&opts.wrap, "wrap", 0, "description wrap width in columns")
	cmd.Flags().IntVar(&opts.gutter, "gutter", -1, "horizontal padding around each box")

	return cmd
}

// pagerModel is the bubbletea model for the diagram pager.
type pagerModel struct {
	title  string
	lines  []string
	offset int
	height int
}

func newPagerModel(title, text string) pagerModel {
	return pagerModel{
		title:  title,
		lines:  strings.Split(text, "\n"),
		height: 20,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "pgup", "b":
			m.offset -= m.height
			if m.offset < 0 {
				m.offset = 0
			}
		case "pgdown", " ", "f":
			m.offset += m.height
			if m.offset > m.maxOffset() {
				m.offset = m.maxOffset()
			}
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 3
		if m.height < 1 {
			m.height = 1
		}
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m pagerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - m.offset; i < m.height; i++ {
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("↑/↓ scroll  g/G top/bottom  q quit"))
	return b.String()
}

func (m pagerModel) maxOffset() int {
	max := len(m.lines) - m.height
	if max < 0 {
		return 0
	}
	return max
}
