package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/swatchbook/pkg/cmap"
	"github.com/matzehuels/swatchbook/pkg/render/term"
)

// List styles
var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive catalog browser.
func (c *CLI) browseCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			model := newBrowseModel(reg.Labeled(), width)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			// Print details for the selection after the TUI exits.
			if m, ok := final.(browseModel); ok && m.selected != nil {
				fmt.Println(StyleTitle.Render(m.selected.Name))
				fmt.Println(term.Bar(m.selected.Value, width))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", term.DefaultBarWidth, "color bar width in cells")

	return cmd
}

// =============================================================================
// browseModel - Interactive catalog paging
// =============================================================================

// browseModel is the bubbletea model for scrolling through alias groups.
type browseModel struct {
	groups   []cmap.Labeled[*cmap.Colormap]
	width    int
	cursor   int
	offset   int
	height   int
	reversed bool
	selected *cmap.Labeled[*cmap.Colormap]
}

func newBrowseModel(groups []cmap.Labeled[*cmap.Colormap], width int) browseModel {
	return browseModel{groups: groups, width: width, height: 10}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.groups)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "r":
			m.reversed = !m.reversed
		case "enter":
			g := m.groups[m.cursor]
			m.selected = &g
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Two lines per group plus the header and footer chrome.
		m.height = (msg.Height - 5) / 2
		if m.height < 3 {
			m.height = 3
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Swatchbook"))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("↑/↓ navigate  r reverse  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.groups) {
		end = len(m.groups)
	}

	for i := m.offset; i < end; i++ {
		g := m.groups[i]

		cursor := "  "
		labelStyle := browseNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			labelStyle = browseSelectedStyle
		}

		cm := g.Value
		label := g.Label
		if m.reversed {
			cm = cm.Reversed()
			label += " (reversed)"
		}

		b.WriteString(cursor + labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString("  " + term.Bar(cm, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.groups))))

	return b.String()
}
