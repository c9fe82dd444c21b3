package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	tui "github.com/grindlemire/go-tui-layout"
	"github.com/grindlemire/go-tui-layout/internal/tree"
	"github.com/grindlemire/go-tui-layout/pkg/debug"
)

const sampleTree = `
name: root
direction: column
children:
  - name: header
    text: "tui demo: left/right scroll, q quits"
    height: {kind: fixed, hint: 1}
  - name: body
    direction: row
    border: true
    children:
      - {name: one, text: "one", width: {kind: expanding, hint: 10}}
      - {name: two, text: "two", width: {kind: expanding, hint: 10, stretch: 2}}
      - {name: three, text: "three", width: {kind: minimum, hint: 12}}
      - {name: four, text: "four", width: {kind: preferred, hint: 16}}
      - {name: five, text: "five", width: {kind: maximum, hint: 8}}
`

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A1A1AA"))

// demoModel drives a solved tree from terminal size and key events. The
// scroll target's child offset moves with the arrow keys.
type demoModel struct {
	tree   *tree.Tree
	d      *tui.Dispatcher
	scroll *tui.LinearLayout
	width  int
	height int
	err    error
}

func newDemoCmd() *cobra.Command {
	var scroll string
	cmd := &cobra.Command{
		Use:   "demo [FILE]",
		Short: "Lay out a tree live in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n *tree.Node
			var err error
			if len(args) == 1 {
				n, err = tree.Load(args[0])
			} else {
				n, err = tree.ParseBytes([]byte(sampleTree))
			}
			if err != nil {
				return err
			}

			m, err := newDemoModel(n, scroll)
			if err != nil {
				return err
			}
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("running demo: %w", err)
			}
			return m.err
		},
	}
	cmd.Flags().StringVar(&scroll, "scroll", "body", "Name of the container the arrow keys scroll")
	return cmd
}

func newDemoModel(n *tree.Node, scroll string) (*demoModel, error) {
	d, err := tui.NewDispatcher()
	if err != nil {
		return nil, err
	}
	t, err := tree.Build(n, d)
	if err != nil {
		return nil, err
	}
	m := &demoModel{tree: t, d: d, scroll: t.Root}
	if e, ok := t.Lookup(scroll); ok && e.Layout != nil {
		m.scroll = e.Layout
	}
	return m, nil
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.d.Post(m.tree.Root, tui.ResizeEvent{
			Size: tui.Size{Width: m.width, Height: max(0, m.height-1)},
			Old:  m.tree.Root.Rect().Size(),
		})
	case tea.KeyPressMsg:
		if m.handleKey(msg.String()) {
			return m, tea.Quit
		}
	}
	if err := m.d.Drain(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// handleKey applies a key press and reports whether the demo should quit.
func (m *demoModel) handleKey(key string) (quit bool) {
	switch key {
	case "q", "ctrl+c":
		return true
	case "right", "l":
		m.scroll.IncrementOffset()
	case "left", "h":
		m.scroll.DecrementOffset()
	}
	debug.Log("demo: key %q offset %d", key, m.scroll.ChildOffset())
	return false
}

func (m *demoModel) View() tea.View {
	var v tea.View
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}
	v.SetContent(m.content())
	return v
}

func (m *demoModel) content() string {
	size := tui.Size{Width: m.width, Height: max(0, m.height-1)}
	status := fmt.Sprintf("%dx%d  offset %d/%d", size.Width, size.Height, m.scroll.ChildOffset(), m.scroll.Len())
	if m.tree.Root.TooSmall() {
		status += "  too small"
	}
	return render(m.tree, size, false) + "\n" + statusStyle.Render(status)
}
