package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	tui "github.com/grindlemire/go-tui-layout"
	"github.com/grindlemire/go-tui-layout/internal/tree"
)

// styles colors text output. The zero value prints plain text.
type styles struct {
	header   lipgloss.Style
	name     lipgloss.Style
	hidden   lipgloss.Style
	tooSmall lipgloss.Style
	color    bool
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		name:     lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		hidden:   lipgloss.NewStyle().Faint(true),
		tooSmall: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		color:    true,
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

// fileResult is the solved layout of one description.
type fileResult struct {
	File       string           `yaml:"file"`
	Width      int              `yaml:"width"`
	Height     int              `yaml:"height"`
	Placements []tree.Placement `yaml:"placements"`
}

type solveOptions struct {
	root   *rootOptions
	format string
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{root: root}
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Print the solved geometry of each tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.validate(); err != nil {
				return err
			}
			size := tui.Size{Width: root.width, Height: root.height}
			return runSolve(cmd.Context(), cmd.OutOrStdout(), args, size, opts.format, newStyles(isTerminal(os.Stdout)))
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or yaml")
	return cmd
}

// solveFile loads, builds and solves the description at path.
func solveFile(path string, size tui.Size) (*tree.Tree, *tui.Dispatcher, error) {
	n, err := tree.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return solveNode(n, size)
}

func solveNode(n *tree.Node, size tui.Size) (*tree.Tree, *tui.Dispatcher, error) {
	d, err := tui.NewDispatcher()
	if err != nil {
		return nil, nil, err
	}
	t, err := tree.Build(n, d)
	if err != nil {
		return nil, nil, err
	}
	if err := d.Send(t.Root, tui.ResizeEvent{Size: size}); err != nil {
		return nil, nil, fmt.Errorf("solving: %w", err)
	}
	return t, d, nil
}

// runSolve solves every file concurrently, each with its own dispatcher,
// and writes the results in argument order.
func runSolve(ctx context.Context, w io.Writer, files []string, size tui.Size, format string, st styles) error {
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]fileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, _, err := solveFile(path, size)
			if err != nil {
				return err
			}
			results[i] = fileResult{File: path, Width: size.Width, Height: size.Height, Placements: t.Placements()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		return enc.Close()
	}

	var buf bytes.Buffer
	for i, r := range results {
		if i > 0 {
			buf.WriteByte('\n')
		}
		writeText(&buf, r, st)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// writeText prints one line per placement, indented by depth:
//
//	root     column  0,0   80x24
//	  side   element 0,0   20x24
//	  hidden element -
func writeText(w io.Writer, r fileResult, st styles) {
	fmt.Fprintln(w, st.render(st.header, fmt.Sprintf("%s (%dx%d)", r.File, r.Width, r.Height)))

	nameWidth := 0
	for _, p := range r.Placements {
		nameWidth = max(nameWidth, 2*p.Depth+len(p.Name))
	}

	for _, p := range r.Placements {
		label := strings.Repeat("  ", p.Depth) + p.Name
		label += strings.Repeat(" ", nameWidth-len(label))
		line := fmt.Sprintf("%s %-7s ", st.render(st.name, label), p.Kind)

		if !p.Displayed {
			fmt.Fprintln(w, line+st.render(st.hidden, "-"))
			continue
		}
		line += fmt.Sprintf("%-7s %dx%d", fmt.Sprintf("%d,%d", p.X, p.Y), p.Width, p.Height)
		if p.Offset > 0 {
			line += fmt.Sprintf(" offset=%d", p.Offset)
		}
		if p.TooSmall {
			line += " " + st.render(st.tooSmall, "too-small")
		}
		fmt.Fprintln(w, line)
	}
}
