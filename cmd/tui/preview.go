package main

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	tui "github.com/grindlemire/go-tui-layout"
	"github.com/grindlemire/go-tui-layout/internal/canvas"
	"github.com/grindlemire/go-tui-layout/internal/tree"
)

func newPreviewCmd(root *rootOptions) *cobra.Command {
	var frame bool
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Draw the solved tree as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.validate(); err != nil {
				return err
			}
			size := tui.Size{Width: root.width, Height: root.height}
			return runPreview(cmd.OutOrStdout(), args[0], size, frame && isTerminal(os.Stdout))
		},
	}
	cmd.Flags().BoolVar(&frame, "frame", true, "Surround the drawing with a frame when writing to a terminal")
	return cmd
}

func runPreview(w io.Writer, path string, size tui.Size, frame bool) error {
	t, _, err := solveFile(path, size)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, render(t, size, frame))
	return err
}

// render draws t onto a canvas of the given size.
func render(t *tree.Tree, size tui.Size, frame bool) string {
	c := canvas.New(size.Width, size.Height)
	t.Draw(c)
	if !frame {
		return c.StringTrimmed()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7C3AED")).
		Render(c.String())
}
