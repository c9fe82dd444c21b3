package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-tui-layout/internal/canvas"
)

func TestTree_Draw(t *testing.T) {
	src := `
name: r
direction: row
border: true
children:
  - name: a
    text: hi
    width: {kind: fixed}
  - name: b
    width: {kind: expanding}
    height: {kind: expanding}
`
	tr := solve(t, src, 12, 4)
	c := canvas.New(12, 4)
	tr.Draw(c)

	want := "╭r─────────╮\n" +
		"│hib       │\n" +
		"│          │\n" +
		"╰──────────╯"
	if diff := cmp.Diff(want, c.String()); diff != "" {
		t.Errorf("drawing mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_DrawOutlinesLargeElements(t *testing.T) {
	src := `
direction: column
children:
  - name: pane
    text: body
    width: {kind: expanding}
    height: {kind: expanding}
`
	tr := solve(t, src, 8, 3)
	c := canvas.New(8, 3)
	tr.Draw(c)

	want := "┌pane──┐\n" +
		"│body  │\n" +
		"└──────┘"
	if diff := cmp.Diff(want, c.String()); diff != "" {
		t.Errorf("drawing mismatch (-want +got):\n%s", diff)
	}
}
