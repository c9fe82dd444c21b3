package canvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-tui-layout/internal/layout"
)

func TestCanvas_Box(t *testing.T) {
	type tc struct {
		canvas layout.Size
		rect   layout.Rect
		style  BorderStyle
		label  string
		want   string
	}

	tests := map[string]tc{
		"single box": {
			canvas: layout.Size{Width: 5, Height: 3},
			rect:   layout.NewRect(0, 0, 5, 3),
			style:  BorderSingle,
			want:   "┌───┐\n│   │\n└───┘",
		},
		"rounded with label": {
			canvas: layout.Size{Width: 6, Height: 3},
			rect:   layout.NewRect(0, 0, 6, 3),
			style:  BorderRounded,
			label:  "ab",
			want:   "╭ab──╮\n│    │\n╰────╯",
		},
		"label clipped to the top edge": {
			canvas: layout.Size{Width: 5, Height: 2},
			rect:   layout.NewRect(0, 0, 5, 2),
			style:  BorderSingle,
			label:  "toolong",
			want:   "┌too┐\n└───┘",
		},
		"wide label stops before the corner": {
			canvas: layout.Size{Width: 6, Height: 2},
			rect:   layout.NewRect(0, 0, 6, 2),
			style:  BorderSingle,
			label:  "日本語",
			want:   "┌日本┐\n└────┘",
		},
		"one row becomes a rule": {
			canvas: layout.Size{Width: 6, Height: 1},
			rect:   layout.NewRect(0, 0, 6, 1),
			style:  BorderDouble,
			label:  "x",
			want:   "x═════",
		},
		"one column becomes a rule": {
			canvas: layout.Size{Width: 1, Height: 3},
			rect:   layout.NewRect(0, 0, 1, 3),
			style:  BorderThick,
			want:   "┃\n┃\n┃",
		},
		"offset box inside the canvas": {
			canvas: layout.Size{Width: 5, Height: 4},
			rect:   layout.NewRect(1, 1, 3, 3),
			style:  BorderSingle,
			want:   "     \n ┌─┐ \n │ │ \n └─┘ ",
		},
		"box running off the canvas": {
			canvas: layout.Size{Width: 3, Height: 2},
			rect:   layout.NewRect(1, 0, 5, 3),
			style:  BorderSingle,
			want:   " ┌─\n │ ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New(tt.canvas.Width, tt.canvas.Height)
			c.Box(tt.rect, tt.style, tt.label)
			if diff := cmp.Diff(tt.want, c.String()); diff != "" {
				t.Errorf("canvas mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCanvas_Text(t *testing.T) {
	c := New(6, 3)
	c.Text(layout.NewRect(1, 1, 4, 1), "hello", "hidden")

	want := "\n hell\n"
	if diff := cmp.Diff(want, c.StringTrimmed()); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestCanvas_WideRuneOverwrite(t *testing.T) {
	c := New(4, 1)
	c.SetStringClipped(0, 0, "日本", c.Bounds())
	c.SetRune(1, 0, 'x')

	if got, want := c.String(), " x本"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	c.SetRune(3, 0, '語')
	if got, want := c.String(), " x  "; got != want {
		t.Errorf("String() after wide rune at the edge = %q, want %q", got, want)
	}
}

func TestNew_NegativeSize(t *testing.T) {
	c := New(-3, 2)
	if c.Width() != 0 || c.Height() != 2 {
		t.Errorf("New(-3, 2) size = %dx%d, want 0x2", c.Width(), c.Height())
	}
	c.SetRune(0, 0, 'x')
	if got := c.String(); got != "\n" {
		t.Errorf("String() = %q, want %q", got, "\n")
	}
}
