package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	tui "github.com/grindlemire/go-tui-layout"
	"github.com/grindlemire/go-tui-layout/internal/tree"
)

const dashboard = `
name: root
direction: column
children:
  - name: header
    text: Title
    height: {kind: fixed}
  - name: body
    direction: row
    height: {kind: expanding}
    children:
      - name: nav
        width: {kind: fixed, hint: 10}
      - name: main
        text: content
        width: {kind: expanding}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := out.String(), "tui dev\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootCmd_Solve(t *testing.T) {
	path := writeFile(t, "dash.yaml", dashboard)

	type tc struct {
		args    []string
		wantErr bool
		want    string
	}

	tests := map[string]tc{
		"text at the requested size": {
			args: []string{"solve", "-W", "40", "-H", "10", path},
			want: "root   ",
		},
		"negative size is rejected": {
			args:    []string{"solve", "--width=-1", path},
			wantErr: true,
		},
		"unknown format": {
			args:    []string{"solve", "--format", "json", path},
			wantErr: true,
		},
		"missing file": {
			args:    []string{"solve", filepath.Join(t.TempDir(), "nope.yaml")},
			wantErr: true,
		},
		"no files": {
			args:    []string{"solve"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := newRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunSolve_Text(t *testing.T) {
	path := writeFile(t, "dash.yaml", dashboard)

	var out bytes.Buffer
	err := runSolve(context.Background(), &out, []string{path}, tui.Size{Width: 40, Height: 10}, "text", newStyles(false))
	if err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}

	want := fmt.Sprintf("%s (40x10)\n", path) + `root     column  0,0     40x10
  header element 0,0     40x1
  body   row     0,1     40x9
    nav  element 0,1     10x9
    main element 10,1    30x9
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSolve_TextMarksHiddenAndTooSmall(t *testing.T) {
	path := writeFile(t, "tight.yaml", `
name: root
direction: row
offset: 1
children:
  - {name: gone, width: {kind: fixed, hint: 5}}
  - {name: a, width: {kind: fixed, hint: 8}}
  - {name: b, width: {kind: fixed, hint: 8}}
`)

	var out bytes.Buffer
	err := runSolve(context.Background(), &out, []string{path}, tui.Size{Width: 10, Height: 2}, "text", newStyles(false))
	if err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"root row 0,0 10x2",
		"offset=1 too-small",
		"gone element -",
	} {
		if !strings.Contains(strings.Join(strings.Fields(got), " "), want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestRunSolve_YAMLKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := range 6 {
		path := filepath.Join(dir, fmt.Sprintf("tree%d.yaml", i))
		src := fmt.Sprintf(`
name: root
direction: row
children:
  - {name: left, width: {kind: fixed, hint: %d}}
  - {name: right, width: {kind: expanding}}
`, i)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		files = append(files, path)
	}

	var out bytes.Buffer
	if err := runSolve(context.Background(), &out, files, tui.Size{Width: 20, Height: 1}, "yaml", styles{}); err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}

	var got []fileResult
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(got) != len(files) {
		t.Fatalf("got %d results, want %d", len(got), len(files))
	}
	for i, r := range got {
		want := fileResult{
			File:   files[i],
			Width:  20,
			Height: 1,
			Placements: []tree.Placement{
				{Name: "root", Kind: "row", Width: 20, Height: 1, Displayed: true},
				{Name: "left", Depth: 1, Kind: "element", Width: i, Height: 1, Displayed: i > 0},
				{Name: "right", Depth: 1, Kind: "element", X: i, Width: 20 - i, Height: 1, Displayed: true},
			},
		}
		if i == 0 {
			want.Placements[1].Height = 0
		}
		if diff := cmp.Diff(want, r); diff != "" {
			t.Errorf("result %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRunPreview(t *testing.T) {
	path := writeFile(t, "small.yaml", `
name: root
direction: column
children:
  - {name: header, text: hello, height: {kind: fixed, hint: 1}}
  - {name: footer, text: bye}
`)

	var out bytes.Buffer
	if err := runPreview(&out, path, tui.Size{Width: 12, Height: 2}, false); err != nil {
		t.Fatalf("runPreview() error = %v", err)
	}
	if got, want := out.String(), "hello\nbye\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDemoModel(t *testing.T) {
	n, err := tree.ParseBytes([]byte(sampleTree))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	m, err := newDemoModel(n, "body")
	if err != nil {
		t.Fatalf("newDemoModel() error = %v", err)
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 11})
	if got, want := m.tree.Root.Rect(), tui.NewRect(0, 0, 80, 10); got != want {
		t.Errorf("root rect = %v, want %v", got, want)
	}
	if !strings.Contains(m.content(), "offset 0/5") {
		t.Errorf("status line missing offset:\n%s", m.content())
	}

	one, _ := m.tree.Lookup("one")
	if !one.Element.Displayed() {
		t.Fatal("first child not displayed before scrolling")
	}

	if m.handleKey("right") {
		t.Fatal("handleKey(right) asked to quit")
	}
	if err := m.d.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if got := m.scroll.ChildOffset(); got != 1 {
		t.Errorf("ChildOffset() = %d, want 1", got)
	}
	if one.Element.Displayed() {
		t.Error("first child still displayed after scrolling past it")
	}

	m.handleKey("left")
	m.handleKey("h")
	if err := m.d.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if got := m.scroll.ChildOffset(); got != 0 {
		t.Errorf("ChildOffset() = %d, want 0", got)
	}
	if !m.handleKey("q") {
		t.Error("handleKey(q) did not ask to quit")
	}
}

func TestNewDemoModel_FallsBackToRoot(t *testing.T) {
	n, err := tree.ParseBytes([]byte(sampleTree))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	m, err := newDemoModel(n, "header")
	if err != nil {
		t.Fatalf("newDemoModel() error = %v", err)
	}
	if m.scroll != m.tree.Root {
		t.Error("scroll target is not the root when the name is not a container")
	}
}
