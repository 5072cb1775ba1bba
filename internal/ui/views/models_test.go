package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcum42/sagemodels/internal/report"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func rows(names ...string) []report.Row {
	out := make([]report.Row, len(names))
	for i, n := range names {
		out[i] = report.Row{Name: n, FilePath: "/models/" + n + ".safetensors"}
	}
	return out
}

func newTestView(r []report.Row) *ModelsView {
	v := NewModelsView()
	v.now = func() time.Time { return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC) }
	v.SetRows(r)
	return v
}

func TestModelsView_Navigation(t *testing.T) {
	v := newTestView(rows("a", "b", "c", "d"))

	steps := []struct {
		key  string
		want int
	}{
		{"j", 1},
		{"j", 2},
		{"G", 3},
		{"j", 3},
		{"k", 2},
		{"g", 0},
		{"k", 0},
	}
	for _, s := range steps {
		if cmd := v.Update(key(s.key)); cmd == nil {
			t.Errorf("key %q was not handled", s.key)
		}
		if v.Cursor() != s.want {
			t.Errorf("after %q cursor = %d; want %d", s.key, v.Cursor(), s.want)
		}
	}
}

func TestModelsView_UnhandledKey(t *testing.T) {
	v := newTestView(rows("a"))
	if cmd := v.Update(key("q")); cmd != nil {
		t.Error("q should propagate to the app")
	}
}

func TestModelsView_PageDown(t *testing.T) {
	v := newTestView(rows("a", "b", "c", "d", "e", "f"))
	v.Render(80, 2)
	v.Update(key("pgdown"))
	if v.Cursor() != 2 {
		t.Errorf("cursor = %d; want 2", v.Cursor())
	}
	v.Update(key("pgdown"))
	v.Update(key("pgdown"))
	if v.Cursor() != 5 {
		t.Errorf("cursor = %d; want 5", v.Cursor())
	}
}

func TestModelsView_SetRowsClampsCursor(t *testing.T) {
	v := newTestView(rows("a", "b", "c"))
	v.Update(key("G"))
	v.SetRows(rows("a"))
	if v.Cursor() != 0 {
		t.Errorf("cursor = %d; want 0", v.Cursor())
	}
	v.SetRows(nil)
	if _, ok := v.Selected(); ok {
		t.Error("Selected() on empty list should report false")
	}
}

func TestModelsView_RenderScrolls(t *testing.T) {
	v := newTestView(rows("alpha", "bravo", "charlie", "delta"))
	v.Update(key("G"))
	out := v.Render(80, 2)
	if strings.Contains(out, "alpha") || !strings.Contains(out, "delta") {
		t.Errorf("expected last two rows:\n%s", out)
	}
	if n := len(strings.Split(out, "\n")); n != 2 {
		t.Errorf("rendered %d lines; want 2", n)
	}
}

func TestModelsView_Detail(t *testing.T) {
	v := newTestView(rows("alpha"))
	v.Update(key("enter"))
	out := v.Render(80, 10)
	if !strings.Contains(out, "/models/alpha.safetensors") {
		t.Errorf("detail pane missing path:\n%s", out)
	}
}

func TestModelsView_Empty(t *testing.T) {
	v := newTestView(nil)
	if out := v.Render(80, 10); !strings.Contains(out, "No models found") {
		t.Errorf("empty render = %q", out)
	}
}
