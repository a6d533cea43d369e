package viz

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortsim/internal/array"
	"github.com/san-kum/sortsim/internal/config"
	"github.com/san-kum/sortsim/internal/gate"
	"github.com/san-kum/sortsim/internal/playback"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, values []int) Model {
	t.Helper()
	st, err := array.FromValues(values)
	if err != nil {
		t.Fatal(err)
	}
	p := playback.New(st, gate.New(gate.MaxSpeed, 0), nil, nil)
	t.Cleanup(func() {
		p.Gate().Resume()
		p.Stop()
	})
	return NewModel(p, st.Max(), 60, "minimal", nil)
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Error("expected dots to be set")
	}
	if c.IsSet(1, 0) {
		t.Error("unexpected dot at (1,0)")
	}
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", c.Grid[0][1])
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("Clear left a dot behind")
	}
}

func TestDrawBars(t *testing.T) {
	c := NewCanvas(CellsFor(4), 2)
	DrawBars(c, []int{0, 8, 4, 1}, 8)

	h := c.SubHeight()
	heights := make([]int, 4)
	for x := 0; x < 4; x++ {
		for y := 0; y < h; y++ {
			if c.IsSet(x, y) {
				heights[x]++
			}
		}
	}

	want := []int{0, 8, 4, 1}
	for i := range want {
		if heights[i] != want[i] {
			t.Errorf("bar %d height = %d, want %d", i, heights[i], want[i])
		}
	}
	if !c.IsSet(1, h-1) || !c.IsSet(1, 0) {
		t.Error("full bar should span bottom to top")
	}
}

func TestDrawBarsClipsWidth(t *testing.T) {
	c := NewCanvas(1, 1)
	DrawBars(c, []int{4, 4, 4, 4}, 4)
	if c.Grid[0][0] != 0x28ff {
		t.Errorf("expected a full cell, got %U", c.Grid[0][0])
	}
}

func TestCellHighlighted(t *testing.T) {
	if !cellHighlighted(2, [2]int{5, -1}) {
		t.Error("bar 5 lives in cell 2")
	}
	if cellHighlighted(0, [2]int{-1, -1}) {
		t.Error("no highlight expected")
	}
}

func TestCanvasRenderGroupsRuns(t *testing.T) {
	c := NewCanvas(3, 1)
	plain := lipgloss.NewStyle()
	out := c.Render(func(int) lipgloss.Style { return plain })
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one row, got %q", out)
	}
	if !strings.Contains(out, string([]rune{blank, blank, blank})) {
		t.Errorf("row content missing: %q", out)
	}
}

func TestSpeedBar(t *testing.T) {
	if got := SpeedBar(50, 10); got != "["+strings.Repeat("█", 5)+strings.Repeat("░", 5)+"]" {
		t.Errorf("SpeedBar(50, 10) = %q", got)
	}
	if got := SpeedBar(100, 4); got != "[████]" {
		t.Errorf("SpeedBar(100, 4) = %q", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Errorf("NextTheme does not cycle through all themes: %v", seen)
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestModelStartsAlgorithmFromDigit(t *testing.T) {
	m := newTestModel(t, []int{5, 3, 4, 1, 2})

	next, _ := m.Update(runes("5"))
	m = next.(Model)
	if m.snap.Algorithm != "Quick Sort" {
		t.Errorf("expected Quick Sort, got %q", m.snap.Algorithm)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := m.player.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if !m.snap.Complete {
		t.Error("expected completed frame after tick")
	}
	if !strings.Contains(m.View(), "DONE") {
		t.Error("view does not show DONE")
	}
}

func TestModelPauseAndSpeedKeys(t *testing.T) {
	m := newTestModel(t, []int{3, 2, 1})
	g := m.player.Gate()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !g.Paused() {
		t.Fatal("space should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view does not show PAUSED")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if g.Paused() {
		t.Fatal("second space should resume")
	}

	m.Update(runes("-"))
	m.Update(runes("-"))
	m.Update(runes("["))
	if g.Speed() != 89 {
		t.Errorf("expected speed 89, got %d", g.Speed())
	}
	m.Update(runes("]"))
	m.Update(runes("+"))
	if g.Speed() != 95 {
		t.Errorf("expected speed 95, got %d", g.Speed())
	}
}

func TestModelConfigMsg(t *testing.T) {
	m := newTestModel(t, []int{1, 2})
	cfg := config.DefaultConfig()
	cfg.Speed = 12
	cfg.Theme = "ocean"

	next, _ := m.Update(ConfigMsg{Config: cfg})
	m = next.(Model)
	if m.player.Gate().Speed() != 12 {
		t.Errorf("expected speed 12, got %d", m.player.Gate().Speed())
	}
	if m.theme.Name != "ocean" {
		t.Errorf("expected ocean theme, got %s", m.theme.Name)
	}
}

func TestModelThemeAndHelpKeys(t *testing.T) {
	m := newTestModel(t, []int{1, 2})
	next, _ := m.Update(runes("t"))
	m = next.(Model)
	if m.theme.Name != "ocean" {
		t.Errorf("expected theme after minimal to be ocean, got %s", m.theme.Name)
	}
	next, _ = m.Update(runes("?"))
	m = next.(Model)
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, []int{2, 1})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
