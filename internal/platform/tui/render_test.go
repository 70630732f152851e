package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invader/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	if got, want := RenderScreen(s), "ab   \n cd  "; got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawStyledText(1, 0, "~o~", core.ColorRed, core.AttrBold)
	s.DrawStyledText(3, 2, "^", core.ColorYellow, core.AttrNone)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 8 {
			t.Errorf("line %d is %d wide, expected 8", i, w)
		}
	}
	if !strings.Contains(out, "~o~") {
		t.Errorf("styled run was split: %q", out)
	}
}

func TestCellStyleBold(t *testing.T) {
	if !cellStyle(core.ColorRed, core.AttrBold).GetBold() {
		t.Error("AttrBold should render bold")
	}
	if cellStyle(core.ColorRed, core.AttrNone).GetBold() {
		t.Error("AttrNone should not render bold")
	}
	// Unknown colors fall back to the default style.
	if cellStyle(core.Color(200), core.AttrNone).GetBold() {
		t.Error("fallback style should not be bold")
	}
}
