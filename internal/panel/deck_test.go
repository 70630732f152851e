package panel

import (
	"testing"

	"github.com/vovakirdan/tui-invader/internal/core"
)

func TestDeckCreateAndCommit(t *testing.T) {
	d := NewDeck(10, 20)
	h := d.Create(2, 3, 4, 5)
	if !h.Valid() {
		t.Fatal("Create should return a valid handle")
	}
	d.Write(h, "abc\nde", core.ColorRed, core.AttrBold)
	d.Commit()

	frame := d.Frame()
	if got := frame.Row(4)[5:8]; got != "abc" {
		t.Errorf("row 4 = %q, expected \"abc\"", got)
	}
	if got := frame.Row(5)[5:8]; got != "de " {
		t.Errorf("row 5 = %q, expected \"de \"", got)
	}
	c := frame.GetCell(5, 4)
	if c.Color != core.ColorRed || !c.Attr.Has(core.AttrBold) {
		t.Errorf("cell style = %+v, expected bold red", c)
	}
}

func TestDeckWriteWrapsAndClips(t *testing.T) {
	d := NewDeck(5, 5)
	h := d.Create(2, 2, 0, 0)
	d.Write(h, "abcdef", core.ColorDefault, core.AttrNone)
	d.Commit()

	if got := d.Frame().Row(0)[:2]; got != "ab" {
		t.Errorf("row 0 = %q, expected \"ab\"", got)
	}
	if got := d.Frame().Row(1)[:2]; got != "cd" {
		t.Errorf("row 1 = %q, expected \"cd\"", got)
	}
	if d.Frame().Get(0, 2) != ' ' {
		t.Error("glyphs past the last row should be dropped")
	}
}

func TestDeckStackingOrder(t *testing.T) {
	d := NewDeck(3, 3)
	lower := d.Create(1, 1, 1, 1)
	upper := d.Create(1, 1, 1, 1)
	d.Write(lower, "L", core.ColorDefault, core.AttrNone)
	d.Write(upper, "U", core.ColorDefault, core.AttrNone)

	d.Commit()
	if got := d.Frame().Get(1, 1); got != 'U' {
		t.Errorf("newest surface should be on top, got %q", got)
	}

	d.Bottom(upper)
	d.Commit()
	if got := d.Frame().Get(1, 1); got != 'L' {
		t.Errorf("after Bottom, lower surface should show, got %q", got)
	}

	d.Top(upper)
	d.Commit()
	if got := d.Frame().Get(1, 1); got != 'U' {
		t.Errorf("after Top, upper surface should show, got %q", got)
	}
}

func TestDeckHideShow(t *testing.T) {
	d := NewDeck(3, 3)
	h := d.Create(1, 1, 0, 0)
	d.Write(h, "x", core.ColorDefault, core.AttrNone)

	d.Hide(h)
	if !d.Hidden(h) {
		t.Error("Hidden should report true after Hide")
	}
	d.Commit()
	if d.Frame().Get(0, 0) != ' ' {
		t.Error("hidden surface should not be composited")
	}

	d.Show(h)
	d.Commit()
	if d.Frame().Get(0, 0) != 'x' {
		t.Error("shown surface should be composited")
	}
}

func TestDeckReleaseIsIdempotent(t *testing.T) {
	d := NewDeck(3, 3)
	h := d.Create(1, 1, 0, 0)

	d.Release(h)
	d.Release(h)
	d.Release(NoHandle)

	if d.Len() != 0 {
		t.Errorf("Len() = %d after release, expected 0", d.Len())
	}
	if !d.Hidden(h) {
		t.Error("released handle should report hidden")
	}

	// Operations on a released handle are no-ops.
	d.Move(h, 1, 1)
	d.Write(h, "x", core.ColorDefault, core.AttrNone)
	d.Commit()
	if d.Frame().Get(1, 1) != ' ' {
		t.Error("released surface should not draw")
	}
}

func TestDeckMoveClipsOffscreen(t *testing.T) {
	d := NewDeck(4, 4)
	h := d.Create(2, 2, 0, 0)
	d.Write(h, "ab\ncd", core.ColorDefault, core.AttrNone)

	d.Move(h, 3, 3)
	d.Commit()
	if got := d.Frame().Get(3, 3); got != 'a' {
		t.Errorf("visible corner = %q, expected 'a'", got)
	}

	d.Move(h, 10, 10)
	d.Commit()
	if got := d.Frame().String(); got != "    \n    \n    \n    " {
		t.Errorf("offscreen surface should not draw, frame = %q", got)
	}
}

func TestDeckResize(t *testing.T) {
	d := NewDeck(4, 4)
	d.Resize(6, 8)

	lines, cols := d.Bounds()
	if lines != 6 || cols != 8 {
		t.Errorf("Bounds() = (%d, %d), expected (6, 8)", lines, cols)
	}
	if d.Frame().Width() != 8 || d.Frame().Height() != 6 {
		t.Errorf("frame should follow resize, got %dx%d", d.Frame().Width(), d.Frame().Height())
	}
}
