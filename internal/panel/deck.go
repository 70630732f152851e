package panel

import (
	"slices"

	"github.com/vovakirdan/tui-invader/internal/core"
)

// surface is one stackable region of cells.
type surface struct {
	rect   core.Rect
	cells  [][]core.Cell
	hidden bool
}

func newSurface(height, width, y, x int) *surface {
	s := &surface{rect: core.NewRect(x, y, width, height)}
	s.cells = make([][]core.Cell, height)
	for row := range s.cells {
		s.cells[row] = make([]core.Cell, width)
	}
	s.clear()
	return s
}

func (s *surface) clear() {
	for row := range s.cells {
		for col := range s.cells[row] {
			s.cells[row][col] = core.Cell{Rune: ' '}
		}
	}
}

// Deck is a stack of surfaces composited bottom to top into a frame.
// It is not safe for concurrent use; the game loop owns it.
type Deck struct {
	lines    int
	cols     int
	next     Handle
	surfaces map[Handle]*surface
	order    []Handle // bottom first
	frame    *core.Screen
}

// NewDeck creates an empty deck whose frame is lines x cols.
func NewDeck(lines, cols int) *Deck {
	return &Deck{
		lines:    lines,
		cols:     cols,
		surfaces: make(map[Handle]*surface),
		frame:    core.NewScreen(cols, lines),
	}
}

// Create allocates a surface on top of the stack.
func (d *Deck) Create(height, width, y, x int) Handle {
	d.next++
	h := d.next
	d.surfaces[h] = newSurface(core.Max(height, 1), core.Max(width, 1), y, x)
	d.order = append(d.order, h)
	return h
}

// Move repositions a surface.
func (d *Deck) Move(h Handle, y, x int) {
	if s, ok := d.surfaces[h]; ok {
		s.rect.X = x
		s.rect.Y = y
	}
}

// Hide removes a surface from the composited frame.
func (d *Deck) Hide(h Handle) {
	if s, ok := d.surfaces[h]; ok {
		s.hidden = true
	}
}

// Show unhides a surface and raises it to the top.
func (d *Deck) Show(h Handle) {
	if s, ok := d.surfaces[h]; ok {
		s.hidden = false
		d.Top(h)
	}
}

// Top raises a surface above all others.
func (d *Deck) Top(h Handle) {
	if i := slices.Index(d.order, h); i >= 0 {
		d.order = append(slices.Delete(d.order, i, i+1), h)
	}
}

// Bottom lowers a surface below all others.
func (d *Deck) Bottom(h Handle) {
	if i := slices.Index(d.order, h); i >= 0 {
		d.order = slices.Insert(slices.Delete(d.order, i, i+1), 0, h)
	}
}

// Hidden reports whether a surface is hidden. Unknown handles report true.
func (d *Deck) Hidden(h Handle) bool {
	s, ok := d.surfaces[h]
	return !ok || s.hidden
}

// Release frees a surface. Releasing an unknown handle does nothing.
func (d *Deck) Release(h Handle) {
	if _, ok := d.surfaces[h]; !ok {
		return
	}
	delete(d.surfaces, h)
	if i := slices.Index(d.order, h); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
}

// Write draws glyphs from the surface origin, wrapping at the surface width.
// Glyphs past the last row are dropped.
func (d *Deck) Write(h Handle, glyphs string, color core.Color, attr core.Attr) {
	s, ok := d.surfaces[h]
	if !ok {
		return
	}
	row, col := 0, 0
	for _, r := range glyphs {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		if col >= s.rect.W {
			row++
			col = 0
		}
		if row >= s.rect.H {
			return
		}
		s.cells[row][col] = core.Cell{Rune: r, Color: color, Attr: attr}
		col++
	}
}

// Clear blanks a surface.
func (d *Deck) Clear(h Handle) {
	if s, ok := d.surfaces[h]; ok {
		s.clear()
	}
}

// Commit redraws the frame from every visible surface, bottom first.
func (d *Deck) Commit() {
	d.frame.Clear()
	view := core.NewRect(0, 0, d.cols, d.lines)
	for _, h := range d.order {
		s := d.surfaces[h]
		if s.hidden || !s.rect.Intersects(view) {
			continue
		}
		for row := range s.cells {
			for col, c := range s.cells[row] {
				d.frame.SetCell(s.rect.X+col, s.rect.Y+row, c)
			}
		}
	}
}

// Bounds returns the frame size as (lines, cols).
func (d *Deck) Bounds() (lines, cols int) {
	return d.lines, d.cols
}

// Frame returns the last committed frame.
func (d *Deck) Frame() *core.Screen {
	return d.frame
}

// Len returns the number of live surfaces.
func (d *Deck) Len() int {
	return len(d.surfaces)
}

// Resize changes the frame size. Surfaces keep their positions.
func (d *Deck) Resize(lines, cols int) {
	d.lines = lines
	d.cols = cols
	d.frame.Resize(cols, lines)
}

var _ Surfaces = (*Deck)(nil)
