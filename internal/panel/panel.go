// Package panel provides stackable drawing surfaces in the style of curses
// panels. The game core talks only to the Surfaces interface; Deck is the
// in-memory implementation that composites into a core.Screen for the
// terminal layer to display.
package panel

import "github.com/vovakirdan/tui-invader/internal/core"

//go:generate go tool mockgen -destination=./mocks/surfaces_mock.go -package=mocks . Surfaces

// Handle is an opaque reference to a surface. The zero value is NoHandle.
type Handle uint32

// NoHandle marks an object that currently owns no surface.
const NoHandle Handle = 0

// Valid reports whether h refers to a surface (it may still have been released).
func (h Handle) Valid() bool {
	return h != NoHandle
}

// Surfaces is the render collaborator used by the game.
// All operations on NoHandle or a released handle are no-ops.
type Surfaces interface {
	// Create allocates a height x width surface at (y, x) on top of the stack.
	Create(height, width, y, x int) Handle
	// Move repositions the surface's top-left corner.
	Move(h Handle, y, x int)
	// Hide removes the surface from the composited frame without releasing it.
	Hide(h Handle)
	// Show makes a hidden surface visible again and raises it to the top.
	Show(h Handle)
	// Top raises the surface above all others.
	Top(h Handle)
	// Bottom lowers the surface below all others.
	Bottom(h Handle)
	// Hidden reports whether the surface is hidden. Unknown handles report true.
	Hidden(h Handle) bool
	// Release frees the surface.
	Release(h Handle)
	// Write draws glyphs from the surface origin. A newline starts the next row.
	Write(h Handle, glyphs string, color core.Color, attr core.Attr)
	// Clear blanks the surface.
	Clear(h Handle)
	// Commit composites every visible surface into the frame.
	Commit()
	// Bounds returns the frame size as (lines, cols).
	Bounds() (lines, cols int)
}
