package game

import (
	"time"

	"github.com/vovakirdan/tui-invader/internal/core"
	"github.com/vovakirdan/tui-invader/internal/panel"
)

// Object is the common shape of every entity: a box on the grid and the
// surface that draws it.
type Object struct {
	Height, Width int
	Y, X          int // top-left cell
	Handle        panel.Handle
}

// Rect returns the object's bounding box.
func (o Object) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Present reports whether the object currently owns a surface.
func (o Object) Present() bool {
	return o.Handle.Valid()
}

// Player is the user-controlled ship.
type Player struct {
	Object
	Glyph string
}

// Projectile is a single-cell shot.
type Projectile struct {
	Object
	Cycle  int  // enemy projectile pattern phase, 0..3
	Hidden bool // player projectile that already struck the enemy
}

// FlashPhase is the step of the enemy death animation.
type FlashPhase int

const (
	FlashIdle    FlashPhase = iota // not started
	FlashBold                      // bold, default color
	FlashRed                       // normal red
	FlashBoldRed                   // bold red
	FlashDone                      // panel hidden, ready for destruction
)

// Enemy is the single opponent. It owns at most one projectile.
type Enemy struct {
	Object
	Glyph      string
	Dead       bool
	Projectile Projectile

	flash      FlashPhase
	flashSince time.Time
}

// Alive reports whether the enemy is on screen and not dead.
func (e Enemy) Alive() bool {
	return e.Present() && !e.Dead
}

// Flash returns the current death animation phase.
func (e Enemy) Flash() FlashPhase {
	return e.flash
}
