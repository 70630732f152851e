package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invader/internal/config"
	"github.com/vovakirdan/tui-invader/internal/core"
)

// Direction is one of the four grid steps.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Bounds is the inclusive range of top-left positions an object may occupy.
type Bounds struct {
	MinY, MaxY int
	MinX, MaxX int
}

// EnemyBounds derives the enemy's movement range from the playfield size.
// Each direction has its own limit: the top margin, the floor kept free for
// the player, and a margin on either side.
func EnemyBounds(lines, cols int, cfg config.EnemyConfig) Bounds {
	return Bounds{
		MinY: cfg.TopMargin,
		MaxY: lines - cfg.FloorOffset - cfg.Height,
		MinX: cfg.SideMargin,
		MaxX: cols - cfg.SideMargin - cfg.Width,
	}
}

// Allows reports whether one step in d keeps o inside b.
func (b Bounds) Allows(o Object, d Direction) bool {
	switch d {
	case DirUp:
		return o.Y-1 >= b.MinY
	case DirDown:
		return o.Y+1 <= b.MaxY
	case DirLeft:
		return o.X-1 >= b.MinX
	case DirRight:
		return o.X+1 <= b.MaxX
	default:
		return false
	}
}

// Contains reports whether o's position lies inside b.
func (b Bounds) Contains(o Object) bool {
	return o.Y >= b.MinY && o.Y <= b.MaxY && o.X >= b.MinX && o.X <= b.MaxX
}

func (o *Object) step(d Direction) {
	switch d {
	case DirUp:
		o.Y--
	case DirDown:
		o.Y++
	case DirLeft:
		o.X--
	case DirRight:
		o.X++
	}
}

// StepEnemy moves o one cell in a uniformly random direction that stays in
// bounds, redrawing until one is accepted. It returns the direction taken
// and the number of draws. It panics when no direction is legal, which only
// a playfield smaller than the configured margins can cause.
func StepEnemy(rng *rand.Rand, o *Object, b Bounds) (Direction, int) {
	legal := false
	for _, d := range directions {
		if b.Allows(*o, d) {
			legal = true
			break
		}
	}
	if !legal {
		panic(fmt.Sprintf("game: enemy at (%d,%d) has no legal step within %+v", o.Y, o.X, b))
	}

	for tries := 1; ; tries++ {
		d := directions[rng.Intn(len(directions))]
		if b.Allows(*o, d) {
			o.step(d)
			return d, tries
		}
	}
}

// AdvanceEnemyProjectile moves p one step of the zig-zag pattern:
// phases 0 and 1 go down-left, 2 and 3 go down-right, then the cycle
// restarts. It returns false, leaving p untouched, when the next row would
// leave the playfield. Columns are clamped to [0, cols-1].
func AdvanceEnemyProjectile(p *Projectile, lines, cols int) bool {
	if p.Y+1 >= lines {
		return false
	}
	p.Y++
	switch p.Cycle {
	case 0, 1:
		p.X--
		p.Cycle++
	case 2:
		p.X++
		p.Cycle++
	default:
		p.X++
		p.Cycle = 0
	}
	p.X = core.Clamp(p.X, 0, cols-1)
	return true
}
