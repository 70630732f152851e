package game

import (
	"time"

	"github.com/vovakirdan/tui-invader/internal/core"
	"github.com/vovakirdan/tui-invader/internal/panel"
)

// destroy releases the object's surface and marks it absent.
// Destroying an absent object is a no-op.
func (g *Game) destroy(o *Object) {
	if !o.Present() {
		return
	}
	g.surfaces.Clear(o.Handle)
	g.surfaces.Release(o.Handle)
	o.Handle = panel.NoHandle
}

// releaseAll destroys every object that still owns a surface.
func (g *Game) releaseAll() {
	w := &g.world
	g.destroy(&w.Player.Object)
	g.destroy(&w.Enemy.Projectile.Object)
	g.destroy(&w.Enemy.Object)
	for i := range w.Projectiles {
		g.destroy(&w.Projectiles[i].Object)
	}
	w.Projectiles = w.Projectiles[:0]
}

func (g *Game) spawnPlayer() {
	pc := g.cfg.Player
	p := &g.world.Player
	*p = Player{
		Object: Object{
			Height: pc.Height,
			Width:  pc.Width,
			Y:      g.world.Lines - pc.BottomOffset,
			X:      (g.world.Cols - pc.Width) / 2,
		},
		Glyph: pc.Glyph,
	}
	p.Handle = g.surfaces.Create(p.Height, p.Width, p.Y, p.X)
	g.surfaces.Write(p.Handle, p.Glyph, core.ColorYellow, core.AttrNone)
}

// placePlayer moves the player's surface to its current position and redraws it.
func (g *Game) placePlayer() {
	p := &g.world.Player
	g.surfaces.Clear(p.Handle)
	g.surfaces.Move(p.Handle, p.Y, p.X)
	g.surfaces.Write(p.Handle, p.Glyph, core.ColorYellow, core.AttrNone)
}

func (g *Game) spawnEnemy() {
	ec := g.cfg.Enemy
	e := &g.world.Enemy
	*e = Enemy{
		Object: Object{
			Height: ec.Height,
			Width:  ec.Width,
			Y:      ec.Height + 1,
			X:      (g.world.Cols - ec.Width) / 2,
		},
		Glyph: ec.Glyph,
	}
	e.Handle = g.surfaces.Create(e.Height, e.Width, e.Y, e.X)
	g.paintEnemy(core.ColorRed, core.AttrNone)
	g.logger.Debug("enemy spawned", "y", e.Y, "x", e.X)
}

func (g *Game) paintEnemy(color core.Color, attr core.Attr) {
	e := &g.world.Enemy
	g.surfaces.Clear(e.Handle)
	g.surfaces.Write(e.Handle, e.Glyph, color, attr)
}

// advanceFlash runs the enemy death animation: bold, red, bold red, each
// held for one flash step, then the panel is hidden.
func (g *Game) advanceFlash(now time.Time) {
	e := &g.world.Enemy
	if !e.Present() || !e.Dead {
		return
	}

	switch e.flash {
	case FlashIdle:
		e.flash = FlashBold
		e.flashSince = now
		g.paintEnemy(core.ColorDefault, core.AttrBold)
		return
	case FlashDone:
		return
	}

	if now.Sub(e.flashSince) < g.cfg.FlashStep() {
		return
	}
	e.flash++
	e.flashSince = now

	switch e.flash {
	case FlashRed:
		g.paintEnemy(core.ColorRed, core.AttrNone)
	case FlashBoldRed:
		g.paintEnemy(core.ColorRed, core.AttrBold)
	case FlashDone:
		g.surfaces.Hide(e.Handle)
	}
}

// fire launches a player projectile unless the queue is full.
func (g *Game) fire() {
	w := &g.world
	p := w.Player
	if len(w.Projectiles) >= g.cfg.Projectiles.Capacity {
		g.logger.Debug("fire dropped", "in_flight", len(w.Projectiles))
		return
	}
	if p.Y == 0 {
		return
	}

	shot := Projectile{Object: Object{Height: 1, Width: 1, Y: p.Y - 1, X: p.X + p.Width/2}}
	shot.Handle = g.surfaces.Create(1, 1, shot.Y, shot.X)
	g.surfaces.Write(shot.Handle, "^", core.ColorDefault, core.AttrNone)
	g.surfaces.Bottom(shot.Handle)
	w.Projectiles = append(w.Projectiles, shot)
}

// enemyFire launches the enemy's projectile from just below its center.
func (g *Game) enemyFire() {
	e := &g.world.Enemy
	shot := Projectile{Object: Object{Height: 1, Width: 1, Y: e.Y + e.Height, X: e.X + e.Width/2}}
	if shot.Y >= g.world.Lines {
		return
	}
	shot.Handle = g.surfaces.Create(1, 1, shot.Y, shot.X)
	g.surfaces.Write(shot.Handle, "v", core.ColorCyan, core.AttrNone)
	e.Projectile = shot
}
