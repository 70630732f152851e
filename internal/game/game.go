// Package game implements the invader simulation: a player ship that fires
// upward at a single randomly wandering enemy which shoots back in a zig-zag.
// All state lives in one World owned by Game and is mutated only by Step.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invader/internal/config"
	"github.com/vovakirdan/tui-invader/internal/core"
	"github.com/vovakirdan/tui-invader/internal/panel"
)

// World is the complete simulation state.
type World struct {
	Lines, Cols int // playfield size

	Player      Player
	Enemy       Enemy
	Projectiles []Projectile // player projectiles, oldest first

	GameOver bool
	Paused   bool
	TooSmall bool

	enemyClock time.Time // last enemy gate or destruction
	pausedAt   time.Time
	clockSet   bool
}

// Game drives a World against a render collaborator.
type Game struct {
	cfg      config.InvaderConfig
	surfaces panel.Surfaces
	logger   *log.Logger
	rng      *rand.Rand
	bounds   Bounds
	world    World
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game drawing on surfaces. Call Reset before the first Step.
func New(surfaces panel.Surfaces, cfg config.InvaderConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		surfaces: surfaces,
		logger:   log.New(io.Discard),
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset releases every surface and starts a fresh round sized to the
// collaborator's bounds. The wall-clock timers start on the next Step.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.releaseAll()

	lines, cols := g.surfaces.Bounds()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.bounds = EnemyBounds(lines, cols, g.cfg.Enemy)
	g.world = World{
		Lines:       lines,
		Cols:        cols,
		Projectiles: make([]Projectile, 0, g.cfg.Projectiles.Capacity),
	}

	if !g.fits() {
		g.world.TooSmall = true
		g.logger.Warn("playfield too small", "lines", lines, "cols", cols)
		g.surfaces.Commit()
		return
	}

	g.spawnPlayer()
	g.spawnEnemy()
	g.surfaces.Commit()
}

// fits reports whether the player and the enemy's full movement range fit
// on the playfield with room for the enemy to always take a step.
func (g *Game) fits() bool {
	pc, ec := g.cfg.Player, g.cfg.Enemy
	w := g.world
	spawn := Object{Height: ec.Height, Width: ec.Width, Y: ec.Height + 1, X: (w.Cols - ec.Width) / 2}

	if w.Cols < pc.Width+2 || w.Lines-pc.BottomOffset < 1 {
		return false
	}
	if g.bounds.MaxX-g.bounds.MinX < 1 {
		return false
	}
	return g.bounds.Contains(spawn)
}

// Close releases every outstanding surface.
func (g *Game) Close() {
	g.releaseAll()
	g.surfaces.Commit()
}

// Step advances the simulation by one tick. in is the latest key seen since
// the previous tick; now is the tick's wall-clock time.
func (g *Game) Step(in core.Action, now time.Time) core.StepResult {
	w := &g.world
	if !w.clockSet {
		w.enemyClock = now
		w.clockSet = true
	}
	if w.TooSmall {
		return core.StepResult{State: g.State()}
	}

	if in == core.ActionPause && !w.GameOver {
		g.togglePause(now)
	}
	if w.Paused {
		return core.StepResult{State: g.State()}
	}

	g.dispatch(in)
	g.advanceProjectiles()
	g.advanceFlash(now)
	g.tickEnemy(now)
	g.surfaces.Commit()

	return core.StepResult{State: g.State()}
}

// togglePause freezes the timers so a pause does not count toward them.
func (g *Game) togglePause(now time.Time) {
	w := &g.world
	if !w.Paused {
		w.Paused = true
		w.pausedAt = now
		return
	}
	w.Paused = false
	frozen := now.Sub(w.pausedAt)
	w.enemyClock = w.enemyClock.Add(frozen)
	w.Enemy.flashSince = w.Enemy.flashSince.Add(frozen)
}

// dispatch applies a movement or fire action to the player.
func (g *Game) dispatch(in core.Action) {
	w := &g.world
	p := &w.Player
	if !p.Present() {
		return
	}
	if in == core.ActionFire {
		g.fire()
		return
	}
	if !in.IsMove() {
		return
	}

	switch in {
	case core.ActionUp:
		if p.Y <= 1 {
			return
		}
		p.Y--
	case core.ActionDown:
		if p.Y+p.Height >= w.Lines {
			return
		}
		p.Y++
	case core.ActionLeft:
		if p.X <= 1 {
			return
		}
		p.X--
	case core.ActionRight:
		if p.X+p.Width >= w.Cols-1 {
			return
		}
		p.X++
	}
	g.placePlayer()
}

// advanceProjectiles moves every player projectile up one row. A projectile
// already on row 0 is destroyed instead and not checked again.
func (g *Game) advanceProjectiles() {
	w := &g.world
	e := &w.Enemy
	targetable := e.Alive() && !g.surfaces.Hidden(e.Handle)

	kept := w.Projectiles[:0]
	for i := range w.Projectiles {
		shot := w.Projectiles[i]
		if shot.Y == 0 {
			g.destroy(&shot.Object)
			continue
		}
		shot.Y--
		g.surfaces.Move(shot.Handle, shot.Y, shot.X)

		if targetable && !shot.Hidden && core.Overlaps(shot.Rect(), e.Rect()) {
			e.Dead = true
			targetable = false
			shot.Hidden = true
			g.surfaces.Hide(shot.Handle)
			g.logger.Debug("enemy hit", "y", e.Y, "x", e.X)
		}
		kept = append(kept, shot)
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// tickEnemy runs the enemy state machine when its gate is due, or respawns
// an absent enemy once the respawn delay has passed.
func (g *Game) tickEnemy(now time.Time) {
	w := &g.world
	e := &w.Enemy

	if !e.Present() {
		if now.Sub(w.enemyClock) >= g.cfg.RespawnDelay() {
			g.spawnEnemy()
			w.enemyClock = now
		}
		return
	}
	if now.Sub(w.enemyClock) < g.cfg.EnemyTick() {
		return
	}
	w.enemyClock = now

	if !e.Dead {
		StepEnemy(g.rng, &e.Object, g.bounds)
		g.surfaces.Move(e.Handle, e.Y, e.X)
	}

	switch {
	case e.Projectile.Present():
		g.advanceEnemyProjectile()
	case !e.Dead:
		g.enemyFire()
	case e.flash == FlashDone:
		g.destroy(&e.Object)
		g.logger.Debug("enemy destroyed")
	}
}

func (g *Game) advanceEnemyProjectile() {
	w := &g.world
	shot := &w.Enemy.Projectile

	if !AdvanceEnemyProjectile(shot, w.Lines, w.Cols) {
		g.destroy(&shot.Object)
		return
	}
	g.surfaces.Move(shot.Handle, shot.Y, shot.X)

	if w.Player.Present() && core.Overlaps(shot.Rect(), w.Player.Rect()) {
		g.destroy(&w.Player.Object)
		g.destroy(&shot.Object)
		w.GameOver = true
		g.logger.Info("player destroyed")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := &g.world
	return core.GameState{
		GameOver:    w.GameOver,
		Paused:      w.Paused,
		TooSmall:    w.TooSmall,
		EnemyAlive:  w.Enemy.Alive(),
		Projectiles: len(w.Projectiles),
		Capacity:    g.cfg.Projectiles.Capacity,
	}
}

// World returns the simulation state. The caller must not mutate it.
func (g *Game) World() *World {
	return &g.world
}
