package game

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-invader/internal/config"
	"github.com/vovakirdan/tui-invader/internal/core"
	"github.com/vovakirdan/tui-invader/internal/panel"
	"github.com/vovakirdan/tui-invader/internal/panel/mocks"
)

func TestDestroyReleasesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	surfaces := mocks.NewMockSurfaces(ctrl)

	h := panel.Handle(7)
	gomock.InOrder(
		surfaces.EXPECT().Clear(h).Times(1),
		surfaces.EXPECT().Release(h).Times(1),
	)

	g := New(surfaces, config.DefaultInvaderConfig())
	o := Object{Height: 1, Width: 1, Handle: h}

	g.destroy(&o)
	if o.Handle != panel.NoHandle {
		t.Errorf("handle = %v after destroy, expected NoHandle", o.Handle)
	}
	// Second destroy is a no-op; any extra call would fail the controller.
	g.destroy(&o)
}

func TestResetTooSmallTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	surfaces := mocks.NewMockSurfaces(ctrl)

	surfaces.EXPECT().Bounds().Return(5, 10)
	surfaces.EXPECT().Commit()

	g := New(surfaces, config.DefaultInvaderConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})

	if !g.State().TooSmall {
		t.Fatal("5x10 should be too small")
	}
	g.Step(core.ActionFire, time.Now())
}

func TestSpawnDrawsSprites(t *testing.T) {
	ctrl := gomock.NewController(t)
	surfaces := mocks.NewMockSurfaces(ctrl)
	cfg := config.DefaultInvaderConfig()

	surfaces.EXPECT().Bounds().Return(24, 80)
	surfaces.EXPECT().Create(3, 7, 19, 36).Return(panel.Handle(1))
	surfaces.EXPECT().Write(panel.Handle(1), cfg.Player.Glyph, core.ColorYellow, core.AttrNone)
	surfaces.EXPECT().Create(2, 5, 3, 37).Return(panel.Handle(2))
	surfaces.EXPECT().Clear(panel.Handle(2))
	surfaces.EXPECT().Write(panel.Handle(2), cfg.Enemy.Glyph, core.ColorRed, core.AttrNone)
	surfaces.EXPECT().Commit()

	g := New(surfaces, cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})
}

func TestFireStacksAtBottom(t *testing.T) {
	ctrl := gomock.NewController(t)
	surfaces := mocks.NewMockSurfaces(ctrl)

	g := New(surfaces, config.DefaultInvaderConfig())
	g.world = World{
		Lines:  24,
		Cols:   80,
		Player: Player{Object: Object{Height: 3, Width: 7, Y: 19, X: 36, Handle: 1}},
	}

	gomock.InOrder(
		surfaces.EXPECT().Create(1, 1, 18, 39).Return(panel.Handle(9)),
		surfaces.EXPECT().Write(panel.Handle(9), "^", core.ColorDefault, core.AttrNone),
		surfaces.EXPECT().Bottom(panel.Handle(9)),
	)

	g.fire()
	if len(g.world.Projectiles) != 1 || g.world.Projectiles[0].Handle != 9 {
		t.Errorf("projectiles = %+v", g.world.Projectiles)
	}
}
