package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/levels"
	"github.com/milk9111/geodash/prefabs"
	"github.com/milk9111/geodash/system"
)

type Game struct {
	frames int
	debug  bool

	world   *system.World
	input   *Input
	palette prefabs.PaletteSpec
	pauseUI *ebitenui.UI
	watcher *levels.Watcher

	sprites *spriteCache
	// flipFade eases the ground highlight between the floor (0) and the
	// ceiling (1).
	flipFade float32
}

type gameConfig struct {
	level   string
	debug   bool
	watch   bool
	physics prefabs.PhysicsSpec
	palette prefabs.PaletteSpec
}

func NewGame(cfg gameConfig) (*Game, error) {
	world := system.NewWorld(levels.Default(), cfg.physics)
	if err := world.InitializeLevel(cfg.level); err != nil {
		return nil, err
	}

	g := &Game{
		debug:   cfg.debug,
		world:   world,
		input:   NewInput(),
		palette: cfg.palette,
		sprites: newSpriteCache(),
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.watch {
		w, err := levels.NewWatcher(levels.Default().Dir)
		if err != nil {
			log.Printf("levels: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// paused is true while the run is frozen by the player rather than by a
// crash or a win.
func (g *Game) paused() bool {
	w := g.world
	return w.Frozen && !w.Victory && !w.Crashed()
}

func (g *Game) restart() {
	if err := g.world.Restart(); err != nil {
		log.Printf("game: restart %s: %v", g.world.Level(), err)
	}
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	g.reloadChangedLevels()

	w := g.world
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.PausePressed {
		w.TogglePause()
	}
	if g.input.RestartPressed && (w.Frozen || w.Crashed()) {
		g.restart()
	}

	w.SetJumping(g.input.JumpHeld)
	if g.input.GravityPressed {
		w.ToggleGravity()
	}
	if g.paused() {
		g.pauseUI.Update()
	}

	w.Update(1.0 / float64(ebiten.TPS()))
	g.logEvents()

	target := float32(0)
	if w.Player.GravityFlip {
		target = 1
	}
	g.flipFade = common.Lerp(g.flipFade, target, 0.2)
	return nil
}

func (g *Game) logEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case system.EventCrashed:
			log.Printf("game: %s attempt %d crashed at tick %d, %.0fpx in", g.world.Level(), g.world.Attempts, evt.Tick, g.world.Distance)
		case system.EventVictory:
			log.Printf("game: %s cleared on attempt %d", g.world.Level(), g.world.Attempts)
		default:
			if g.debug {
				log.Printf("game: tick %d %s (%.1f, %.1f)", evt.Tick, evt.Kind, evt.Pos.X, evt.Pos.Y)
			}
		}
	}
}

// reloadChangedLevels re-initialises the current level when its file
// changes on disk. A level that fails to load is logged and the running
// one kept.
func (g *Game) reloadChangedLevels() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if name != g.world.Level() {
				continue
			}
			if err := g.world.InitializeLevel(name); err != nil {
				log.Printf("levels: reload %s: %v", name, err)
				continue
			}
			log.Printf("levels: reloaded %s", name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("levels: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) status() string {
	w := g.world
	return fmt.Sprintf("%s   Attempt %d   FPS %.0f", w.Level(), w.Attempts, ebiten.ActualFPS())
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
