package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/levels"
	"github.com/milk9111/geodash/prefabs"
	"github.com/milk9111/geodash/settings"
)

func main() {
	debug := flag.Bool("debug", false, "show hitboxes and log simulation events")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .lvl or .tengo optional)")
	watch := flag.Bool("watch", false, "reload the level when its file changes on disk")
	list := flag.Bool("list", false, "list the available levels and exit")
	flag.Parse()

	if *list {
		for _, name := range levels.Default().Names() {
			fmt.Println(name)
		}
		return
	}

	cfg := loadSettings()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "level":
			if *levelName != "" {
				cfg.Level = *levelName
			}
		case "watch":
			cfg.Watch = *watch
		}
	})

	physics, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		log.Fatal(err)
	}
	palette, err := prefabs.LoadPaletteSpec()
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(int(physics.TPS))
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.WindowSize())
	ebiten.SetWindowTitle("geodash")
	ebiten.SetFullscreen(cfg.Fullscreen)

	game, err := NewGame(gameConfig{
		level:   cfg.Level,
		debug:   cfg.Debug,
		watch:   cfg.Watch,
		physics: physics,
		palette: palette,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadSettings falls back to defaults when the config file cannot be used.
func loadSettings() settings.Settings {
	path, err := settings.Path()
	if err != nil {
		log.Printf("settings: %v", err)
		return settings.Default()
	}
	cfg, err := settings.Load(path)
	if err != nil {
		log.Printf("settings: %v", err)
	}
	if cfg.Level == "" {
		cfg.Level = common.DefaultLevel
	}
	return cfg
}
