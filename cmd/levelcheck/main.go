package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/levels"
	"github.com/milk9111/geodash/prefabs"
	"github.com/milk9111/geodash/system"
)

func main() {
	levelName := flag.String("level", common.DefaultLevel, "level name in levels/ (basename, .lvl or .tengo optional)")
	mode := flag.String("mode", "auto", "input: auto, hold or idle")
	maxTicks := flag.Int("max-ticks", common.TPS*300, "give up after this many ticks")
	lookahead := flag.Float64("lookahead", 160, "auto mode: jump when an obstacle is this close")
	verbose := flag.Bool("v", false, "log every simulation event")
	flipAtFlag := flag.String("flip-at", "", "flip gravity before these ticks, comma separated (e.g. 1,600)")
	flag.Parse()

	flipAt, err := parseTicks(*flipAtFlag)
	if err != nil {
		log.Fatal(err)
	}

	physics, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		log.Fatal(err)
	}
	jump, err := newPilot(*mode, *lookahead)
	if err != nil {
		log.Fatal(err)
	}

	w := system.NewWorld(levels.Default(), physics)
	if err := w.InitializeLevel(*levelName); err != nil {
		log.Fatal(err)
	}

	var onEvent func(system.Event)
	if *verbose {
		onEvent = func(evt system.Event) {
			log.Printf("levelcheck: tick %d %s (%.1f, %.1f)", evt.Tick, evt.Kind, evt.Pos.X, evt.Pos.Y)
		}
	}

	res := run(w, jump, flipAt, 1/physics.TPS, *maxTicks, onEvent)
	fmt.Printf("%s: %s after %d ticks (%.1fs), %.0fpx\n", *levelName, res.Outcome, res.Ticks, float64(res.Ticks)/physics.TPS, res.Distance)

	kinds := make([]string, 0, len(res.Events))
	for k := range res.Events {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-12s %d\n", k, res.Events[system.EventKind(k)])
	}

	if res.Outcome != "victory" {
		os.Exit(1)
	}
}
