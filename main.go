package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sheetrunner/assets"
	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
	"github.com/milk9111/sheetrunner/system"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and hot reload of maps and specs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	basePath := "."
	if flag.NArg() > 0 {
		basePath = flag.Arg(0)
	}

	game, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("game spec: %v", err)
	}
	specs, err := prefabs.LoadEntitySpecs()
	if err != nil {
		log.Fatalf("entity specs: %v", err)
	}

	renderer := assets.NewRenderer(common.ScreenWidth, common.ScreenHeight)
	clock := assets.NewClock()
	manager := system.NewLevelManager(assets.NewPlatform(renderer, clock), game, specs)
	if err := manager.LoadIndex(basePath); err != nil {
		log.Fatalf("cannot start: %v", err)
	}
	defer manager.Close()

	var watcher *prefabs.Watcher
	if *debug {
		dirs := manager.LevelDirs()
		if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
			dirs = append(dirs, "prefabs")
		}
		watcher, err = prefabs.NewWatcher(game.Layout.Map, dirs...)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("sheetrunner")

	if err := ebiten.RunGame(NewGame(manager, renderer, clock, watcher, *debug)); err != nil {
		log.Fatal(err)
	}
}
