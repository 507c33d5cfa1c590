package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/sheetrunner/assets"
	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
	"github.com/milk9111/sheetrunner/system"
)

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	renderer *assets.Renderer
	clock    *assets.Clock
	input    *Input
	manager  *system.LevelManager
	watcher  *prefabs.Watcher
	pauseUI  *ebitenui.UI
}

func NewGame(manager *system.LevelManager, renderer *assets.Renderer, clock *assets.Clock, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		debug:    debug,
		renderer: renderer,
		clock:    clock,
		input:    NewInput(),
		manager:  manager,
		watcher:  watcher,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		g.drainWatcher()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	// a transition screen is on display
	if g.clock.Holding() {
		return nil
	}
	if g.manager.Complete() {
		return ebiten.Termination
	}

	for _, ev := range g.input.Poll() {
		g.manager.OnEvent(ev)
	}

	g.renderer.Clear()
	g.manager.Display()
	if err := g.manager.Err(); err != nil {
		return err
	}
	if !g.clock.Holding() {
		g.renderer.Present()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.renderer.Replay(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		msg := fmt.Sprintf("FPS: %.2f  frames: %d  level: %d", ebiten.ActualFPS(), g.frames, g.manager.Current())
		if lvl := g.manager.Level(); lvl != nil {
			msg += fmt.Sprintf("  time: %d", lvl.AvailableTime())
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.clock.SetPaused(paused)
}

// drainWatcher applies every pending file change without blocking.
func (g *Game) drainWatcher() {
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if prefabs.IsSpecFile(path) {
		game, err := prefabs.LoadGameSpec()
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		specs, err := prefabs.LoadEntitySpecs()
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		g.manager.SetSpecs(game, specs)
	}
	if err := g.manager.Reload(); err != nil {
		log.Printf("hot reload: %v", err)
	}
}
