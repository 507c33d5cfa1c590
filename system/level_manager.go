package system

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/obj"
	"github.com/milk9111/sheetrunner/prefabs"
)

// LevelManager plays the levels of an index in order. Only one level is
// loaded at a time; the previous one is unloaded before the next is built.
type LevelManager struct {
	platform *obj.Platform
	game     prefabs.GameSpec
	specs    prefabs.EntitySpecs

	dataDir   string
	assetDir  string
	indexPath string

	levelIDs []string
	current  int
	level    *obj.Level

	startTime int64
	rendered  bool
	complete  bool
	err       error
}

func NewLevelManager(p *obj.Platform, game prefabs.GameSpec, specs prefabs.EntitySpecs) *LevelManager {
	return &LevelManager{
		platform:  p,
		game:      game,
		specs:     specs,
		current:   -1,
		startTime: -1,
	}
}

// LoadIndex resolves the data and asset directories under basePath and
// reads the level index.
func (m *LevelManager) LoadIndex(basePath string) error {
	m.dataDir = filepath.Join(basePath, m.game.Layout.DataDir)
	m.assetDir = filepath.Join(basePath, m.game.Layout.AssetDir)
	m.indexPath = filepath.Join(m.dataDir, m.game.Layout.Index)

	ids, err := ReadIndex(m.indexPath)
	if err != nil {
		return err
	}
	m.levelIDs = ids
	return nil
}

// Display advances to the next level when none is active or the active one
// is finished, then renders the active level. It returns false when the
// level could not be loaded, when it failed this frame, and on every call
// once all levels are complete.
func (m *LevelManager) Display() bool {
	if m.complete {
		return false
	}

	if m.level == nil && m.current > -1 {
		// waiting for a successful Reload
		return false
	}

	if m.level == nil || m.level.Finished() {
		if !m.prepareNextLevel() {
			if !m.complete {
				m.current = -1
			}
			return false
		}
	}

	if m.startTime < 0 {
		m.startTime = m.platform.Clock.Ticks()
	}

	if !m.level.Render() {
		m.level.Unload()
		m.level = nil
		m.current = -1
		return false
	}

	m.rendered = true
	return true
}

func (m *LevelManager) prepareNextLevel() bool {
	if m.level != nil {
		log.Printf("unloading level %s", m.levelIDs[m.current])
		m.level.Unload()
		m.level = nil
	}

	m.current++
	if m.current >= len(m.levelIDs) {
		m.showEnding()
		m.complete = true
		return false
	}

	lvl := m.newLevel(m.levelIDs[m.current])
	if err := lvl.Load(); err != nil {
		if !m.rendered {
			m.err = err
		}
		return false
	}
	m.level = lvl
	return true
}

func (m *LevelManager) newLevel(id string) *obj.Level {
	dir := filepath.Join(m.dataDir, id)
	return obj.NewLevel(
		filepath.Join(dir, m.game.Layout.Map),
		filepath.Join(dir, m.game.Layout.Background),
		m.assetDir,
		m.platform,
		m.game,
		m.specs,
	)
}

// showEnding presents the end picture with the run statistics and holds it.
func (m *LevelManager) showEnding() {
	elapsed := int64(0)
	if m.startTime >= 0 {
		elapsed = (m.platform.Clock.Ticks() - m.startTime) / 1000
	}

	r := m.platform.Renderer
	r.Clear()

	screens := m.game.Screens
	path := filepath.Join(m.assetDir, screens.End)
	img, err := m.platform.Images.DecodeImage(path)
	if err != nil {
		log.Printf("ending screen %s: %v", path, err)
		return
	}
	endTex, err := r.NewTexture(img)
	if err != nil {
		log.Printf("ending screen %s: %v", path, err)
		return
	}
	defer endTex.Release()
	r.Draw(endTex, nil, nil)

	text := fmt.Sprintf("Congratulations !\n\nYou have used %d sheets in %d seconds.", len(m.levelIDs), elapsed)
	if statsTex := m.renderText(text, screens.StatsWrap); statsTex != nil {
		defer statsTex.Release()
		w, h := statsTex.Size()
		dst := common.Rect{X: screens.StatsX, Y: screens.StatsY, Width: w, Height: h}
		r.Draw(statsTex, nil, &dst)
	}

	r.Present()
	m.platform.Clock.Delay(screens.EndMS)
}

func (m *LevelManager) renderText(text string, wrap int) obj.Texture {
	fontPath := filepath.Join(m.assetDir, m.game.Font.File)
	font, err := m.platform.Fonts.OpenFont(fontPath, m.game.Font.Size)
	if err != nil {
		log.Printf("cannot load the font %s: %v", fontPath, err)
		return nil
	}
	defer font.Close()

	var c color.Color = color.Black
	if m.game.Font.Color != nil && m.game.Font.Color.Color != nil {
		c = m.game.Font.Color.Color
	}
	img, err := font.Render(text, c, wrap)
	if err != nil {
		log.Printf("render stats: %v", err)
		return nil
	}
	tex, err := m.platform.Renderer.NewTexture(img)
	if err != nil {
		log.Printf("stats texture: %v", err)
		return nil
	}
	return tex
}

// OnEvent forwards an input event to the active level.
func (m *LevelManager) OnEvent(ev obj.Event) {
	if m.level != nil {
		m.level.OnEvent(ev)
	}
}

// Reload rebuilds the active level from disk, keeping its index. While the
// reload fails, Display renders nothing and a later Reload retries.
func (m *LevelManager) Reload() error {
	if m.complete || m.current < 0 {
		return nil
	}
	if m.level != nil {
		m.level.Unload()
		m.level = nil
	}

	lvl := m.newLevel(m.levelIDs[m.current])
	if err := lvl.Load(); err != nil {
		return fmt.Errorf("reload level %s: %w", m.levelIDs[m.current], err)
	}
	m.level = lvl
	log.Printf("reloaded level %s", m.levelIDs[m.current])
	return nil
}

// SetSpecs replaces the tuning values used by levels loaded from now on.
func (m *LevelManager) SetSpecs(game prefabs.GameSpec, specs prefabs.EntitySpecs) {
	m.game = game
	m.specs = specs
}

// Close unloads the active level.
func (m *LevelManager) Close() {
	if m.level != nil {
		m.level.Unload()
		m.level = nil
	}
}

// Complete reports whether every level has been played.
func (m *LevelManager) Complete() bool { return m.complete }

// Err returns the load error of a level that failed before any frame was
// ever rendered. Such a failure cannot be recovered by retrying.
func (m *LevelManager) Err() error { return m.err }

// Current returns the index of the active level, or -1.
func (m *LevelManager) Current() int { return m.current }

// Level returns the active level, or nil.
func (m *LevelManager) Level() *obj.Level { return m.level }

func (m *LevelManager) LevelIDs() []string { return m.levelIDs }

// LevelDirs returns the data directory of every level in the index.
func (m *LevelManager) LevelDirs() []string {
	dirs := make([]string, 0, len(m.levelIDs))
	for _, id := range m.levelIDs {
		dirs = append(dirs, filepath.Join(m.dataDir, id))
	}
	return dirs
}
