package system

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/obj"
	"github.com/milk9111/sheetrunner/prefabs"
)

type fakeTexture struct{ released int }

func (t *fakeTexture) Size() (int, int) { return 10, 10 }
func (t *fakeTexture) Release()         { t.released++ }

type fakeRenderer struct {
	textures []*fakeTexture
	presents int
}

func (r *fakeRenderer) NewTexture(image.Image) (obj.Texture, error) {
	t := &fakeTexture{}
	r.textures = append(r.textures, t)
	return t, nil
}

func (r *fakeRenderer) Draw(obj.Texture, *common.Rect, *common.Rect) {}
func (r *fakeRenderer) Clear()                                       {}
func (r *fakeRenderer) Present()                                     { r.presents++ }

type fakeDecoder struct{}

func (fakeDecoder) DecodeImage(string) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
}

type fakeFont struct{ texts *[]string }

func (f fakeFont) Render(text string, _ color.Color, _ int) (image.Image, error) {
	*f.texts = append(*f.texts, text)
	return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (fakeFont) Close() error { return nil }

type fakeFonts struct{ texts []string }

func (f *fakeFonts) OpenFont(string, float64) (obj.Font, error) {
	return fakeFont{texts: &f.texts}, nil
}

type fakeSound struct{}

func (fakeSound) Play()             {}
func (fakeSound) Stop()             {}
func (fakeSound) SetVolume(float64) {}
func (fakeSound) Close() error      { return nil }

type fakeMixer struct{}

func (fakeMixer) LoadMusic(string) (obj.Music, error) { return fakeSound{}, nil }
func (fakeMixer) LoadSound(string) (obj.Sound, error) { return fakeSound{}, nil }

type fakeClock struct {
	now    int64
	delays []int64
}

func (c *fakeClock) Ticks() int64   { return c.now }
func (c *fakeClock) Delay(ms int64) { c.delays = append(c.delays, ms) }

type harness struct {
	base     string
	renderer *fakeRenderer
	fonts    *fakeFonts
	clock    *fakeClock
	manager  *LevelManager
}

// newHarness lays out base/data/<id>/map for every level and loads the index.
func newHarness(t *testing.T, maps map[string]string, order ...string) *harness {
	t.Helper()
	base := t.TempDir()
	game := prefabs.DefaultGameSpec()
	data := filepath.Join(base, game.Layout.DataDir)

	for id, content := range maps {
		dir := filepath.Join(data, id)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, game.Layout.Map), []byte(content), 0o644); err != nil {
			t.Fatalf("write map: %v", err)
		}
	}
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	index := strings.Join(order, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(data, game.Layout.Index), []byte(index), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	h := &harness{
		base:     base,
		renderer: &fakeRenderer{},
		fonts:    &fakeFonts{},
		clock:    &fakeClock{},
	}
	p := &obj.Platform{
		Images:   fakeDecoder{},
		Renderer: h.renderer,
		Fonts:    h.fonts,
		Audio:    fakeMixer{},
		Clock:    h.clock,
	}
	h.manager = NewLevelManager(p, game, prefabs.DefaultEntitySpecs())
	if err := h.manager.LoadIndex(base); err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	return h
}

func (h *harness) writeMap(t *testing.T, id, content string) {
	t.Helper()
	game := prefabs.DefaultGameSpec()
	path := filepath.Join(h.base, game.Layout.DataDir, id, game.Layout.Map)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
}

// A player dropping straight onto the door finishes on the first frame.
const finishMap = "P\nD\n"

func TestLevelManagerPlaysIndexInOrder(t *testing.T) {
	h := newHarness(t, map[string]string{"one": finishMap, "two": finishMap, "three": finishMap}, "one", "two", "three")
	m := h.manager

	for want := 0; want < 3; want++ {
		if !m.Display() {
			t.Fatalf("display %d failed", want)
		}
		if m.Current() != want {
			t.Fatalf("active level = %d, want %d", m.Current(), want)
		}
		if !m.Level().Finished() {
			t.Fatalf("level %d should finish on its first frame", want)
		}
		h.clock.now += 1000
	}

	if m.Display() {
		t.Fatalf("display after the last level should report false")
	}
	if !m.Complete() {
		t.Fatalf("manager should be complete")
	}
	if m.Display() || m.Display() {
		t.Fatalf("complete manager must keep reporting false")
	}
	if h.renderer.presents != 1 {
		t.Fatalf("ending screen presented %d times", h.renderer.presents)
	}
	if len(h.clock.delays) != 1 || h.clock.delays[0] != 3500 {
		t.Fatalf("delays = %v", h.clock.delays)
	}

	last := h.fonts.texts[len(h.fonts.texts)-1]
	if want := "Congratulations !\n\nYou have used 3 sheets in 3 seconds."; last != want {
		t.Fatalf("stats = %q, want %q", last, want)
	}
	for i, tex := range h.renderer.textures {
		if tex.released != 1 {
			t.Fatalf("texture %d released %d times", i, tex.released)
		}
	}
}

func TestLevelManagerFailureRestarts(t *testing.T) {
	// The plant under the player is hit on the first fall.
	h := newHarness(t, map[string]string{"easy": finishMap, "deadly": "P.D\nF..\n"}, "easy", "deadly")
	m := h.manager

	if !m.Display() {
		t.Fatalf("first level should render")
	}
	h.clock.now = 4000
	if m.Display() {
		t.Fatalf("second level should fail")
	}
	if m.Current() != -1 || m.Level() != nil {
		t.Fatalf("failed level should be dropped, current = %d", m.Current())
	}
	if m.Complete() {
		t.Fatalf("failure is not completion")
	}

	if !m.Display() || m.Current() != 0 {
		t.Fatalf("next display should restart from the first level, current = %d", m.Current())
	}
	if m.startTime != 0 {
		t.Fatalf("run start time should be kept, got %d", m.startTime)
	}
	if m.Err() != nil {
		t.Fatalf("gameplay failure is not an error: %v", m.Err())
	}
}

func TestLevelManagerFirstLoadFailure(t *testing.T) {
	h := newHarness(t, map[string]string{"broken": "....\n"}, "broken")
	m := h.manager

	if m.Display() {
		t.Fatalf("broken level should not display")
	}
	if !errors.Is(m.Err(), obj.ErrMissingPlayer) {
		t.Fatalf("Err = %v, want missing player", m.Err())
	}
	if m.Current() != -1 {
		t.Fatalf("current = %d, want -1", m.Current())
	}
}

func TestLevelManagerLaterLoadFailureIsNotFatal(t *testing.T) {
	h := newHarness(t, map[string]string{"ok": finishMap, "broken": "P...\n"}, "ok", "broken")
	m := h.manager

	m.Display()
	if m.Display() {
		t.Fatalf("broken level should not display")
	}
	if m.Err() != nil {
		t.Fatalf("Err = %v, want nil after a rendered frame", m.Err())
	}
	if m.Current() != -1 {
		t.Fatalf("current = %d, want -1", m.Current())
	}
}

func TestLevelManagerEmptyIndex(t *testing.T) {
	h := newHarness(t, nil)
	if h.manager.Display() || !h.manager.Complete() {
		t.Fatalf("empty index should complete immediately")
	}
	if last := h.fonts.texts[len(h.fonts.texts)-1]; !strings.Contains(last, "used 0 sheets in 0 seconds") {
		t.Fatalf("stats = %q", last)
	}
}

func TestLevelManagerReload(t *testing.T) {
	h := newHarness(t, map[string]string{"one": "P..D\n****\n"}, "one")
	m := h.manager

	if !m.Display() {
		t.Fatalf("level should render")
	}
	h.writeMap(t, "one", ".P.D\n****\n")
	if err := m.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if x := m.Level().Player().Rect().X; x != common.CellSize {
		t.Fatalf("player x = %d after reload, want %d", x, common.CellSize)
	}

	h.writeMap(t, "one", "....\n")
	if err := m.Reload(); !errors.Is(err, obj.ErrMissingPlayer) {
		t.Fatalf("Reload err = %v, want missing player", err)
	}
	if m.Display() {
		t.Fatalf("nothing to display while the map is broken")
	}
	if m.Current() != 0 {
		t.Fatalf("broken reload should keep the index, got %d", m.Current())
	}

	h.writeMap(t, "one", "P..D\n****\n")
	if err := m.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !m.Display() {
		t.Fatalf("fixed level should render again")
	}
	m.Close()
	if m.Level() != nil {
		t.Fatalf("Close should drop the level")
	}
}

func TestLevelManagerOnEventWithoutLevel(t *testing.T) {
	h := newHarness(t, map[string]string{"one": finishMap}, "one")
	h.manager.OnEvent(obj.KeyDown{Key: obj.KeyLeft})
	h.manager.OnEvent(obj.PointerDown{X: 1, Y: 1})
}

func TestReadIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvl_index")
	if err := os.WriteFile(path, []byte("first\r\n\nsecond\n  \nthird"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ids, err := ReadIndex(path)
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if strings.Join(ids, ",") != "first,second,third" {
		t.Fatalf("ids = %q", ids)
	}

	_, err = ReadIndex(filepath.Join(dir, "missing"))
	var ile *IndexLoadError
	if !errors.As(err, &ile) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want an index load error for a missing file", err)
	}
}

func TestLoadIndexMissing(t *testing.T) {
	m := NewLevelManager(&obj.Platform{}, prefabs.DefaultGameSpec(), prefabs.DefaultEntitySpecs())
	err := m.LoadIndex(t.TempDir())
	var ile *IndexLoadError
	if !errors.As(err, &ile) {
		t.Fatalf("err = %v, want IndexLoadError", err)
	}
}
