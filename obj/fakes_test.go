package obj

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

type fakeTexture struct {
	w, h     int
	released int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Release()         { t.released++ }

type drawCall struct {
	tex      Texture
	src, dst *common.Rect
}

type fakeRenderer struct {
	textures []*fakeTexture
	draws    []drawCall
	clears   int
	presents int
	failAt   int // fail the n-th NewTexture call (1-based), 0 never
}

func (r *fakeRenderer) NewTexture(img image.Image) (Texture, error) {
	if r.failAt > 0 && len(r.textures)+1 == r.failAt {
		return nil, errors.New("upload failed")
	}
	b := img.Bounds()
	tex := &fakeTexture{w: b.Dx(), h: b.Dy()}
	r.textures = append(r.textures, tex)
	return tex, nil
}

func (r *fakeRenderer) Draw(tex Texture, src, dst *common.Rect) {
	r.draws = append(r.draws, drawCall{tex: tex, src: src, dst: dst})
}

func (r *fakeRenderer) Clear()   { r.clears++ }
func (r *fakeRenderer) Present() { r.presents++ }

type fakeDecoder struct {
	paths []string
	fail  string
}

func (d *fakeDecoder) DecodeImage(path string) (image.Image, error) {
	d.paths = append(d.paths, path)
	if d.fail != "" && filepath.Base(path) == d.fail {
		return nil, errors.New("decode failed")
	}
	return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
}

type fakeFont struct {
	renders []string
	closed  int
}

func (f *fakeFont) Render(text string, _ color.Color, _ int) (image.Image, error) {
	f.renders = append(f.renders, text)
	return image.NewNRGBA(image.Rect(0, 0, 20*len(text), 40)), nil
}

func (f *fakeFont) Close() error {
	f.closed++
	return nil
}

type fakeFonts struct {
	font *fakeFont
	err  error
}

func (f *fakeFonts) OpenFont(string, float64) (Font, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.font = &fakeFont{}
	return f.font, nil
}

type fakeSound struct {
	plays  int
	stops  int
	closed int
	volume float64
}

func (s *fakeSound) Play()               { s.plays++ }
func (s *fakeSound) Stop()               { s.stops++ }
func (s *fakeSound) SetVolume(v float64) { s.volume = v }
func (s *fakeSound) Close() error {
	s.closed++
	return nil
}

type fakeMixer struct {
	music  *fakeSound
	sounds map[string]*fakeSound
}

func (m *fakeMixer) LoadMusic(string) (Music, error) {
	m.music = &fakeSound{}
	return m.music, nil
}

func (m *fakeMixer) LoadSound(path string) (Sound, error) {
	if m.sounds == nil {
		m.sounds = make(map[string]*fakeSound)
	}
	s := &fakeSound{}
	m.sounds[filepath.Base(path)] = s
	return s, nil
}

type fakeClock struct {
	now    int64
	delays []int64
}

func (c *fakeClock) Ticks() int64     { return c.now }
func (c *fakeClock) Delay(ms int64)   { c.delays = append(c.delays, ms) }
func (c *fakeClock) advance(ms int64) { c.now += ms }

type fakePlatform struct {
	*Platform
	images   *fakeDecoder
	renderer *fakeRenderer
	fonts    *fakeFonts
	mixer    *fakeMixer
	clock    *fakeClock
}

func newFakePlatform() *fakePlatform {
	fp := &fakePlatform{
		images:   &fakeDecoder{},
		renderer: &fakeRenderer{},
		fonts:    &fakeFonts{},
		mixer:    &fakeMixer{},
		clock:    &fakeClock{},
	}
	fp.Platform = &Platform{
		Images:   fp.images,
		Renderer: fp.renderer,
		Fonts:    fp.fonts,
		Audio:    fp.mixer,
		Clock:    fp.clock,
	}
	return fp
}

// sound returns the fake loaded for the named audio entry.
func (fp *fakePlatform) sound(game prefabs.GameSpec, name string) *fakeSound {
	spec, _ := game.Sound(name)
	return fp.mixer.sounds[filepath.Base(spec.File)]
}

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	return path
}

// newTestLevel loads a level from content on a fake platform.
func newTestLevel(t *testing.T, content string) (*Level, *fakePlatform) {
	t.Helper()
	fp := newFakePlatform()
	l := NewLevel(writeMap(t, content), "background.png", "assets", fp.Platform,
		prefabs.DefaultGameSpec(), prefabs.DefaultEntitySpecs())
	if err := l.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return l, fp
}
