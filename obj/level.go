package obj

import (
	"image"
	"image/color"
	"log"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/milk9111/sheetrunner/common"
	"github.com/milk9111/sheetrunner/prefabs"
)

// Level owns one map: its ground tiles, every entity, the countdown and the
// level's textures and sounds. A Level is built from paths only; Load
// acquires everything and Unload releases it.
type Level struct {
	mapPath  string
	bgPath   string
	assetDir string

	platform *Platform
	game     prefabs.GameSpec
	specs    prefabs.EntitySpecs

	bgImage     image.Image
	groundImage image.Image
	bg          Texture
	groundTex   Texture
	bgRect      common.Rect
	groundSrc   common.Rect
	ground      []common.Rect

	player   *Player
	door     *Door
	pencils  []*Pencil
	spikes   []*Spike
	plants   []*Plantivorus
	arachnes []*Arachne
	ghosts   []*Ghost
	monsters []*Monster
	bonuses  []*TimeBonus

	font     Font
	timerTex Texture
	timerDst common.Rect

	music     Music
	sfxEraser Sound
	sfxDie    Sound
	sfxTime   Sound

	availableTime int
	sched         schedule
	loaded        bool
	finished      bool
}

func NewLevel(mapPath, bgPath, assetDir string, p *Platform, game prefabs.GameSpec, specs prefabs.EntitySpecs) *Level {
	return &Level{
		mapPath:       mapPath,
		bgPath:        bgPath,
		assetDir:      assetDir,
		platform:      p,
		game:          game,
		specs:         specs,
		bgRect:        common.Rect{Width: common.ScreenWidth, Height: common.ScreenHeight},
		groundSrc:     common.Rect{Width: specs.Ground.Width, Height: specs.Ground.Height},
		availableTime: game.AvailableTime,
		sched:         newSchedule(game.Cadence),
	}
}

// Load decodes the background and ground images, opens the font, parses the
// map, uploads every texture and loads the audio, then starts the music. On
// failure everything acquired so far is released and the error is returned.
func (l *Level) Load() (err error) {
	if l.loaded {
		return nil
	}
	defer func() {
		if err != nil {
			log.Printf("level %s: %v", l.mapPath, err)
			l.Unload()
		}
	}()

	if l.bgImage, err = l.decode("background", l.bgPath); err != nil {
		return err
	}

	fontPath := l.asset(l.game.Font.File)
	if l.font, err = l.platform.Fonts.OpenFont(fontPath, l.game.Font.Size); err != nil {
		return &ResourceLoadError{Asset: "font", Path: fontPath, Err: err}
	}

	if l.groundImage, err = l.decode("ground", l.asset(l.specs.Ground.Image)); err != nil {
		return err
	}

	if err := l.loadMap(); err != nil {
		return err
	}

	if err := l.initTextures(); err != nil {
		return err
	}

	if err := l.loadAudio(); err != nil {
		return err
	}

	l.loaded = true
	l.music.Play()
	return nil
}

// loadMap parses the map and builds every entity from it. Each image is
// decoded once and shared until the textures are created.
func (l *Level) loadMap() error {
	layout, err := ParseMapFile(l.mapPath)
	if err != nil {
		return err
	}

	decoded := make(map[string]image.Image)
	img := func(asset string, spec prefabs.EntitySpec) (image.Image, error) {
		if im, ok := decoded[spec.Image]; ok {
			return im, nil
		}
		im, err := l.decode(asset, l.asset(spec.Image))
		if err != nil {
			return nil, err
		}
		decoded[spec.Image] = im
		return im, nil
	}

	for _, pos := range layout.Ground {
		l.ground = append(l.ground, common.CellRect(pos, l.specs.Ground.Width, l.specs.Ground.Height))
	}

	playerImg, err := img("player", l.specs.Player.EntitySpec)
	if err != nil {
		return err
	}
	l.player = NewPlayer(playerImg, l.specs.Player, layout.Player)

	doorImg, err := img("door", l.specs.Door)
	if err != nil {
		return err
	}
	l.door = NewDoor(doorImg, l.specs.Door, layout.Door)

	if len(layout.Arachnes) > 0 {
		im, err := img("arachne", l.specs.Arachne)
		if err != nil {
			return err
		}
		for _, pos := range layout.Arachnes {
			l.arachnes = append(l.arachnes, NewArachne(im, l.specs.Arachne, pos))
		}
	}
	if len(layout.Spikes) > 0 {
		im, err := img("spike", l.specs.Spike)
		if err != nil {
			return err
		}
		for _, pos := range layout.Spikes {
			l.spikes = append(l.spikes, NewSpike(im, l.specs.Spike, pos))
		}
	}
	if len(layout.Plants) > 0 {
		im, err := img("plantivorus", l.specs.Plant)
		if err != nil {
			return err
		}
		for _, pos := range layout.Plants {
			l.plants = append(l.plants, NewPlantivorus(im, l.specs.Plant, pos))
		}
	}
	if len(layout.Ghosts) > 0 {
		im, err := img("ghost", l.specs.Ghost)
		if err != nil {
			return err
		}
		for _, pos := range layout.Ghosts {
			l.ghosts = append(l.ghosts, NewGhost(im, l.specs.Ghost, pos))
		}
	}
	if len(layout.TimeBonuses) > 0 {
		im, err := img("time bonus", l.specs.TimeBonus)
		if err != nil {
			return err
		}
		for _, pos := range layout.TimeBonuses {
			l.bonuses = append(l.bonuses, NewTimeBonus(im, l.specs.TimeBonus, pos))
		}
	}
	if len(layout.Pencils) > 0 {
		im, err := img("pencil", l.specs.Pencil)
		if err != nil {
			return err
		}
		for _, pos := range layout.Pencils {
			l.pencils = append(l.pencils, NewPencil(im, l.specs.Pencil, pos))
		}
	}
	if len(layout.Monsters) > 0 {
		im, err := img("monster", l.specs.Monster)
		if err != nil {
			return err
		}
		for _, m := range layout.Monsters {
			l.monsters = append(l.monsters, NewMonster(im, l.specs.Monster, m.X1, m.X2, m.Row))
		}
	}
	return nil
}

// initTextures uploads the background, the ground, every entity collection,
// the door and the player, in that order, and stops at the first failure.
func (l *Level) initTextures() error {
	r := l.platform.Renderer

	tex, err := r.NewTexture(l.bgImage)
	if err != nil {
		return &ResourceLoadError{Asset: "background texture", Path: l.bgPath, Err: err}
	}
	l.bg = tex
	l.bgImage = nil

	tex, err = r.NewTexture(l.groundImage)
	if err != nil {
		return &ResourceLoadError{Asset: "ground texture", Err: err}
	}
	l.groundTex = tex
	l.groundImage = nil

	if err := initAll(r, "pencil texture", l.pencils); err != nil {
		return err
	}
	if err := initAll(r, "spike texture", l.spikes); err != nil {
		return err
	}
	if err := initAll(r, "plantivorus texture", l.plants); err != nil {
		return err
	}
	if err := initAll(r, "arachne texture", l.arachnes); err != nil {
		return err
	}
	if err := initAll(r, "ghost texture", l.ghosts); err != nil {
		return err
	}
	if err := initAll(r, "monster texture", l.monsters); err != nil {
		return err
	}
	if err := initAll(r, "time bonus texture", l.bonuses); err != nil {
		return err
	}
	if err := l.door.initTexture(r); err != nil {
		return &ResourceLoadError{Asset: "door texture", Err: err}
	}
	if err := l.player.initTexture(r); err != nil {
		return &ResourceLoadError{Asset: "player texture", Err: err}
	}
	return nil
}

type texturable interface {
	initTexture(r Renderer) error
}

func initAll[E texturable](r Renderer, asset string, ents []E) error {
	for _, e := range ents {
		if err := e.initTexture(r); err != nil {
			return &ResourceLoadError{Asset: asset, Err: err}
		}
	}
	return nil
}

func (l *Level) loadAudio() error {
	mixer := l.platform.Audio

	spec, _ := l.game.Sound(prefabs.AudioMusic)
	music, err := mixer.LoadMusic(l.asset(spec.File))
	if err != nil {
		return &ResourceLoadError{Asset: "music", Path: l.asset(spec.File), Err: err}
	}
	music.SetVolume(spec.Volume)
	l.music = music

	sound := func(name string) (Sound, error) {
		spec, _ := l.game.Sound(name)
		s, err := mixer.LoadSound(l.asset(spec.File))
		if err != nil {
			return nil, &ResourceLoadError{Asset: "sound " + name, Path: l.asset(spec.File), Err: err}
		}
		s.SetVolume(spec.Volume)
		return s, nil
	}
	if l.sfxEraser, err = sound(prefabs.AudioEraser); err != nil {
		return err
	}
	if l.sfxDie, err = sound(prefabs.AudioDie); err != nil {
		return err
	}
	if l.sfxTime, err = sound(prefabs.AudioTimer); err != nil {
		return err
	}
	return nil
}

// Unload releases every texture, sound, track and font the level holds and
// resets it to its freshly built state. Calling it twice is harmless.
func (l *Level) Unload() {
	if l.bg != nil {
		l.bg.Release()
		l.bg = nil
	}
	if l.groundTex != nil {
		l.groundTex.Release()
		l.groundTex = nil
	}
	if l.timerTex != nil {
		l.timerTex.Release()
		l.timerTex = nil
	}
	l.bgImage = nil
	l.groundImage = nil

	if l.player != nil {
		l.player.release()
		l.player = nil
	}
	if l.door != nil {
		l.door.release()
		l.door = nil
	}
	l.pencils = releaseAll(l.pencils)
	l.spikes = releaseAll(l.spikes)
	l.plants = releaseAll(l.plants)
	l.arachnes = releaseAll(l.arachnes)
	l.ghosts = releaseAll(l.ghosts)
	l.monsters = releaseAll(l.monsters)
	l.bonuses = releaseAll(l.bonuses)
	l.ground = nil

	if l.music != nil {
		l.music.Stop()
		closeOrLog("music", l.music)
		l.music = nil
	}
	for _, s := range []*Sound{&l.sfxEraser, &l.sfxDie, &l.sfxTime} {
		if *s != nil {
			closeOrLog("sound", *s)
			*s = nil
		}
	}
	if l.font != nil {
		closeOrLog("font", l.font)
		l.font = nil
	}

	l.availableTime = l.game.AvailableTime
	l.sched.reset()
	l.loaded = false
	l.finished = false
}

type releaser interface {
	release()
}

func releaseAll[E releaser](ents []E) []E {
	for _, e := range ents {
		e.release()
	}
	return nil
}

func closeOrLog(what string, c interface{ Close() error }) {
	if err := c.Close(); err != nil {
		log.Printf("close %s: %v", what, err)
	}
}

// Render draws one frame and runs the collision checks and every due
// cadence. It returns false when the level failed: the player touched a
// hazard or the countdown ran out. Both cases show a transition screen
// before returning.
func (l *Level) Render() bool {
	if !l.loaded {
		return false
	}
	r := l.platform.Renderer

	bgSrc, bgDst := l.bgRect, l.bgRect
	r.Draw(l.bg, &bgSrc, &bgDst)
	for _, g := range l.ground {
		src, dst := l.groundSrc, g
		r.Draw(l.groundTex, &src, &dst)
	}
	renderAll(r, l.pencils)
	renderAll(r, l.spikes)
	renderAll(r, l.plants)
	renderAll(r, l.arachnes)
	renderAll(r, l.ghosts)
	renderAll(r, l.monsters)
	renderAll(r, l.bonuses)
	l.door.Render(r)

	now := l.platform.Clock.Ticks()

	if l.sched.timer.due(now) {
		l.availableTime--
		if l.availableTime <= 0 {
			l.showScreen(l.game.Screens.NoTime, l.game.Screens.FailMS)
			return false
		}
		l.refreshTimer()
	}
	if l.timerTex != nil {
		dst := l.timerDst
		r.Draw(l.timerTex, nil, &dst)
	}

	if l.sched.physics.due(now) {
		if l.player.Jumping() {
			l.player.Walk(l.ground)
		} else {
			l.player.Fall(l.ground)
		}
	}

	if l.sched.monster.due(now) {
		for _, m := range l.monsters {
			m.Move()
		}
	}

	if l.sched.spike.due(now) {
		for _, s := range l.spikes {
			s.SwitchSpikes()
		}
	}

	if l.sched.creature.due(now) {
		for _, p := range l.plants {
			p.SwitchPosition()
		}
		for _, a := range l.arachnes {
			a.SwitchPosition()
		}
		for _, g := range l.ghosts {
			g.SwitchPosition()
		}
	}

	if l.dangerCollision() {
		l.sfxDie.Play()
		l.platform.Clock.Delay(l.game.Screens.DeathMS)
		l.showScreen(l.game.Screens.Fail, l.game.Screens.FailMS)
		return false
	}

	if l.doorCollision() {
		l.finished = true
	}

	if i := l.timeBonusCollision(); i > -1 {
		l.sfxTime.Play()
		l.bonuses[i].release()
		l.bonuses = slices.Delete(l.bonuses, i, i+1)
		l.availableTime += l.game.TimeBonusValue
		l.refreshTimer()
	}

	l.player.Render(r)
	return true
}

func renderAll[E Entity](r Renderer, ents []E) {
	for _, e := range ents {
		e.Render(r)
	}
}

// refreshTimer rebuilds the countdown texture, releasing the previous one.
func (l *Level) refreshTimer() {
	img, err := l.font.Render(strconv.Itoa(l.availableTime), l.textColor(), l.bgRect.Width-5)
	if err != nil {
		log.Printf("render timer: %v", err)
		return
	}
	tex, err := l.platform.Renderer.NewTexture(img)
	if err != nil {
		log.Printf("timer texture: %v", err)
		return
	}
	if l.timerTex != nil {
		l.timerTex.Release()
	}
	l.timerTex = tex

	w, h := tex.Size()
	l.timerDst = common.Rect{
		X:      5*l.bgRect.Width/6 + 80,
		Y:      l.game.Screens.TimerMargin,
		Width:  w,
		Height: h,
	}
}

// showScreen clears the frame, presents the named full-screen picture and
// holds it for ms milliseconds.
func (l *Level) showScreen(name string, ms int64) {
	r := l.platform.Renderer
	r.Clear()
	img, err := l.platform.Images.DecodeImage(l.asset(name))
	if err != nil {
		log.Printf("screen %s: %v", name, err)
		return
	}
	tex, err := r.NewTexture(img)
	if err != nil {
		log.Printf("screen %s: %v", name, err)
		return
	}
	r.Draw(tex, nil, nil)
	r.Present()
	l.platform.Clock.Delay(ms)
	tex.Release()
}

// OnEvent applies an input event. Arrow keys move the player tentatively
// and revert the move when it lands in the ground; UP that is not blocked
// starts a jump. A pointer press erases what lies under it.
func (l *Level) OnEvent(ev Event) {
	if !l.loaded {
		return
	}
	switch e := ev.(type) {
	case KeyDown:
		switch e.Key {
		case KeyLeft:
			l.player.MoveX(-1)
			if l.groundCollision() {
				l.player.MoveX(1)
			}
		case KeyRight:
			l.player.MoveX(1)
			if l.groundCollision() {
				l.player.MoveX(-1)
			}
		case KeyUp:
			l.player.MoveY(-2)
			if l.groundCollision() {
				l.player.MoveY(1)
			} else {
				l.player.Jump()
			}
		}
	case PointerDown:
		if l.EraseUnder(e.X, e.Y) {
			l.sfxEraser.Play()
		}
	}
}

func (l *Level) decode(asset, path string) (image.Image, error) {
	img, err := l.platform.Images.DecodeImage(path)
	if err != nil {
		return nil, &ResourceLoadError{Asset: asset, Path: path, Err: err}
	}
	return img, nil
}

func (l *Level) textColor() color.Color {
	if c := l.game.Font.Color; c != nil && c.Color != nil {
		return c.Color
	}
	return color.Black
}

func (l *Level) asset(name string) string {
	return filepath.Join(l.assetDir, name)
}

func (l *Level) Loaded() bool          { return l.loaded }
func (l *Level) Finished() bool        { return l.finished }
func (l *Level) AvailableTime() int    { return l.availableTime }
func (l *Level) MapPath() string       { return l.mapPath }
func (l *Level) Player() *Player       { return l.player }
func (l *Level) Ground() []common.Rect { return l.ground }
