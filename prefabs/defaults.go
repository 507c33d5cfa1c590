package prefabs

import "image/color"

// Audio entry names used by the level engine.
const (
	AudioMusic  = "music"
	AudioEraser = "eraser"
	AudioDie    = "die"
	AudioTimer  = "timer"
)

// DefaultGameSpec returns the compiled-in tuning values.
func DefaultGameSpec() GameSpec {
	return GameSpec{
		AvailableTime:  90,
		TimeBonusValue: 10,
		ProbeSize:      32,
		Cadence: CadenceSpec{
			Timer:    1000,
			Physics:  80,
			Monster:  180,
			Spike:    210,
			Creature: 600,
		},
		Font: FontSpec{
			File:  "ThinPencilHandwriting.ttf",
			Size:  40,
			Color: &YAMLColor{Color: color.NRGBA{A: 0xff}},
		},
		Audio: []AudioSpec{
			{Name: AudioMusic, File: "sfx/music.ogg", Volume: 0.12},
			{Name: AudioEraser, File: "sfx/eraser.wav", Volume: 0.47},
			{Name: AudioDie, File: "sfx/dead_splash.wav", Volume: 0.16},
			{Name: AudioTimer, File: "sfx/timer.wav", Volume: 0.16},
		},
		Screens: ScreenSpec{
			NoTime:      "pic_notime.png",
			Fail:        "pic_fail.png",
			End:         "pic_end.png",
			DeathMS:     200,
			FailMS:      2000,
			EndMS:       3500,
			StatsWrap:   400,
			StatsX:      30,
			StatsY:      250,
			TimerMargin: 5,
		},
		Layout: LayoutSpec{
			DataDir:    "data",
			AssetDir:   "assets",
			Index:      "lvl_index",
			Map:        "map",
			Background: "background.png",
		},
	}
}

// DefaultEntitySpecs returns the compiled-in sprite and rect sizes.
func DefaultEntitySpecs() EntitySpecs {
	return EntitySpecs{
		Ground: EntitySpec{Image: "ground.png", Width: 64, Height: 16, Frames: 1},
		Player: PlayerSpec{
			EntitySpec: EntitySpec{Image: "playersheet.png", Width: 48, Height: 64, Frames: 4, Step: 16},
			FallStep:   16,
			JumpStep:   16,
			JumpTicks:  4,
		},
		Door:      EntitySpec{Image: "hole.png", Width: 64, Height: 64, Frames: 1},
		Spike:     EntitySpec{Image: "spike.png", Width: 64, Height: 32, OffsetY: 32, Frames: 2},
		Plant:     EntitySpec{Image: "plant.png", Width: 96, Height: 64, Frames: 3},
		Arachne:   EntitySpec{Image: "arachne.png", Width: 64, Height: 64, Frames: 2, Reach: 32},
		Ghost:     EntitySpec{Image: "ghost.png", Width: 64, Height: 64, Frames: 2, Reach: 32},
		Monster:   EntitySpec{Image: "monster.png", Width: 64, Height: 64, Frames: 2, Step: 16},
		Pencil:    EntitySpec{Image: "pencil.png", Width: 64, Height: 64, Frames: 1},
		TimeBonus: EntitySpec{Image: "timer.png", Width: 48, Height: 48, OffsetX: 8, OffsetY: 8, Frames: 1},
	}
}

// LoadGameSpec reads game.yaml. Fields left empty keep their default value.
func LoadGameSpec() (GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return DefaultGameSpec(), err
	}
	return spec.WithDefaults(), nil
}

// LoadEntitySpecs reads entities.yaml. Fields left empty keep their default value.
func LoadEntitySpecs() (EntitySpecs, error) {
	spec, err := LoadSpec[EntitySpecs]("entities.yaml")
	if err != nil {
		return DefaultEntitySpecs(), err
	}
	return spec.WithDefaults(), nil
}

func (g GameSpec) WithDefaults() GameSpec {
	d := DefaultGameSpec()
	setInt(&g.AvailableTime, d.AvailableTime)
	setInt(&g.TimeBonusValue, d.TimeBonusValue)
	setInt(&g.ProbeSize, d.ProbeSize)

	setInt64(&g.Cadence.Timer, d.Cadence.Timer)
	setInt64(&g.Cadence.Physics, d.Cadence.Physics)
	setInt64(&g.Cadence.Monster, d.Cadence.Monster)
	setInt64(&g.Cadence.Spike, d.Cadence.Spike)
	setInt64(&g.Cadence.Creature, d.Cadence.Creature)

	setString(&g.Font.File, d.Font.File)
	if g.Font.Size <= 0 {
		g.Font.Size = d.Font.Size
	}
	if g.Font.Color == nil || g.Font.Color.Color == nil {
		g.Font.Color = d.Font.Color
	}

	for _, a := range d.Audio {
		if _, ok := g.Sound(a.Name); !ok {
			g.Audio = append(g.Audio, a)
		}
	}

	setString(&g.Screens.NoTime, d.Screens.NoTime)
	setString(&g.Screens.Fail, d.Screens.Fail)
	setString(&g.Screens.End, d.Screens.End)
	setInt64(&g.Screens.DeathMS, d.Screens.DeathMS)
	setInt64(&g.Screens.FailMS, d.Screens.FailMS)
	setInt64(&g.Screens.EndMS, d.Screens.EndMS)
	setInt(&g.Screens.StatsWrap, d.Screens.StatsWrap)
	setInt(&g.Screens.StatsX, d.Screens.StatsX)
	setInt(&g.Screens.StatsY, d.Screens.StatsY)
	setInt(&g.Screens.TimerMargin, d.Screens.TimerMargin)

	setString(&g.Layout.DataDir, d.Layout.DataDir)
	setString(&g.Layout.AssetDir, d.Layout.AssetDir)
	setString(&g.Layout.Index, d.Layout.Index)
	setString(&g.Layout.Map, d.Layout.Map)
	setString(&g.Layout.Background, d.Layout.Background)
	return g
}

func (e EntitySpecs) WithDefaults() EntitySpecs {
	d := DefaultEntitySpecs()
	e.Ground = e.Ground.withDefaults(d.Ground)
	e.Player.EntitySpec = e.Player.EntitySpec.withDefaults(d.Player.EntitySpec)
	setInt(&e.Player.FallStep, d.Player.FallStep)
	setInt(&e.Player.JumpStep, d.Player.JumpStep)
	setInt(&e.Player.JumpTicks, d.Player.JumpTicks)
	e.Door = e.Door.withDefaults(d.Door)
	e.Spike = e.Spike.withDefaults(d.Spike)
	e.Plant = e.Plant.withDefaults(d.Plant)
	e.Arachne = e.Arachne.withDefaults(d.Arachne)
	e.Ghost = e.Ghost.withDefaults(d.Ghost)
	e.Monster = e.Monster.withDefaults(d.Monster)
	e.Pencil = e.Pencil.withDefaults(d.Pencil)
	e.TimeBonus = e.TimeBonus.withDefaults(d.TimeBonus)
	return e
}

// Offsets are kept as given since zero is a meaningful value for them.
func (s EntitySpec) withDefaults(d EntitySpec) EntitySpec {
	setString(&s.Image, d.Image)
	setInt(&s.Width, d.Width)
	setInt(&s.Height, d.Height)
	setInt(&s.Frames, d.Frames)
	setInt(&s.Step, d.Step)
	setInt(&s.Reach, d.Reach)
	return s
}

func setInt(v *int, d int) {
	if *v <= 0 {
		*v = d
	}
}

func setInt64(v *int64, d int64) {
	if *v <= 0 {
		*v = d
	}
}

func setString(v *string, d string) {
	if *v == "" {
		*v = d
	}
}
