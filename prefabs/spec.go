package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds the level engine tuning values read from game.yaml.
type GameSpec struct {
	AvailableTime  int         `yaml:"available_time"`
	TimeBonusValue int         `yaml:"time_bonus_value"`
	ProbeSize      int         `yaml:"probe_size"`
	Cadence        CadenceSpec `yaml:"cadence"`
	Font           FontSpec    `yaml:"font"`
	Audio          []AudioSpec `yaml:"audio"`
	Screens        ScreenSpec  `yaml:"screens"`
	Layout         LayoutSpec  `yaml:"layout"`
}

// CadenceSpec lists the update periods in milliseconds.
type CadenceSpec struct {
	Timer    int64 `yaml:"timer"`
	Physics  int64 `yaml:"physics"`
	Monster  int64 `yaml:"monster"`
	Spike    int64 `yaml:"spike"`
	Creature int64 `yaml:"creature"`
}

type FontSpec struct {
	File  string     `yaml:"file"`
	Size  float64    `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// ScreenSpec names the full-screen transition pictures and how long each
// one freezes the game.
type ScreenSpec struct {
	NoTime      string `yaml:"no_time"`
	Fail        string `yaml:"fail"`
	End         string `yaml:"end"`
	DeathMS     int64  `yaml:"death_ms"`
	FailMS      int64  `yaml:"fail_ms"`
	EndMS       int64  `yaml:"end_ms"`
	StatsWrap   int    `yaml:"stats_wrap"`
	StatsX      int    `yaml:"stats_x"`
	StatsY      int    `yaml:"stats_y"`
	TimerMargin int    `yaml:"timer_margin"`
}

// LayoutSpec names the files of the on-disk data layout.
type LayoutSpec struct {
	DataDir    string `yaml:"data_dir"`
	AssetDir   string `yaml:"asset_dir"`
	Index      string `yaml:"index"`
	Map        string `yaml:"map"`
	Background string `yaml:"background"`
}

// Sound returns the audio entry with the given name.
func (g GameSpec) Sound(name string) (AudioSpec, bool) {
	for _, a := range g.Audio {
		if a.Name == name {
			return a, true
		}
	}
	return AudioSpec{}, false
}

// EntitySpec describes one entity kind: sprite sheet, frame size and the
// bounding rect placed in its grid cell.
type EntitySpec struct {
	Image   string `yaml:"image"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	OffsetX int    `yaml:"offset_x"`
	OffsetY int    `yaml:"offset_y"`
	Frames  int    `yaml:"frames"`
	Step    int    `yaml:"step"`
	Reach   int    `yaml:"reach"`
}

type EntitySpecs struct {
	Ground    EntitySpec `yaml:"ground"`
	Player    PlayerSpec `yaml:"player"`
	Door      EntitySpec `yaml:"door"`
	Spike     EntitySpec `yaml:"spike"`
	Plant     EntitySpec `yaml:"plant"`
	Arachne   EntitySpec `yaml:"arachne"`
	Ghost     EntitySpec `yaml:"ghost"`
	Monster   EntitySpec `yaml:"monster"`
	Pencil    EntitySpec `yaml:"pencil"`
	TimeBonus EntitySpec `yaml:"time_bonus"`
}

type PlayerSpec struct {
	EntitySpec `yaml:",inline"`
	FallStep   int `yaml:"fall_step"`
	JumpStep   int `yaml:"jump_step"`
	JumpTicks  int `yaml:"jump_ticks"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
