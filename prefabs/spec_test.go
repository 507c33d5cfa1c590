package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsMatchDefaults(t *testing.T) {
	game, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	d := DefaultGameSpec()
	if game.Cadence != d.Cadence {
		t.Fatalf("cadence mismatch: got %+v want %+v", game.Cadence, d.Cadence)
	}
	if game.ProbeSize != 32 || game.AvailableTime <= 0 || game.TimeBonusValue <= 0 {
		t.Fatalf("unexpected game spec %+v", game)
	}
	for _, name := range []string{AudioMusic, AudioEraser, AudioDie, AudioTimer} {
		if _, ok := game.Sound(name); !ok {
			t.Fatalf("missing audio entry %q", name)
		}
	}

	ents, err := LoadEntitySpecs()
	if err != nil {
		t.Fatalf("load entity specs: %v", err)
	}
	if ents != DefaultEntitySpecs() {
		t.Fatalf("entities.yaml drifted from defaults:\n got %+v\nwant %+v", ents, DefaultEntitySpecs())
	}
}

func TestGameSpecWithDefaults(t *testing.T) {
	var spec GameSpec
	if err := yaml.Unmarshal([]byte("available_time: 5\ncadence:\n  timer: 500\n"), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	spec = spec.WithDefaults()

	cases := []struct {
		name string
		got  int64
		want int64
	}{
		{"available_time_kept", int64(spec.AvailableTime), 5},
		{"timer_kept", spec.Cadence.Timer, 500},
		{"physics_default", spec.Cadence.Physics, 80},
		{"monster_default", spec.Cadence.Monster, 180},
		{"spike_default", spec.Cadence.Spike, 210},
		{"creature_default", spec.Cadence.Creature, 600},
		{"probe_default", int64(spec.ProbeSize), 32},
		{"audio_filled", int64(len(spec.Audio)), 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("got %d want %d", c.got, c.want)
			}
		})
	}
	if spec.Layout.Map != "map" || spec.Layout.Index != "lvl_index" {
		t.Fatalf("layout defaults not applied: %+v", spec.Layout)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, false},
		{`"00000080"`, color.NRGBA{A: 0x80}, false},
		{`"#abc"`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var yc YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &yc)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", c.in, err)
			}
			if yc.Color != c.want {
				t.Fatalf("got %#v want %#v", yc.Color, c.want)
			}
		})
	}
}

func TestWatchFilters(t *testing.T) {
	cases := []struct {
		path string
		spec bool
		mp   bool
	}{
		{"prefabs/game.yaml", true, false},
		{"prefabs/x.YML", true, false},
		{"data/level1/map", false, true},
		{"data/level1/map.bak", false, false},
		{"data/level1/background.png", false, false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := IsSpecFile(c.path); got != c.spec {
				t.Fatalf("IsSpecFile = %v", got)
			}
			if got := IsMapFile(c.path, "map"); got != c.mp {
				t.Fatalf("IsMapFile = %v", got)
			}
		})
	}
	if IsMapFile("data/level1/map", "") {
		t.Fatalf("empty map name must never match")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	if got := cleanPrefabPath("prefabs/game.yaml"); got != "game.yaml" {
		t.Fatalf("got %q", got)
	}
	if got := cleanPrefabPath("entities.yaml"); got != "entities.yaml" {
		t.Fatalf("got %q", got)
	}
}
