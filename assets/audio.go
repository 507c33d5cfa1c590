package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/sheetrunner/obj"
)

const sampleRate = 44100

// Mixer loads music and sound effects onto the shared audio context.
type Mixer struct {
	ctx *audio.Context
}

func NewMixer() *Mixer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Mixer{ctx: ctx}
}

// LoadMusic opens a track that loops until stopped.
func (m *Mixer) LoadMusic(path string) (obj.Music, error) {
	stream, err := m.decode(path)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := m.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music player %s: %w", path, err)
	}
	return &Music{player: p}, nil
}

// LoadSound decodes a whole effect into memory.
func (m *Mixer) LoadSound(path string) (obj.Sound, error) {
	stream, err := m.decode(path)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}
	return newSound(func() voice { return m.ctx.NewPlayerFromBytes(pcm) }), nil
}

type pcmStream interface {
	io.ReadSeeker
	Length() int64
}

func (m *Mixer) decode(path string) (pcmStream, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reader := bytes.NewReader(b)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(m.ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode ogg %q: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return stream, nil
	}
	return nil, fmt.Errorf("unsupported audio format %q", path)
}

type Music struct {
	player *audio.Player
}

func (m *Music) Play()               { m.player.Play() }
func (m *Music) SetVolume(v float64) { m.player.SetVolume(v) }

// Stop pauses the track and rewinds it.
func (m *Music) Stop() {
	m.player.Pause()
	if err := m.player.SetPosition(0); err != nil {
		log.Printf("rewind music: %v", err)
	}
}

func (m *Music) Close() error { return m.player.Close() }

// maxVoices caps the copies of one effect playing at the same time.
const maxVoices = 8

type voice interface {
	Play()
	IsPlaying() bool
	SetVolume(v float64)
	Close() error
}

// Sound plays an effect decoded into memory. Every Play starts a new voice,
// so repeated effects overlap instead of cutting each other off.
type Sound struct {
	newVoice func() voice
	volume   float64
	voices   []voice
}

func newSound(newVoice func() voice) *Sound {
	return &Sound{newVoice: newVoice, volume: 1}
}

// Play starts the effect on a new voice. It is dropped when maxVoices copies
// are still playing.
func (s *Sound) Play() {
	s.reap()
	if len(s.voices) >= maxVoices {
		return
	}
	v := s.newVoice()
	v.SetVolume(s.volume)
	v.Play()
	s.voices = append(s.voices, v)
}

// reap closes the voices that finished playing.
func (s *Sound) reap() {
	live := s.voices[:0]
	for _, v := range s.voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		if err := v.Close(); err != nil {
			log.Printf("close sound voice: %v", err)
		}
	}
	clear(s.voices[len(live):])
	s.voices = live
}

func (s *Sound) SetVolume(v float64) {
	s.volume = v
	for _, p := range s.voices {
		p.SetVolume(v)
	}
}

func (s *Sound) Close() error {
	var errs []error
	for _, v := range s.voices {
		errs = append(errs, v.Close())
	}
	s.voices = nil
	return errors.Join(errs...)
}
