package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/sheetrunner/obj"
)

// Held keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

var keyBindings = []struct {
	from ebiten.Key
	to   obj.Key
}{
	{ebiten.KeyArrowLeft, obj.KeyLeft},
	{ebiten.KeyArrowRight, obj.KeyRight},
	{ebiten.KeyArrowUp, obj.KeyUp},
}

// Input turns ebiten's polled keyboard and mouse state into level events.
type Input struct {
	events []obj.Event
}

func NewInput() *Input {
	return &Input{}
}

// Poll returns the events of the current tick.
func (in *Input) Poll() []obj.Event {
	in.events = in.events[:0]

	for _, b := range keyBindings {
		if repeats(inpututil.KeyPressDuration(b.from)) {
			in.events = append(in.events, obj.KeyDown{Key: b.to})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.events = append(in.events, obj.PointerDown{X: x, Y: y})
	}
	return in.events
}

// repeats reports whether a key held for d ticks emits a key-down this tick.
func repeats(d int) bool {
	switch {
	case d == 1:
		return true
	case d < repeatDelay:
		return false
	}
	return (d-repeatDelay)%repeatInterval == 0
}
