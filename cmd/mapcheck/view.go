package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/sheetrunner/obj"
)

var charStyles = map[rune]tcell.Style{
	obj.CharGround:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	obj.CharPlayer:       tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	obj.CharDoor:         tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	obj.CharSpike:        tcell.StyleDefault.Foreground(tcell.ColorRed),
	obj.CharPlantivorus:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	obj.CharArachne:      tcell.StyleDefault.Foreground(tcell.ColorPurple),
	obj.CharGhost:        tcell.StyleDefault.Foreground(tcell.ColorPurple),
	obj.CharMonsterStart: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	obj.CharMonsterEnd:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	obj.CharTimeBonus:    tcell.StyleDefault.Foreground(tcell.ColorAqua),
	obj.CharPencil:       tcell.StyleDefault.Foreground(tcell.ColorWhite),
}

// viewer pages through the maps in a terminal, one level per screen.
type viewer struct {
	screen  tcell.Screen
	results []result
	current int
}

func runViewer(results []result) error {
	if len(results) == 0 {
		return nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{screen: screen, results: results}
	v.draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.handleKey(ev.Key(), ev.Rune()) {
				return nil
			}
			v.draw()
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case nil:
			return nil
		}
	}
}

func (v *viewer) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight, tcell.KeyDown:
		v.current = (v.current + 1) % len(v.results)
	case tcell.KeyLeft, tcell.KeyUp:
		v.current = (v.current + len(v.results) - 1) % len(v.results)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'n':
			v.current = (v.current + 1) % len(v.results)
		case 'p':
			v.current = (v.current + len(v.results) - 1) % len(v.results)
		}
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()
	r := v.results[v.current]

	status := fmt.Sprintf("[%d/%d] %s", v.current+1, len(v.results), r.id)
	if r.err != nil {
		status += "  " + r.err.Error()
	}
	putString(v.screen, 0, 0, status, tcell.StyleDefault.Reverse(true))
	putString(v.screen, 0, 1, "left/right: level  q: quit", tcell.StyleDefault.Dim(true))

	b, err := os.ReadFile(r.path)
	if err != nil {
		putString(v.screen, 0, 3, err.Error(), tcell.StyleDefault.Foreground(tcell.ColorRed))
		v.screen.Show()
		return
	}
	for y, line := range strings.Split(string(b), "\n") {
		for x, ch := range line {
			style, ok := charStyles[ch]
			if !ok {
				style = tcell.StyleDefault.Dim(true)
			}
			v.screen.SetContent(x, y+3, ch, nil, style)
		}
	}
	v.screen.Show()
}

func putString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
