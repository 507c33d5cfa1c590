package obj

import (
	"slices"

	"github.com/milk9111/sheetrunner/common"
)

// EraseUnder removes at most one entity under the probe anchored at x, y.
// Classes are tried in order spikes, plants, arachnes, monsters, time
// bonuses; in the first class with a match the highest-index match is
// removed and the search stops. Ghosts and pencils cannot be erased.
func (l *Level) EraseUnder(x, y int) bool {
	probe := common.Rect{X: x, Y: y, Width: l.game.ProbeSize, Height: l.game.ProbeSize}

	if i := lastHit(probe, l.spikes); i > -1 {
		l.spikes[i].release()
		l.spikes = slices.Delete(l.spikes, i, i+1)
		return true
	}
	if i := lastHit(probe, l.plants); i > -1 {
		l.plants[i].release()
		l.plants = slices.Delete(l.plants, i, i+1)
		return true
	}
	if i := lastHit(probe, l.arachnes); i > -1 {
		l.arachnes[i].release()
		l.arachnes = slices.Delete(l.arachnes, i, i+1)
		return true
	}
	if i := lastHit(probe, l.monsters); i > -1 {
		l.monsters[i].release()
		l.monsters = slices.Delete(l.monsters, i, i+1)
		return true
	}
	if i := lastHit(probe, l.bonuses); i > -1 {
		l.bonuses[i].release()
		l.bonuses = slices.Delete(l.bonuses, i, i+1)
		return true
	}
	return false
}
