package obj

import "github.com/milk9111/sheetrunner/common"

// Collision checks run against the player's current rect every frame.

// groundCollision reports whether the player overlaps any ground tile.
func (l *Level) groundCollision() bool {
	return hitsAny(l.player.Rect(), l.ground)
}

// dangerCollision reports whether the player touches a spike, plant, ghost,
// arachne or monster.
func (l *Level) dangerCollision() bool {
	pr := l.player.Rect()
	return anyHit(pr, l.spikes) ||
		anyHit(pr, l.plants) ||
		anyHit(pr, l.ghosts) ||
		anyHit(pr, l.arachnes) ||
		anyHit(pr, l.monsters)
}

func (l *Level) doorCollision() bool {
	return l.player.Rect().Intersects(l.door.Rect())
}

// timeBonusCollision returns the index of the first bonus the player
// touches, or -1.
func (l *Level) timeBonusCollision() int {
	pr := l.player.Rect()
	for i, b := range l.bonuses {
		if pr.Intersects(b.Rect()) {
			return i
		}
	}
	return -1
}

func anyHit[E Entity](r common.Rect, ents []E) bool {
	for _, e := range ents {
		if r.Intersects(e.Rect()) {
			return true
		}
	}
	return false
}

// lastHit returns the highest index of ents intersecting r, or -1.
func lastHit[E Entity](r common.Rect, ents []E) int {
	idx := -1
	for i, e := range ents {
		if r.Intersects(e.Rect()) {
			idx = i
		}
	}
	return idx
}
