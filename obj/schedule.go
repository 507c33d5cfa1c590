package obj

import "github.com/milk9111/sheetrunner/prefabs"

// cadence fires at most once per call, then schedules its next fire one
// period after the current tick. Late frames are not caught up.
type cadence struct {
	period int64
	next   int64
}

func (c *cadence) due(now int64) bool {
	if now < c.next {
		return false
	}
	c.next = now + c.period
	return true
}

func (c *cadence) reset() {
	c.next = 0
}

// schedule holds the independent cadences of a level.
type schedule struct {
	timer    cadence
	physics  cadence
	monster  cadence
	spike    cadence
	creature cadence
}

func newSchedule(spec prefabs.CadenceSpec) schedule {
	return schedule{
		timer:    cadence{period: spec.Timer},
		physics:  cadence{period: spec.Physics},
		monster:  cadence{period: spec.Monster},
		spike:    cadence{period: spec.Spike},
		creature: cadence{period: spec.Creature},
	}
}

func (s *schedule) reset() {
	s.timer.reset()
	s.physics.reset()
	s.monster.reset()
	s.spike.reset()
	s.creature.reset()
}
