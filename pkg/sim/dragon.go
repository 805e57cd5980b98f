package sim

import (
	"github.com/jwebster45206/d20"
	"github.com/skovand/dragon-cave/pkg/geom"
)

// DragonState is a phase of the dragon's behavior machine.
type DragonState string

const (
	DragonSleeping   DragonState = "sleeping"
	DragonWaking     DragonState = "waking"
	DragonChasing    DragonState = "chasing"
	DragonDistracted DragonState = "distracted"
)

// Dragon guards the cave. It sleeps until the caver gets too close or
// makes too much noise, then chases and breathes fire. A rock landing
// nearby pulls it away for a while. Pos is the dragon's center.
type Dragon struct {
	Pos       geom.Vec2
	State     DragonState
	Actor     *d20.Actor
	WakeRange float64

	fireCooldown   int
	distractTicks  int
	distractTarget geom.Vec2
}

func newDragon(actor *d20.Actor, cx, bottom float64) *Dragon {
	return &Dragon{
		Pos:       geom.Vec2{X: cx, Y: bottom - DragonH/2},
		State:     DragonSleeping,
		Actor:     actor,
		WakeRange: wakeRangeFor(actor),
	}
}

// Rect returns the dragon's full bounding box.
func (d *Dragon) Rect() geom.Rect {
	return geom.Rect{X: d.Pos.X - DragonW/2, Y: d.Pos.Y - DragonH/2, W: DragonW, H: DragonH}
}

// Awake reports whether touching the dragon is dangerous.
func (d *Dragon) Awake() bool {
	return d.State != DragonSleeping
}

// Wake rouses a sleeping dragon. It roars and starts chasing on the
// next tick.
func (d *Dragon) Wake() bool {
	if d.State != DragonSleeping {
		return false
	}
	d.State = DragonWaking
	d.fireCooldown = DragonFireInterval
	return true
}

// Distract sends an awake dragon to investigate a point. Sleeping
// dragons are not fooled by noises they sleep through.
func (d *Dragon) Distract(target geom.Vec2) bool {
	if d.State != DragonChasing && d.State != DragonDistracted {
		return false
	}
	d.State = DragonDistracted
	d.distractTarget = target
	d.distractTicks = DragonDistractionTicks
	return true
}

// step advances the dragon one tick. It may append a fireball to the
// world and returns any events produced.
func (d *Dragon) step(w *World) []Event {
	var events []Event

	switch d.State {
	case DragonSleeping:
		if d.Pos.Dist(w.Player.Rect().Center()) < d.WakeRange {
			if d.Wake() {
				events = append(events, Event{Kind: EventDragonWake, Pos: d.Pos})
			}
		}

	case DragonWaking:
		d.State = DragonChasing

	case DragonDistracted:
		d.distractTicks--
		if d.distractTicks <= 0 {
			d.State = DragonChasing
			events = append(events, Event{Kind: EventDragonResumed, Pos: d.Pos})
			break
		}
		if d.Pos.Dist(d.distractTarget) >= DragonArriveDist {
			d.moveToward(d.distractTarget)
		}

	case DragonChasing:
		target := w.Player.Rect().Center()
		if d.Pos.Dist(target) > DragonChaseMinDist {
			d.moveToward(target)
		}

		if d.fireCooldown > 0 {
			d.fireCooldown--
		}
		if d.fireCooldown == 0 {
			d.fireCooldown = DragonFireInterval
			dir := target.Sub(d.Pos)
			if dir.Len() > 0 {
				w.Fireballs = append(w.Fireballs, &Fireball{
					Pos: d.Pos,
					Vel: dir.Unit().Scale(FireballSpeed),
				})
			}
		}
	}

	// Dragons fly but never leave the cave.
	half := float64(DragonW) / 2
	if d.Pos.X < half {
		d.Pos.X = half
	}
	if d.Pos.X > w.Level.Width-half {
		d.Pos.X = w.Level.Width - half
	}

	return events
}

func (d *Dragon) moveToward(target geom.Vec2) {
	d.Pos = d.Pos.Add(target.Sub(d.Pos).Unit().Scale(DragonSpeed))
}
