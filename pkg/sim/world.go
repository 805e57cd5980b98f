// Package sim is the cave simulation: a fixed-timestep world with the
// caver's platforming physics, the dragons' behavior machine, fireballs,
// distraction rocks and treasure. The simulation knows nothing about
// rendering; each Step returns the events the UI needs for cues.
package sim

import (
	"math/rand"

	"github.com/skovand/dragon-cave/pkg/geom"
	"github.com/skovand/dragon-cave/pkg/level"
)

// Outcome is the result of a level attempt so far.
type Outcome string

const (
	OutcomeRunning  Outcome = "running"
	OutcomeComplete Outcome = "complete" // reached the exit
	OutcomeDead     Outcome = "dead"     // caught by a dragon or a fireball
)

// World is one level in motion.
type World struct {
	Level     *level.Level
	Player    *Player
	Dragons   []*Dragon
	Fireballs []*Fireball
	Rocks     []*Rock
	Treasures []level.Spot
	Outcome   Outcome
	Tick      int

	// BigTreasure is non-nil once every ordinary treasure has been
	// collected; it sits at the exit and doubles the level score.
	BigTreasure *geom.Rect

	solids    []geom.Rect // platforms and obstacles
	obstacles []geom.Rect // obstacles only; they stop fireballs
	exitRect  geom.Rect
	bounds    geom.Rect
	rng       *rand.Rand
	bigDone   bool
}

// NewWorld builds a level instance with the requested number of
// dragons. rng drives fallback dragon placement and noise checks; a nil
// rng gets a fixed seed, which keeps the simulation deterministic.
func NewWorld(lvl *level.Level, dragonCount int, rng *rand.Rand) (*World, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	caver, err := newCaverActor()
	if err != nil {
		return nil, err
	}

	w := &World{
		Level:     lvl,
		Player:    newPlayer(caver),
		Treasures: append([]level.Spot(nil), lvl.Treasures...),
		Outcome:   OutcomeRunning,
		exitRect:  geom.RectAt(lvl.Exit.X, lvl.Exit.Y, ExitW, ExitH),
		bounds:    lvl.Bounds(),
		rng:       rng,
	}

	for _, p := range lvl.Platforms {
		w.solids = append(w.solids, p.Rect())
	}
	for _, o := range lvl.Obstacles {
		r := geom.RectAt(o.X, o.Y, ObstacleSize, ObstacleSize)
		w.solids = append(w.solids, r)
		w.obstacles = append(w.obstacles, r)
	}

	for i, spot := range lvl.DragonSpawns(dragonCount, rng) {
		actor, err := newDragonActor(i)
		if err != nil {
			return nil, err
		}
		w.Dragons = append(w.Dragons, newDragon(actor, spot.X, spot.Y))
	}

	return w, nil
}

// Step advances the world one tick under the given input and returns
// the events of the tick. Once the outcome is decided the world stops
// moving.
func (w *World) Step(in Input) []Event {
	if w.Outcome != OutcomeRunning {
		return nil
	}
	w.Tick++

	var events []Event

	events = append(events, w.Player.step(in, w.solids, w.Level.Width)...)

	if in.DropRock {
		if rock := w.Player.tryDropRock(); rock != nil {
			w.Rocks = append(w.Rocks, rock)
			events = append(events, Event{Kind: EventRockDropped, Pos: rock.Pos})
		}
	}

	for _, d := range w.Dragons {
		events = append(events, d.step(w)...)
	}

	for _, f := range w.Fireballs {
		f.step(w.bounds, w.obstacles)
	}

	// Rocks land and make noise; a landing heard by any awake dragon
	// spends the rock.
	for _, r := range w.Rocks {
		landing := r.step(w.solids)
		if landing == nil {
			continue
		}
		for _, d := range w.Dragons {
			if !d.Awake() {
				continue
			}
			if landing.Dist(d.Pos) < RockSoundRadius && d.Distract(*landing) {
				r.Dead = true
				events = append(events, Event{Kind: EventDragonDistracted, Pos: *landing})
				break
			}
		}
	}

	events = append(events, w.collectTreasures()...)
	events = append(events, w.checkBigTreasure()...)
	events = append(events, w.checkExit()...)
	events = append(events, w.checkHits()...)

	w.Fireballs = filterFireballs(w.Fireballs)
	w.Rocks = filterRocks(w.Rocks)

	return events
}

// RemainingTreasures is the count of ordinary treasures still uncollected.
func (w *World) RemainingTreasures() int {
	return len(w.Treasures)
}

func (w *World) collectTreasures() []Event {
	var events []Event
	pr := w.Player.Rect()

	kept := w.Treasures[:0]
	for _, spot := range w.Treasures {
		tr := geom.RectAt(spot.X, spot.Y, TreasureSize, TreasureSize)
		if !pr.Intersects(tr) {
			kept = append(kept, spot)
			continue
		}
		events = append(events, Event{Kind: EventTreasure, Pos: tr.Center()})

		// Picking up treasure makes noise. The closer a sleeping dragon
		// is, the likelier it wakes.
		pc := pr.Center()
		for _, d := range w.Dragons {
			if d.Awake() {
				continue
			}
			reach := d.WakeRange * 1.5
			chance := (reach - pc.Dist(d.Pos)) / reach
			if chance < 0 {
				chance = 0
			}
			if w.rng.Float64() < chance*treasureNoiseFactor && d.Wake() {
				events = append(events, Event{Kind: EventDragonWake, Pos: d.Pos})
			}
		}
	}
	w.Treasures = kept
	return events
}

func (w *World) checkBigTreasure() []Event {
	if len(w.Treasures) == 0 && w.BigTreasure == nil && !w.bigDone {
		r := geom.RectAt(w.Level.Exit.X, w.Level.Exit.Y, BigTreasureSize, BigTreasureSize)
		w.BigTreasure = &r
		return []Event{{Kind: EventBigTreasureSpawn, Pos: r.Center()}}
	}

	if w.BigTreasure != nil && w.Player.Rect().Intersects(*w.BigTreasure) {
		pos := w.BigTreasure.Center()
		w.BigTreasure = nil
		w.bigDone = true
		return []Event{{Kind: EventBigTreasure, Pos: pos}}
	}
	return nil
}

func (w *World) checkExit() []Event {
	if !w.Player.Rect().Intersects(w.exitRect) {
		return nil
	}
	w.Outcome = OutcomeComplete
	return []Event{{Kind: EventLevelComplete, Pos: w.exitRect.Center()}}
}

func (w *World) checkHits() []Event {
	if w.Outcome != OutcomeRunning {
		return nil
	}

	pr := w.Player.Rect().Shrink(EnemyHitboxRatio)
	hit := false

	for _, d := range w.Dragons {
		if d.Awake() && pr.Intersects(d.Rect().Shrink(EnemyHitboxRatio)) {
			hit = true
			break
		}
	}
	if !hit {
		for _, f := range w.Fireballs {
			if !f.Dead && pr.Intersects(f.Rect().Shrink(EnemyHitboxRatio)) {
				f.Dead = true
				hit = true
				break
			}
		}
	}
	if !hit {
		return nil
	}

	_ = w.Player.Actor.SetHP(0)
	w.Outcome = OutcomeDead
	return []Event{{Kind: EventPlayerHit, Pos: w.Player.Rect().Center()}}
}

func filterFireballs(fs []*Fireball) []*Fireball {
	kept := fs[:0]
	for _, f := range fs {
		if !f.Dead {
			kept = append(kept, f)
		}
	}
	return kept
}

func filterRocks(rs []*Rock) []*Rock {
	kept := rs[:0]
	for _, r := range rs {
		if !r.Dead {
			kept = append(kept, r)
		}
	}
	return kept
}
