package sim

import (
	"math/rand"
	"testing"

	"github.com/skovand/dragon-cave/pkg/geom"
	"github.com/skovand/dragon-cave/pkg/level"
)

func geomVec(x, y float64) geom.Vec2 {
	return geom.Vec2{X: x, Y: y}
}

// testLevel is a small flat cave: full-width floor, one treasure far
// from the dragon, a dragon nest on the right, exit at the far edge.
func testLevel() *level.Level {
	return &level.Level{
		Name:      "Test Cave",
		Width:     2000,
		Platforms: []level.Platform{{X: 0, Y: level.GroundY, W: 2000, H: 40}},
		Treasures: []level.Spot{{X: 300, Y: level.GroundY}},
		Obstacles: []level.Spot{{X: 700, Y: level.GroundY}},
		DragonStarts: []level.Spot{
			{X: 1600, Y: level.GroundY},
		},
		Exit: level.Spot{X: 1900, Y: level.GroundY},
	}
}

func newTestWorld(t *testing.T, dragons int) *World {
	t.Helper()
	w, err := NewWorld(testLevel(), dragons, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewWorld_SpawnsRequestedDragons(t *testing.T) {
	w := newTestWorld(t, 3)
	if len(w.Dragons) != 3 {
		t.Fatalf("expected 3 dragons, got %d", len(w.Dragons))
	}
	for i, d := range w.Dragons {
		if d.State != DragonSleeping {
			t.Errorf("dragon %d should start sleeping, got %q", i, d.State)
		}
		if d.WakeRange != DragonWakeRange {
			t.Errorf("dragon %d wake range = %v, want %v", i, d.WakeRange, float64(DragonWakeRange))
		}
	}
}

func TestWorld_PlayerSettlesOnFloor(t *testing.T) {
	w := newTestWorld(t, 1)

	for i := 0; i < 120; i++ {
		w.Step(Input{})
	}
	if !w.Player.OnGround {
		t.Error("caver should be standing after settling")
	}
	if w.Player.Pos.Y != level.GroundY {
		t.Errorf("caver feet at %v, want %v", w.Player.Pos.Y, float64(level.GroundY))
	}
}

func TestWorld_TreasureCollection(t *testing.T) {
	w := newTestWorld(t, 1)

	// Walk right until the treasure at x=300 is picked up.
	collected := false
	for i := 0; i < TicksPerSecond*10 && !collected; i++ {
		events := w.Step(Input{Right: true})
		collected = hasEvent(events, EventTreasure)
	}
	if !collected {
		t.Fatal("caver never collected the treasure")
	}
	if w.RemainingTreasures() != 0 {
		t.Errorf("remaining treasures = %d, want 0", w.RemainingTreasures())
	}
}

func TestWorld_BigTreasureAppearsAtExit(t *testing.T) {
	w := newTestWorld(t, 1)

	// Collect the only treasure; the big treasure must spawn at the exit
	// on a following tick.
	spawned := false
	for i := 0; i < TicksPerSecond*10 && !spawned; i++ {
		events := w.Step(Input{Right: true})
		spawned = hasEvent(events, EventBigTreasureSpawn)
	}
	if !spawned {
		t.Fatal("big treasure never spawned")
	}
	if w.BigTreasure == nil {
		t.Fatal("BigTreasure should be set after spawning")
	}
	c := w.BigTreasure.Center()
	if c.X != w.Level.Exit.X {
		t.Errorf("big treasure at x=%v, want exit x=%v", c.X, w.Level.Exit.X)
	}
}

func TestWorld_ExitCompletesLevel(t *testing.T) {
	w := newTestWorld(t, 1)
	// Teleport next to the exit; the sim only checks overlap.
	w.Player.Pos.X = w.Level.Exit.X
	w.Player.Pos.Y = level.GroundY

	events := w.Step(Input{})
	if !hasEvent(events, EventLevelComplete) {
		t.Fatal("expected level completion at the exit")
	}
	if w.Outcome != OutcomeComplete {
		t.Errorf("outcome = %q, want %q", w.Outcome, OutcomeComplete)
	}

	// A finished world stops stepping.
	if got := w.Step(Input{Right: true}); got != nil {
		t.Errorf("finished world still produced events: %v", got)
	}
}

func TestWorld_SleepingDragonIsHarmless(t *testing.T) {
	w := newTestWorld(t, 1)
	d := w.Dragons[0]

	// Park the caver inside the sleeping dragon's hitbox. In a full
	// step the proximity wake would fire first, so probe the contact
	// check directly.
	w.Player.Pos.X = d.Pos.X
	w.Player.Pos.Y = level.GroundY

	if events := w.checkHits(); len(events) != 0 {
		t.Errorf("sleeping dragon contact produced events: %v", events)
	}
	if w.Outcome != OutcomeRunning {
		t.Errorf("outcome = %q, want %q", w.Outcome, OutcomeRunning)
	}
}

func TestWorld_AwakeDragonContactKills(t *testing.T) {
	w := newTestWorld(t, 1)
	d := w.Dragons[0]
	d.State = DragonChasing

	w.Player.Pos.X = d.Pos.X
	w.Player.Pos.Y = level.GroundY

	events := w.Step(Input{})
	if !hasEvent(events, EventPlayerHit) {
		t.Fatal("expected the chasing dragon to catch the caver")
	}
	if w.Outcome != OutcomeDead {
		t.Errorf("outcome = %q, want %q", w.Outcome, OutcomeDead)
	}
	if w.Player.Alive() {
		t.Error("caver actor should be at zero HP after the hit")
	}
}

func TestWorld_RockCooldown(t *testing.T) {
	w := newTestWorld(t, 1)

	w.Step(Input{DropRock: true})
	w.Step(Input{DropRock: true})

	if len(w.Rocks) != 1 {
		t.Fatalf("expected 1 rock during cooldown, got %d", len(w.Rocks))
	}

	for i := 0; i < RockCooldownTicks; i++ {
		w.Step(Input{})
	}
	w.Step(Input{DropRock: true})
	if len(w.Rocks) != 2 {
		t.Fatalf("expected a second rock after cooldown, got %d", len(w.Rocks))
	}
}

func TestWorld_RockDistractsAwakeDragon(t *testing.T) {
	w := newTestWorld(t, 1)
	d := w.Dragons[0]
	d.State = DragonChasing

	// Drop a rock right next to the dragon; it lands within the sound
	// radius and pulls the dragon off the chase.
	w.Rocks = append(w.Rocks, &Rock{Pos: geomVec(d.Pos.X+50, level.GroundY-200)})

	distracted := false
	for i := 0; i < TicksPerSecond && !distracted; i++ {
		events := w.Step(Input{})
		distracted = hasEvent(events, EventDragonDistracted)
	}
	if !distracted {
		t.Fatal("rock landing never distracted the dragon")
	}
	if d.State != DragonDistracted {
		t.Errorf("dragon state = %q, want %q", d.State, DragonDistracted)
	}
	if len(w.Rocks) != 0 {
		t.Errorf("a distracting rock should be spent, got %d rocks", len(w.Rocks))
	}

	// The distraction wears off.
	for i := 0; i <= DragonDistractionTicks; i++ {
		w.Step(Input{})
		if w.Outcome != OutcomeRunning {
			t.Skip("dragon reached the caver before the distraction expired")
		}
	}
	if d.State != DragonChasing {
		t.Errorf("dragon state after distraction = %q, want %q", d.State, DragonChasing)
	}
}

func TestWorld_SleepingDragonIgnoresRocks(t *testing.T) {
	w := newTestWorld(t, 1)
	d := w.Dragons[0]

	w.Rocks = append(w.Rocks, &Rock{Pos: geomVec(d.Pos.X+50, level.GroundY-200)})
	for i := 0; i < TicksPerSecond; i++ {
		w.Step(Input{})
	}
	if d.State != DragonSleeping {
		t.Errorf("sleeping dragon should ignore rock noise, state = %q", d.State)
	}
	if len(w.Rocks) != 1 {
		t.Errorf("unheard rock should stay on the ground, got %d rocks", len(w.Rocks))
	}
}
