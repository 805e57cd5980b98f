package level

import (
	"math/rand"
	"testing"
)

func TestDragonSpawns_AuthoredFirst(t *testing.T) {
	l := Level{
		Name:  "Spawn Test",
		Width: 2000,
		Platforms: []Platform{
			{0, GroundY, 2000, 40},
			{600, WorldHeight - 200, 100, 20},
			{1200, WorldHeight - 300, 100, 20},
		},
		Treasures:    []Spot{{100, GroundY}},
		DragonStarts: []Spot{{1600, GroundY}, {1800, WorldHeight - 300}},
		Exit:         Spot{1900, GroundY},
	}

	spawns := l.DragonSpawns(2, nil)
	if len(spawns) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(spawns))
	}
	if spawns[0] != (Spot{1600, GroundY}) || spawns[1] != (Spot{1800, WorldHeight - 300}) {
		t.Errorf("authored starts not used in order: %+v", spawns)
	}
}

func TestDragonSpawns_FiltersEarlyStarts(t *testing.T) {
	l := Level{
		Name:      "Early Start",
		Width:     2000,
		Platforms: []Platform{{0, GroundY, 2000, 40}},
		Treasures: []Spot{{100, GroundY}},
		// 400 is inside the first quarter (< 500) and must be skipped.
		DragonStarts: []Spot{{400, GroundY}, {1600, GroundY}},
		Exit:         Spot{1900, GroundY},
	}

	spawns := l.DragonSpawns(1, nil)
	if len(spawns) != 1 || spawns[0].X != 1600 {
		t.Errorf("expected the early nest to be filtered, got %+v", spawns)
	}
}

func TestDragonSpawns_CyclesPlatformTops(t *testing.T) {
	l := Level{
		Name:  "Overflow",
		Width: 2000,
		Platforms: []Platform{
			{0, GroundY, 2000, 40}, // floor center 1000, past 25% line
			{1200, WorldHeight - 300, 100, 20},
		},
		Treasures:    []Spot{{100, GroundY}},
		DragonStarts: []Spot{{1600, GroundY}},
		Exit:         Spot{1900, GroundY},
	}

	spawns := l.DragonSpawns(5, rand.New(rand.NewSource(1)))
	if len(spawns) != 5 {
		t.Fatalf("expected 5 spawns, got %d", len(spawns))
	}

	// Extra dragons cycle over the two qualifying platform tops.
	if spawns[1] != (Spot{1000, GroundY}) {
		t.Errorf("spawn 1 should sit on the floor top, got %+v", spawns[1])
	}
	if spawns[2] != (Spot{1250, WorldHeight - 300}) {
		t.Errorf("spawn 2 should sit on the high platform, got %+v", spawns[2])
	}
	if spawns[3] != spawns[1] {
		t.Errorf("spawn 3 should cycle back to the first candidate, got %+v", spawns[3])
	}
}

func TestDragonSpawns_GroundFallback(t *testing.T) {
	l := Level{
		Name:  "No Late Platforms",
		Width: 2000,
		// Single platform entirely inside the first quarter.
		Platforms: []Platform{{0, GroundY, 300, 40}},
		Treasures: []Spot{{100, GroundY}},
		Exit:      Spot{1900, GroundY},
	}

	rng := rand.New(rand.NewSource(42))
	spawns := l.DragonSpawns(3, rng)
	if len(spawns) != 3 {
		t.Fatalf("expected 3 spawns, got %d", len(spawns))
	}
	for i, s := range spawns {
		if s.Y != GroundY {
			t.Errorf("fallback spawn %d not on the ground: %+v", i, s)
		}
		if s.X < 500 || s.X > 1950 {
			t.Errorf("fallback spawn %d outside the allowed range: %+v", i, s)
		}
	}
}

func TestDragonSpawns_ClampsCount(t *testing.T) {
	l := validLevel()
	if got := l.DragonSpawns(0, nil); len(got) != 1 {
		t.Errorf("count 0 should clamp to 1, got %d", len(got))
	}
	if got := l.DragonSpawns(99, rand.New(rand.NewSource(7))); len(got) != MaxDragons {
		t.Errorf("count 99 should clamp to %d, got %d", MaxDragons, len(got))
	}
}
