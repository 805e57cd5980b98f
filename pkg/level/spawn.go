package level

import "math/rand"

// MaxDragons caps the dragon count the start screen can select.
const MaxDragons = 5

// minSpawnFraction keeps dragons out of the first stretch of a level so
// the caver always has room to get moving.
const minSpawnFraction = 0.25

// DragonSpawns resolves the nest positions for n dragons. Authored
// starts past the 25% line are used first, in order. Any remaining
// dragons cycle over the tops of qualifying platforms; if the level has
// none, they fall back to random ground positions. rng is only consulted
// for the ground fallback.
func (l *Level) DragonSpawns(n int, rng *rand.Rand) []Spot {
	if n < 1 {
		n = 1
	}
	if n > MaxDragons {
		n = MaxDragons
	}

	minX := l.Width * minSpawnFraction
	spawns := make([]Spot, 0, n)

	for _, s := range l.DragonStarts {
		if len(spawns) == n {
			break
		}
		if s.X >= minX {
			spawns = append(spawns, s)
		}
	}

	remaining := n - len(spawns)
	if remaining == 0 {
		return spawns
	}

	// Platform tops past the spawn line. Obstacles are not platforms and
	// never host a nest.
	var candidates []Spot
	for _, p := range l.Platforms {
		cx := p.X + p.W/2
		if cx >= minX {
			candidates = append(candidates, Spot{X: cx, Y: p.Y})
		}
	}

	if len(candidates) == 0 {
		for i := 0; i < remaining; i++ {
			spawns = append(spawns, Spot{X: l.randomGroundX(minX, rng), Y: GroundY})
		}
		return spawns
	}

	for i := 0; i < remaining; i++ {
		spawns = append(spawns, candidates[i%len(candidates)])
	}
	return spawns
}

func (l *Level) randomGroundX(minX float64, rng *rand.Rand) float64 {
	start := minX
	if start < 50 {
		start = 50
	}
	end := l.Width - 50
	if start >= end {
		// Very narrow level: settle for the midpoint past the spawn line.
		mid := l.Width / 2
		if mid < minX {
			mid = minX
		}
		return mid
	}
	if rng == nil {
		return start + (end-start)/2
	}
	return start + rng.Float64()*(end-start)
}
