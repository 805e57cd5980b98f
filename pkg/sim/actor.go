package sim

import (
	"fmt"

	"github.com/jwebster45206/d20"
)

// Actor sheets give the caver and the dragons d20 stats. The caver is
// fragile: a single hit from an awake dragon or a fireball ends the run.
// Dragon perception scales how far they hear the caver while asleep.

const (
	caverHP = 1
	caverAC = 12

	dragonHP         = 30
	dragonAC         = 16
	basePerception   = 10 // perception at which the wake range is exactly DragonWakeRange
	dragonPerception = 10
)

func newCaverActor() (*d20.Actor, error) {
	actor, err := d20.NewActor("caver").
		WithHP(caverHP).
		WithAC(caverAC).
		WithAttributes(map[string]int{
			"agility": 14,
			"stealth": 12,
		}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build caver actor: %w", err)
	}
	return actor, nil
}

func newDragonActor(n int) (*d20.Actor, error) {
	actor, err := d20.NewActor(fmt.Sprintf("dragon_%d", n)).
		WithHP(dragonHP).
		WithAC(dragonAC).
		WithAttributes(map[string]int{
			"perception": dragonPerception,
		}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build dragon actor: %w", err)
	}
	return actor, nil
}

// wakeRangeFor scales the base wake range by the dragon's perception.
func wakeRangeFor(actor *d20.Actor) float64 {
	p, ok := actor.Attribute("perception")
	if !ok || p <= 0 {
		p = basePerception
	}
	return DragonWakeRange * float64(p) / basePerception
}
