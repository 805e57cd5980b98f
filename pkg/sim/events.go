package sim

import "github.com/skovand/dragon-cave/pkg/geom"

// EventKind identifies something noteworthy that happened during a tick.
// The UI turns these into sound cues and HUD flashes.
type EventKind string

const (
	EventJump             EventKind = "jump"
	EventRockDropped      EventKind = "rock_dropped"
	EventTreasure         EventKind = "treasure"
	EventBigTreasureSpawn EventKind = "big_treasure_spawn"
	EventBigTreasure      EventKind = "big_treasure"
	EventDragonWake       EventKind = "dragon_wake" // the roar
	EventDragonDistracted EventKind = "dragon_distracted"
	EventDragonResumed    EventKind = "dragon_resumed"
	EventLevelComplete    EventKind = "level_complete"
	EventPlayerHit        EventKind = "player_hit"
)

// Event is a single simulation occurrence with its world position.
type Event struct {
	Kind EventKind
	Pos  geom.Vec2
}
