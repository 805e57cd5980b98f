package sim

// The simulation runs at a fixed 60 ticks per second. All tuning below
// is expressed per tick (speeds, accelerations) or in ticks (timers).
const TicksPerSecond = 60

// Caver tuning.
const (
	PlayerAccel    = 0.5
	PlayerFriction = -0.12
	Gravity        = 0.6
	JumpPower      = 15
	MaxRunSpeed    = 7
	PlayerW        = 30
	PlayerH        = 40

	// Dropping a rock has a one second cooldown.
	RockCooldownTicks = TicksPerSecond
)

// Dragon tuning.
const (
	DragonW                = 60
	DragonH                = 50
	DragonWakeRange        = 150 // base hearing distance, scaled by perception
	DragonSpeed            = 1.5
	DragonFireInterval     = 120 // ticks between fireballs while chasing
	DragonDistractionTicks = 180 // how long a rock holds a dragon's attention
	DragonArriveDist       = 10  // close enough to a distraction point
	DragonChaseMinDist     = 5   // stop closing below this to avoid jitter
)

// Projectile and pickup tuning.
const (
	FireballSize  = 15
	FireballSpeed = 5

	RockSize        = 15
	RockGravity     = 0.8
	RockSoundRadius = 100 // how far a landing rock is heard

	TreasureSize    = 20
	BigTreasureSize = 50
	ObstacleSize    = 50

	ExitW = 40
	ExitH = 60
)

// EnemyHitboxRatio shrinks dragon and fireball hitboxes for contact
// checks, forgiving near misses.
const EnemyHitboxRatio = 0.8

// treasureNoiseFactor caps the chance that collecting a treasure wakes a
// nearby sleeping dragon.
const treasureNoiseFactor = 0.5
