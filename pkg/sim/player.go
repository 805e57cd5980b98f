package sim

import (
	"math"

	"github.com/jwebster45206/d20"
	"github.com/skovand/dragon-cave/pkg/geom"
	"github.com/skovand/dragon-cave/pkg/level"
)

// Input is the player's intent for a single tick. Left/Right are held
// keys; Jump and DropRock are edge-triggered presses.
type Input struct {
	Left     bool
	Right    bool
	Jump     bool
	DropRock bool
}

// Player is the caver. Pos is the feet position: X the horizontal
// center, Y the bottom edge.
type Player struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	OnGround bool
	Actor    *d20.Actor

	rockCooldown int
}

func newPlayer(actor *d20.Actor) *Player {
	return &Player{
		// The caver starts a quarter of the way into the view, just
		// above the cave floor.
		Pos:   geom.Vec2{X: 200, Y: level.GroundY - 10},
		Actor: actor,
	}
}

// Rect returns the caver's collision rectangle.
func (p *Player) Rect() geom.Rect {
	return geom.RectAt(p.Pos.X, p.Pos.Y, PlayerW, PlayerH)
}

// Alive reports whether the caver can still act.
func (p *Player) Alive() bool {
	return p.Actor.HP() > 0
}

// standing reports whether the caver's feet rest on any solid, probed by
// nudging the hitbox one unit down.
func (p *Player) standing(solids []geom.Rect) bool {
	probe := p.Rect()
	probe.Y++
	for _, s := range solids {
		if probe.Intersects(s) {
			return true
		}
	}
	return false
}

// step advances the caver one tick and returns the events it produced.
func (p *Player) step(in Input, solids []geom.Rect, levelWidth float64) []Event {
	var events []Event

	if p.rockCooldown > 0 {
		p.rockCooldown--
	}

	if in.Jump && p.standing(solids) {
		p.Vel.Y = -JumpPower
		events = append(events, Event{Kind: EventJump, Pos: p.Pos})
	}

	// Equations of motion: acceleration from input, friction when idle,
	// gravity always.
	acc := geom.Vec2{Y: Gravity}
	switch {
	case in.Left && !in.Right:
		acc.X = -PlayerAccel
	case in.Right && !in.Left:
		acc.X = PlayerAccel
	default:
		acc.X = p.Vel.X * PlayerFriction
	}
	p.Vel = p.Vel.Add(acc)

	if p.Vel.X > MaxRunSpeed {
		p.Vel.X = MaxRunSpeed
	} else if p.Vel.X < -MaxRunSpeed {
		p.Vel.X = -MaxRunSpeed
	}
	if math.Abs(p.Vel.X) < 0.1 {
		p.Vel.X = 0
	}

	// Horizontal move and resolve.
	p.Pos.X += p.Vel.X
	r := p.Rect()
	for _, s := range solids {
		if !r.Intersects(s) {
			continue
		}
		if p.Vel.X > 0 {
			p.Pos.X = s.Left() - PlayerW/2
		} else if p.Vel.X < 0 {
			p.Pos.X = s.Right() + PlayerW/2
		}
		p.Vel.X = 0
		r = p.Rect()
	}

	// Vertical move and resolve.
	p.Pos.Y += p.Vel.Y
	p.OnGround = false
	r = p.Rect()
	for _, s := range solids {
		if !r.Intersects(s) {
			continue
		}
		if p.Vel.Y > 0 { // landing
			p.Pos.Y = s.Top()
			p.OnGround = true
			p.Vel.Y = 0
		} else if p.Vel.Y < 0 { // head bump
			p.Pos.Y = s.Bottom() + PlayerH
			p.Vel.Y = 0
		}
		r = p.Rect()
	}

	// Level bounds.
	if p.Pos.X < PlayerW/2 {
		p.Pos.X = PlayerW / 2
		p.Vel.X = 0
	}
	if p.Pos.X > levelWidth-PlayerW/2 {
		p.Pos.X = levelWidth - PlayerW/2
		p.Vel.X = 0
	}

	// Failsafe: never fall through the cave floor.
	if p.Pos.Y > level.GroundY+50 {
		p.Pos.Y = level.GroundY
		p.OnGround = true
		p.Vel.Y = 0
	}

	return events
}

// tryDropRock spawns a rock at the caver's center if the cooldown
// allows. Returns nil when still cooling down.
func (p *Player) tryDropRock() *Rock {
	if p.rockCooldown > 0 {
		return nil
	}
	p.rockCooldown = RockCooldownTicks
	c := p.Rect().Center()
	return &Rock{Pos: c}
}
