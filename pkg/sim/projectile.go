package sim

import (
	"github.com/skovand/dragon-cave/pkg/geom"
	"github.com/skovand/dragon-cave/pkg/level"
)

// Fireball is a dragon's breath attack, flying in a straight line from
// the dragon toward where the caver was when it was loosed.
type Fireball struct {
	Pos  geom.Vec2 // center
	Vel  geom.Vec2
	Dead bool
}

// Rect returns the fireball's full bounding box.
func (f *Fireball) Rect() geom.Rect {
	return geom.Rect{X: f.Pos.X - FireballSize/2, Y: f.Pos.Y - FireballSize/2, W: FireballSize, H: FireballSize}
}

// step moves the fireball. It burns out on leaving the world or
// splashing against a boulder; platforms do not stop it.
func (f *Fireball) step(bounds geom.Rect, obstacles []geom.Rect) {
	f.Pos = f.Pos.Add(f.Vel)
	if !bounds.Intersects(f.Rect()) {
		f.Dead = true
		return
	}
	r := f.Rect()
	for _, o := range obstacles {
		if r.Intersects(o) {
			f.Dead = true
			return
		}
	}
}

// Rock is a pebble the caver drops to make noise. It falls straight
// down and thunks onto the first surface below.
type Rock struct {
	Pos    geom.Vec2 // center
	VelY   float64
	Landed bool
	Dead   bool
}

// Rect returns the rock's bounding box.
func (r *Rock) Rect() geom.Rect {
	return geom.Rect{X: r.Pos.X - RockSize/2, Y: r.Pos.Y - RockSize/2, W: RockSize, H: RockSize}
}

// step advances a falling rock. It returns the landing point on the
// tick the rock touches down, and nil otherwise.
func (r *Rock) step(solids []geom.Rect) *geom.Vec2 {
	if r.Landed || r.Dead {
		return nil
	}

	r.VelY += RockGravity
	r.Pos.Y += r.VelY

	bottom := r.Pos.Y + RockSize/2
	if bottom >= level.GroundY {
		r.Pos.Y = level.GroundY - RockSize/2
		return r.land()
	}

	rect := r.Rect()
	for _, s := range solids {
		if rect.Intersects(s) {
			r.Pos.Y = s.Top() - RockSize/2
			return r.land()
		}
	}

	if r.Pos.Y > level.WorldHeight+RockSize {
		r.Dead = true
	}
	return nil
}

func (r *Rock) land() *geom.Vec2 {
	r.Landed = true
	r.VelY = 0
	p := geom.Vec2{X: r.Pos.X, Y: r.Pos.Y + RockSize/2}
	return &p
}
