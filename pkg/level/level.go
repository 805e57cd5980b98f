// Package level defines the cave level format: platform layouts, treasure
// and obstacle placement, dragon nests and the exit. Levels are plain JSON
// so they can be authored by hand and validated with cmd/validate.
package level

import (
	"fmt"

	"github.com/skovand/dragon-cave/pkg/geom"
)

// World dimensions shared by every level. Levels are authored against a
// 600-unit-tall world with the cave floor 40 units above the bottom.
const (
	WorldHeight = 600
	GroundY     = 560 // top of the cave floor
)

// Platform is a solid surface the caver can stand on. X,Y is the
// top-left corner.
type Platform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect returns the platform's collision rectangle.
func (p Platform) Rect() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Spot is a ground-anchored placement: X is the horizontal center and
// Y the bottom edge of whatever stands there.
type Spot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Level is the template for a single cave chamber.
type Level struct {
	Name         string     `json:"name"`                // Display name of the level
	FileName     string     `json:"file_name,omitempty"` // Source file, set by the loader
	Width        float64    `json:"width"`               // Horizontal extent in world units
	Platforms    []Platform `json:"platforms"`           // Solid surfaces, including the floor
	Treasures    []Spot     `json:"treasures"`           // Gem placements
	Obstacles    []Spot     `json:"obstacles"`           // Boulders; solid like platforms
	DragonStarts []Spot     `json:"dragon_starts"`       // Authored dragon nests
	Exit         Spot       `json:"exit"`                // Cave exit position
}

// Bounds returns the level's world rectangle.
func (l *Level) Bounds() geom.Rect {
	return geom.Rect{W: l.Width, H: WorldHeight}
}

// Validate checks the level for structural problems. It returns all
// problems found, not just the first.
func (l *Level) Validate() []error {
	var errs []error

	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if l.Name == "" {
		add("level has no name")
	}
	if l.Width <= 0 {
		add("level width must be positive, got %v", l.Width)
	}
	if len(l.Platforms) == 0 {
		add("level has no platforms")
	}
	if len(l.Treasures) == 0 {
		add("level has no treasures")
	}

	bounds := l.Bounds()
	inBounds := func(s Spot) bool {
		return s.X >= 0 && s.X <= l.Width && s.Y > 0 && s.Y <= WorldHeight
	}

	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			add("platform %d has non-positive size %vx%v", i, p.W, p.H)
		}
		if !bounds.Intersects(p.Rect()) {
			add("platform %d lies outside the level bounds", i)
		}
	}
	for i, t := range l.Treasures {
		if !inBounds(t) {
			add("treasure %d at (%v,%v) lies outside the level bounds", i, t.X, t.Y)
		}
	}
	for i, o := range l.Obstacles {
		if !inBounds(o) {
			add("obstacle %d at (%v,%v) lies outside the level bounds", i, o.X, o.Y)
		}
	}
	for i, d := range l.DragonStarts {
		if !inBounds(d) {
			add("dragon start %d at (%v,%v) lies outside the level bounds", i, d.X, d.Y)
		}
	}
	if !inBounds(l.Exit) {
		add("exit at (%v,%v) lies outside the level bounds", l.Exit.X, l.Exit.Y)
	}

	return errs
}
