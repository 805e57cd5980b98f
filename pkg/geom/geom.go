// Package geom provides the 2D vector and rectangle math used by the
// cave simulation. Coordinates follow screen convention: x grows right,
// y grows down.
package geom

import "math"

// Vec2 is a 2D vector or point in world units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Unit returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Unit() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle. X,Y is the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RectAt builds a rect of the given size centered horizontally on cx
// with its bottom edge at bottom. Entities in the simulation are
// positioned by their feet, so this is the common constructor.
func RectAt(cx, bottom, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rect.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects reports whether the two rects overlap. Touching edges do
// not count as an overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Shrink returns a rect scaled around its center by ratio (0..1].
// Used for forgiving hitboxes on enemy contact.
func (r Rect) Shrink(ratio float64) Rect {
	w := r.W * ratio
	h := r.H * ratio
	c := r.Center()
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
