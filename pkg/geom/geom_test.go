package geom

import (
	"math"
	"testing"
)

func TestVec2_Unit(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{
			name: "zero vector stays zero",
			v:    Vec2{},
			want: Vec2{},
		},
		{
			name: "axis vector",
			v:    Vec2{X: 5},
			want: Vec2{X: 1},
		},
		{
			name: "diagonal",
			v:    Vec2{X: 3, Y: 4},
			want: Vec2{X: 0.6, Y: 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Unit()
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Unit() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVec2_Dist(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 4, Y: 6}
	if d := a.Dist(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %v, want 5", d)
	}
}

func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectAt(t *testing.T) {
	r := RectAt(100, 560, 30, 40)
	if r.X != 85 || r.Y != 520 || r.W != 30 || r.H != 40 {
		t.Errorf("RectAt() = %+v", r)
	}
	c := r.Center()
	if c.X != 100 || c.Y != 540 {
		t.Errorf("Center() = %+v", c)
	}
}

func TestRect_Shrink(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 20}
	s := r.Shrink(0.8)
	if math.Abs(s.W-8) > 1e-9 || math.Abs(s.H-16) > 1e-9 {
		t.Errorf("Shrink() size = %vx%v, want 8x16", s.W, s.H)
	}
	if s.Center() != r.Center() {
		t.Errorf("Shrink() moved center: %+v != %+v", s.Center(), r.Center())
	}
}
