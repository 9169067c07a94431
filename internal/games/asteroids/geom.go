package asteroids

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when a direction is required but the vector has
// no magnitude.
var ErrZeroVector = errors.New("asteroids: zero-length direction vector")

// Vec is a 2D vector in arena units. Value type, immutable by convention:
// every operation returns a new Vec.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated by the given angle in degrees.
func (v Vec) Rotate(degrees float64) Vec {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Normalize returns the unit vector in the direction of v.
// Returns ErrZeroVector if v has no magnitude.
func (v Vec) Normalize() (Vec, error) {
	l := v.Len()
	if l == 0 {
		return Vec{}, ErrZeroVector
	}
	return Vec{X: v.X / l, Y: v.Y / l}, nil
}

// HeadingVec returns the unit vector pointing along a heading in degrees.
// Heading 0 points along positive X.
func HeadingVec(degrees float64) Vec {
	return Vec{X: 1, Y: 0}.Rotate(degrees)
}

// Wrap maps a position onto the toroidal arena [0, w) x [0, h): a coordinate
// that reaches or exceeds the upper bound resets to 0, one that drops below 0
// resets to bound-1. Positions never clamp-and-stop at an edge.
func Wrap(p Vec, w, h float64) Vec {
	if p.X >= w {
		p.X = 0
	} else if p.X < 0 {
		p.X = w - 1
	}
	if p.Y >= h {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = h - 1
	}
	return p
}

// PointInCircle reports whether p lies inside or on the circle around center.
// The boundary counts as a hit.
func PointInCircle(p, center Vec, radius float64) bool {
	return p.Sub(center).Len() <= radius
}
