package rtscene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds3 is an axis-aligned bounding box in three dimensions.
// The zero value is a degenerate box at the origin; use EmptyBounds
// for the union identity.
type Bounds3 struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBounds3 returns the bounds spanning the two corner points.
// The corners need not be ordered; each axis is normalized.
func NewBounds3(a, b mgl32.Vec3) Bounds3 {
	return Bounds3{
		Min: mgl32.Vec3{math32.Min(a.X(), b.X()), math32.Min(a.Y(), b.Y()), math32.Min(a.Z(), b.Z())},
		Max: mgl32.Vec3{math32.Max(a.X(), b.X()), math32.Max(a.Y(), b.Y()), math32.Max(a.Z(), b.Z())},
	}
}

// EmptyBounds returns the empty bounds, the identity element for Union.
func EmptyBounds() Bounds3 {
	return Bounds3{
		Min: mgl32.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: mgl32.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
}

// Empty reports whether the bounds contain no points.
func (b Bounds3) Empty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// Union returns the smallest bounds enclosing both b and o.
func (b Bounds3) Union(o Bounds3) Bounds3 {
	return Bounds3{
		Min: mgl32.Vec3{
			math32.Min(b.Min.X(), o.Min.X()),
			math32.Min(b.Min.Y(), o.Min.Y()),
			math32.Min(b.Min.Z(), o.Min.Z()),
		},
		Max: mgl32.Vec3{
			math32.Max(b.Max.X(), o.Max.X()),
			math32.Max(b.Max.Y(), o.Max.Y()),
			math32.Max(b.Max.Z(), o.Max.Z()),
		},
	}
}

// UnionPoint returns the smallest bounds enclosing b and the point p.
func (b Bounds3) UnionPoint(p mgl32.Vec3) Bounds3 {
	return b.Union(Bounds3{Min: p, Max: p})
}

// Transformed returns the axis-aligned bounds of the box under the
// given transform: all eight corners are transformed and re-enclosed.
func (b Bounds3) Transformed(m mgl32.Mat4) Bounds3 {
	if b.Empty() {
		return b
	}
	out := EmptyBounds()
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{b.Min.X(), b.Min.Y(), b.Min.Z()}
		if i&1 != 0 {
			corner[0] = b.Max.X()
		}
		if i&2 != 0 {
			corner[1] = b.Max.Y()
		}
		if i&4 != 0 {
			corner[2] = b.Max.Z()
		}
		out = out.UnionPoint(mgl32.TransformCoordinate(corner, m))
	}
	return out
}

// Overlaps reports whether the two bounds share any point.
func (b Bounds3) Overlaps(o Bounds3) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Center returns the midpoint of the bounds.
func (b Bounds3) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds3) String() string {
	return fmt.Sprintf("[%v .. %v]", b.Min, b.Max)
}
