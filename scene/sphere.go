package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
)

// SphereBounds computes the tight object-space bounds of a z-clipped
// sphere. The x/y extent shrinks only when the clipped z range lies
// entirely on one side of the equator; the phi sweep is conservatively
// treated as full.
func SphereBounds(s SphereData) rtscene.Bounds3 {
	r := math32.Abs(s.Radius)
	zMin := math32.Max(s.ZMin, -r)
	zMax := math32.Min(s.ZMax, r)
	if zMin > zMax {
		zMin, zMax = zMax, zMin
	}
	rxy := r
	if zMin > 0 || zMax < 0 {
		// The equator is clipped away; the widest remaining ring is
		// at the z cut closest to it.
		z := math32.Min(math32.Abs(zMin), math32.Abs(zMax))
		rxy = math32.Sqrt(math32.Max(r*r-z*z, 0))
	}
	return rtscene.Bounds3{
		Min: mgl32.Vec3{-rxy, -rxy, zMin},
		Max: mgl32.Vec3{rxy, rxy, zMax},
	}
}
