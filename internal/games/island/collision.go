package island

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FootprintOverlap reports whether p lies strictly inside the square
// footprint of edge size centered at center. Height is ignored.
func FootprintOverlap(p, center mgl64.Vec3, size float64) bool {
	half := size / 2
	return math.Abs(p.X()-center.X()) < half && math.Abs(p.Z()-center.Z()) < half
}

// SphereOverlap reports whether two spheres intersect.
func SphereOverlap(a mgl64.Vec3, ra float64, b mgl64.Vec3, rb float64) bool {
	return a.Sub(b).Len() < ra+rb
}

// CylinderBandOverlap reports whether p is within radius of the vertical
// axis through base and its height lies in [yMin, yMax].
func CylinderBandOverlap(p, base mgl64.Vec3, radius, yMin, yMax float64) bool {
	dx := p.X() - base.X()
	dz := p.Z() - base.Z()
	if math.Hypot(dx, dz) >= radius {
		return false
	}
	return p.Y() >= yMin && p.Y() <= yMax
}

// BoxOverlap reports whether two boxes on the water plane intersect.
// Each box is given by its center and half extents along X and Z.
func BoxOverlap(a mgl64.Vec3, aHalfX, aHalfZ float64, b mgl64.Vec3, bHalfX, bHalfZ float64) bool {
	return math.Abs(a.X()-b.X()) < aHalfX+bHalfX && math.Abs(a.Z()-b.Z()) < aHalfZ+bHalfZ
}

// Bounce advances a moving tile center by one step and reflects it off the
// banks. The returned position never pokes past either bank.
func Bounce(x, dir, speed, half, riverHalf, dt float64) (float64, float64) {
	x += speed * dir * dt
	switch {
	case x+half >= riverHalf:
		x = riverHalf - half
		dir = -1
	case x-half <= -riverHalf:
		x = -riverHalf + half
		dir = 1
	}
	return x, dir
}
