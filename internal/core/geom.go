// Package core provides fundamental types and utilities shared by the game
// logic and the platform layer. It contains no Bubble Tea dependencies so the
// simulation stays pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTolerance is the absolute tolerance used when matching a position
// against a tile center.
const DefaultTolerance = 0.1

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec returns a world-space vector. Y is height above the water baseline,
// Z is the travel axis (the player moves towards negative Z).
func Vec(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// HorizontalDist returns the distance between a and b ignoring height.
func HorizontalDist(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// ApproxEqual reports whether a and b are within tol of each other.
// NaN never compares equal.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an int value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// SanitizeWeight turns a probability weight into something safe to sum:
// NaN, negative and infinite inputs become 0, values above 1 become 1.
func SanitizeWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}

// WrapDegrees maps an angle difference into [-180, 180).
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// Heading returns the unit direction on the water plane for an aim angle in
// degrees. Angle 0 points straight down the travel axis (-Z); positive angles
// turn towards -X.
func Heading(angleDeg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(angleDeg)
	return mgl64.Vec3{-math.Sin(rad), 0, -math.Cos(rad)}
}

// BearingTo returns the aim angle in degrees that points from `from` to `to`.
// It is the inverse of Heading.
func BearingTo(from, to mgl64.Vec3) float64 {
	dx := to.X() - from.X()
	dz := to.Z() - from.Z()
	return mgl64.RadToDeg(math.Atan2(-dx, -dz))
}
