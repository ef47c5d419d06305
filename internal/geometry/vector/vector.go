// Package vector provides the 3D vector type used throughout the
// scene-manipulation toolkit.
package vector

import (
	"fmt"
	"math"

	"scene-toolkit/internal/diag"
)

// NewVec3 creates a new 3D vector with the given components
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a 3D vector with float64 components. The zero value
// is the zero vector and is ready to use.
type Vec3 struct{ X, Y, Z float64 }

// Component returns the component at index i: 0 is X, 1 is Y, 2 is Z.
// Any other index panics.
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vector: component index %d out of range", i))
}

// SetComponent sets the component at index i: 0 is X, 1 is Y, 2 is Z.
// Any other index panics.
func (v *Vec3) SetComponent(i int, val float64) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		panic(fmt.Sprintf("vector: component index %d out of range", i))
	}
}

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Div scales a vector by the reciprocal of a scalar
func (v Vec3) Div(k float64) Vec3 { return Vec3{v.X / k, v.Y / k, v.Z / k} }

// Dot returns the dot product of two vectors
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// NormSq returns the squared magnitude of the vector
func (v Vec3) NormSq() float64 { return v.Dot(v) }

// Norm returns the vector's magnitude (Euclidean norm)
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Cross returns the cross product of two vectors
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return v.Mul(1 / n)
}

// minSquaredNorm is the threshold below which a projection axis or
// plane normal is considered degenerate.
const minSquaredNorm = 1.0e-10

var warnSink diag.Sink = diag.NoOp

// SetWarnSink installs the sink that receives degenerate-input
// warnings from the projection methods. Passing nil restores the
// default, which discards them. Warnings never affect results or
// control flow.
func SetWarnSink(s diag.Sink) {
	if s == nil {
		s = diag.NoOp
	}
	warnSink = s
}

// ProjectOnAxis projects v onto the axis of the given direction
// passing through the origin. direction does not need to be
// normalized, but must be non null: a direction whose squared norm is
// below 1e-10 is reported to the warning sink, and the division by
// that near-zero norm still runs, so a truly null direction yields
// NaN components.
func (v *Vec3) ProjectOnAxis(direction Vec3) {
	if direction.NormSq() < minSquaredNorm {
		warnSink.Warnf("vector: ProjectOnAxis: axis direction is not normalized (norm=%f)", direction.Norm())
	}
	*v = direction.Mul(v.Dot(direction) / direction.NormSq())
}

// ProjectOnPlane projects v onto the plane of the given normal
// passing through the origin. normal does not need to be normalized,
// but must be non null; the degenerate-input behavior matches
// ProjectOnAxis.
func (v *Vec3) ProjectOnPlane(normal Vec3) {
	if normal.NormSq() < minSquaredNorm {
		warnSink.Warnf("vector: ProjectOnPlane: plane normal is not normalized (norm=%f)", normal.Norm())
	}
	*v = v.Sub(normal.Mul(v.Dot(normal) / normal.NormSq()))
}

// String formats the components tab-separated, each in its shortest
// round-trippable decimal form.
func (v Vec3) String() string {
	return fmt.Sprintf("%s\t%s\t%s", formatComponent(v.X), formatComponent(v.Y), formatComponent(v.Z))
}
