package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/pathtool/utils"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}
)

// MakeVector3 returns a pointer to a new Vector3.
func MakeVector3(x float64, y float64, z float64) *Vector3 {
	return &Vector3{x, y, z}
}

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Add adds two vectors, and returns the result.
func (v Vector3) Add(vv Vector3) Vector3 {
	return Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

// Subtract returns the vector from vv to v.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.Subtract(vv).Magnitude()
}

// Unit returns the vector scaled to a length of one. The zero vector stays
// zero.
func (v Vector3) Unit() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return ZeroVector3
	}

	return v.MultiplyByScalar(1 / m)
}

// RotateZ rotates the vector counter-clockwise (seen from above) about the
// vertical axis by the given angle in degrees. Z is left alone.
func (v Vector3) RotateZ(deg float64) Vector3 {
	r := utils.Rad(deg)
	c := math.Cos(r)
	s := math.Sin(r)
	return Vector3{
		(v.X * c) - (v.Y * s),
		(v.X * s) + (v.Y * c),
		v.Z,
	}
}

// HypotXY returns the length of the vector projected onto the ground plane.
func (v Vector3) HypotXY() float64 {
	return math.Hypot(v.X, v.Y)
}

// Round returns a copy of the vector with each component rounded to the
// given number of decimal places.
func (v Vector3) Round(places int) Vector3 {
	return Vector3{
		utils.Round(v.X, places),
		utils.Round(v.Y, places),
		utils.Round(v.Z, places),
	}
}

// Transform returns a new Vector3, by applying a 4x4 matrix to this vector
// (treated as a point, so the translation applies).
func (v Vector3) Transform(m Matrix44) Vector3 {
	return Vector3{
		(m.m11 * v.X) + (m.m12 * v.Y) + (m.m13 * v.Z) + m.m14,
		(m.m21 * v.X) + (m.m22 * v.Y) + (m.m23 * v.Z) + m.m24,
		(m.m31 * v.X) + (m.m32 * v.Y) + (m.m33 * v.Z) + m.m34,
	}
}
