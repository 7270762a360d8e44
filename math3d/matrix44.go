package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/pathtool/utils"
)

// Matrix44 is an affine transform acting on column vectors: the rotation
// lives in the upper-left 3x3 and the translation in the fourth column. This
// is the layout the firmware tables expect, so Elements can be emitted as-is.
type Matrix44 struct {
	m11 float64 // 0
	m12 float64 // 1
	m13 float64 // 2
	m14 float64 // 3
	m21 float64 // 4
	m22 float64 // 5
	m23 float64 // 6
	m24 float64 // 7
	m31 float64 // 8
	m32 float64 // 9
	m33 float64 // 10
	m34 float64 // 11
	m41 float64 // 12
	m42 float64 // 13
	m43 float64 // 14
	m44 float64 // 15
}

var (
	IdentityMatrix44 = Matrix44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
)

// MakeMatrix44 returns a matrix which rotates by the given Euler angles, then
// translates by v.
func MakeMatrix44(v Vector3, ea EulerAngles) *Matrix44 {
	m := &Matrix44{}
	m.SetRotation(ea)
	m.SetTranslation(v)
	return m
}

// MakeTranslation returns a matrix which only translates.
func MakeTranslation(v Vector3) Matrix44 {
	m := IdentityMatrix44
	m.SetTranslation(v)
	return m
}

// MakeRotationX returns a matrix rotating by deg degrees about the X axis.
func MakeRotationX(deg float64) Matrix44 {
	c, s := cosSin(deg)
	return Matrix44{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// MakeRotationY returns a matrix rotating by deg degrees about the Y axis.
func MakeRotationY(deg float64) Matrix44 {
	c, s := cosSin(deg)
	return Matrix44{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// MakeRotationZ returns a matrix rotating by deg degrees about the Z axis.
func MakeRotationZ(deg float64) Matrix44 {
	c, s := cosSin(deg)
	return Matrix44{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func cosSin(deg float64) (float64, float64) {
	r := utils.Rad(deg)
	return math.Cos(r), math.Sin(r)
}

func (m Matrix44) String() string {
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		m.m11, m.m12, m.m13, m.m14,
		m.m21, m.m22, m.m23, m.m24,
		m.m31, m.m32, m.m33, m.m34,
		m.m41, m.m42, m.m43, m.m44)
}

// Elements returns the matrix as a 4D array of float64s, row by row.
func (m Matrix44) Elements() [4][4]float64 {
	return [4][4]float64{
		{m.m11, m.m12, m.m13, m.m14},
		{m.m21, m.m22, m.m23, m.m24},
		{m.m31, m.m32, m.m33, m.m34},
		{m.m41, m.m42, m.m43, m.m44},
	}
}

// Multiply returns m·n, i.e. the transform which applies n first and then m.
func (m Matrix44) Multiply(n Matrix44) Matrix44 {
	return *MultiplyMatrices(m, n)
}

// MultiplyMatrices multiplies two 4x4 matrices together, and returns a pointer
// to the result.
func MultiplyMatrices(a Matrix44, b Matrix44) *Matrix44 {
	return &Matrix44{
		(a.m11 * b.m11) + (a.m12 * b.m21) + (a.m13 * b.m31) + (a.m14 * b.m41),
		(a.m11 * b.m12) + (a.m12 * b.m22) + (a.m13 * b.m32) + (a.m14 * b.m42),
		(a.m11 * b.m13) + (a.m12 * b.m23) + (a.m13 * b.m33) + (a.m14 * b.m43),
		(a.m11 * b.m14) + (a.m12 * b.m24) + (a.m13 * b.m34) + (a.m14 * b.m44),
		(a.m21 * b.m11) + (a.m22 * b.m21) + (a.m23 * b.m31) + (a.m24 * b.m41),
		(a.m21 * b.m12) + (a.m22 * b.m22) + (a.m23 * b.m32) + (a.m24 * b.m42),
		(a.m21 * b.m13) + (a.m22 * b.m23) + (a.m23 * b.m33) + (a.m24 * b.m43),
		(a.m21 * b.m14) + (a.m22 * b.m24) + (a.m23 * b.m34) + (a.m24 * b.m44),
		(a.m31 * b.m11) + (a.m32 * b.m21) + (a.m33 * b.m31) + (a.m34 * b.m41),
		(a.m31 * b.m12) + (a.m32 * b.m22) + (a.m33 * b.m32) + (a.m34 * b.m42),
		(a.m31 * b.m13) + (a.m32 * b.m23) + (a.m33 * b.m33) + (a.m34 * b.m43),
		(a.m31 * b.m14) + (a.m32 * b.m24) + (a.m33 * b.m34) + (a.m34 * b.m44),
		(a.m41 * b.m11) + (a.m42 * b.m21) + (a.m43 * b.m31) + (a.m44 * b.m41),
		(a.m41 * b.m12) + (a.m42 * b.m22) + (a.m43 * b.m32) + (a.m44 * b.m42),
		(a.m41 * b.m13) + (a.m42 * b.m23) + (a.m43 * b.m33) + (a.m44 * b.m43),
		(a.m41 * b.m14) + (a.m42 * b.m24) + (a.m43 * b.m34) + (a.m44 * b.m44),
	}
}

// SetRotation sets the rotation of a matrix to that of the given Euler angles,
// applied roll (X) first, then pitch (Y), then yaw (Z). The translation column
// and bottom row are reset.
func (m *Matrix44) SetRotation(ea EulerAngles) {
	r := MakeRotationZ(utils.Deg(ea.Yaw)).
		Multiply(MakeRotationY(utils.Deg(ea.Pitch))).
		Multiply(MakeRotationX(utils.Deg(ea.Roll)))

	*m = r
}

// SetTranslation sets the translation of a matrix by overwriting the fourth
// column. Other cells are left alone.
func (m *Matrix44) SetTranslation(v Vector3) {
	m.m14 = v.X
	m.m24 = v.Y
	m.m34 = v.Z
}
