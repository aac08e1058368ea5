// Package linalg provides the small 3D vector and 3x3 matrix algebra the
// mesh package builds on: vertex positions and normals are Vec3, and face
// Jacobians (drcdr) and their intermediate quotient-rule terms are backed
// by gonum/mat so that the differential kernel can lean on a tested dense
// linear algebra library instead of hand-rolled 3x3 inverses.
package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const Tol = 1.e-12

// Vec3 is a position or direction in R^3.
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// A + B
func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// A - B
func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// A x B
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// A . B
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// s * A
func Scale(a Vec3, s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// |A|
func Norm(a Vec3) float64 {
	return math.Sqrt(Dot(a, a))
}

// |A|^2
func NormSq(a Vec3) float64 {
	return Dot(a, a)
}

// A / |A|; zero vector in, zero vector out
func Normalize(a Vec3) Vec3 {
	n := Norm(a)
	if n < Tol {
		return Vec3{}
	}
	return Scale(a, 1/n)
}

func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Tol
}

func PointsEqual(a, b Vec3) bool {
	return AlmostEqual(a.X, b.X) && AlmostEqual(a.Y, b.Y) && AlmostEqual(a.Z, b.Z)
}

// SignedAngle returns the signed angle (radians, in (-pi,pi]) to rotate u
// into the direction of v about axis, with positive meaning a
// counterclockwise turn as seen looking down -axis (i.e. axis pointing at
// the viewer). Degenerate (zero-length) inputs return 0.
func SignedAngle(u, v, axis Vec3) float64 {
	un, vn := Norm(u), Norm(v)
	if un < Tol || vn < Tol {
		return 0
	}
	cross := Cross(u, v)
	sinComponent := Dot(cross, Normalize(axis))
	cosComponent := Dot(u, v)
	return math.Atan2(sinComponent, cosComponent)
}

// Outer returns the outer product a*b^T as a 3x3 matrix.
func Outer(a, b Vec3) *mat.Dense {
	o := mat.NewDense(3, 3, nil)
	av := [3]float64{a.X, a.Y, a.Z}
	bv := [3]float64{b.X, b.Y, b.Z}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.Set(i, j, av[i]*bv[j])
		}
	}
	return o
}

// AsVec returns a as a gonum column vector.
func AsVec(a Vec3) *mat.VecDense {
	return mat.NewVecDense(3, []float64{a.X, a.Y, a.Z})
}

// FromVec reads a Vec3 out of a 3-length gonum vector.
func FromVec(v mat.Vector) Vec3 {
	return Vec3{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
}

// Identity3 returns a fresh 3x3 identity matrix.
func Identity3() *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	return m
}

// LeftVecMul returns v^T * M as a Vec3, i.e. result_beta = sum_alpha v_alpha * M[alpha][beta].
// A nil M is treated as the zero matrix.
func LeftVecMul(v Vec3, M *mat.Dense) Vec3 {
	if M == nil {
		return Vec3{}
	}
	va := [3]float64{v.X, v.Y, v.Z}
	var out [3]float64
	for beta := 0; beta < 3; beta++ {
		var s float64
		for alpha := 0; alpha < 3; alpha++ {
			s += va[alpha] * M.At(alpha, beta)
		}
		out[beta] = s
	}
	return Vec3{out[0], out[1], out[2]}
}

// AddScaled returns dst + s*src as a new matrix; dst may be nil for a pure scale.
func AddScaled(dst, src mat.Matrix, s float64) *mat.Dense {
	r, c := src.Dims()
	out := mat.NewDense(r, c, nil)
	if dst != nil {
		out.CloneFrom(dst)
	}
	var scaled mat.Dense
	scaled.Scale(s, src)
	out.Add(out, &scaled)
	return out
}
