package tween

import "math"

// Transform3D describes a 3D transform as a full 4×4 matrix, in the
// row-vector convention: a point (x, y, z, 1) is transformed by multiplying
// the row vector with the matrix. The coefficients encode row by row,
// m11 through m44.
//
// Promoting an [Affine] with [Transform3DFromAffine] and rotating about the
// z axis with [Rotate3D] agree with their 2D counterparts.
type Transform3D struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

var _ Interpolatable = Transform3D{}

// Identity3D is the identity transform.
var Identity3D = Transform3D{
	M11: 1,
	M22: 1,
	M33: 1,
	M44: 1,
}

// Transform3DFromAffine promotes a 2D affine transform to a 3D transform that
// leaves the z axis untouched.
func Transform3DFromAffine(aff Affine) Transform3D {
	return Transform3D{
		M11: aff.A, M12: aff.B,
		M21: aff.C, M22: aff.D,
		M33: 1,
		M41: aff.TX, M42: aff.TY, M44: 1,
	}
}

// Scale3D creates a transform scaling by (x, y, z).
func Scale3D(x, y, z float64) Transform3D {
	return Transform3D{
		M11: x,
		M22: y,
		M33: z,
		M44: 1,
	}
}

// Translate3D creates a transform translating by (x, y, z).
func Translate3D(x, y, z float64) Transform3D {
	m := Identity3D
	m.M41 = x
	m.M42 = y
	m.M43 = z
	return m
}

// Rotate3D creates a transform rotating by th radians about the axis
// (x, y, z). The axis does not need to be normalized; a zero axis yields a
// NaN matrix.
func Rotate3D(th, x, y, z float64) Transform3D {
	n := 1 / math.Sqrt(x*x+y*y+z*z)
	x, y, z = x*n, y*n, z*n
	sin, cos := math.Sincos(th)
	k := 1 - cos
	return Transform3D{
		M11: cos + x*x*k, M12: x*y*k + z*sin, M13: x*z*k - y*sin,
		M21: y*x*k - z*sin, M22: cos + y*y*k, M23: y*z*k + x*sin,
		M31: z*x*k + y*sin, M32: z*y*k - x*sin, M33: cos + z*z*k,
		M44: 1,
	}
}

func (m Transform3D) rows() [4][4]float64 {
	return [4][4]float64{
		{m.M11, m.M12, m.M13, m.M14},
		{m.M21, m.M22, m.M23, m.M24},
		{m.M31, m.M32, m.M33, m.M34},
		{m.M41, m.M42, m.M43, m.M44},
	}
}

func transform3DFromRows(r [4][4]float64) Transform3D {
	return Transform3D{
		r[0][0], r[0][1], r[0][2], r[0][3],
		r[1][0], r[1][1], r[1][2], r[1][3],
		r[2][0], r[2][1], r[2][2], r[2][3],
		r[3][0], r[3][1], r[3][2], r[3][3],
	}
}

// Mul returns the matrix product m * o. In the row-vector convention this is
// m followed by o.
func (m Transform3D) Mul(o Transform3D) Transform3D {
	a, b := m.rows(), o.rows()
	var r [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return transform3DFromRows(r)
}

// IsAffine reports whether the transform can be represented exactly as a 2D
// affine transform.
func (m Transform3D) IsAffine() bool {
	return m.M13 == 0 && m.M14 == 0 &&
		m.M23 == 0 && m.M24 == 0 &&
		m.M31 == 0 && m.M32 == 0 && m.M33 == 1 && m.M34 == 0 &&
		m.M43 == 0 && m.M44 == 1
}

// Affine returns the 2D affine part of the transform, discarding the z axis
// and perspective coefficients. The projection is exact when [Transform3D.IsAffine]
// reports true.
func (m Transform3D) Affine() Affine {
	return Affine{m.M11, m.M12, m.M21, m.M22, m.M41, m.M42}
}

// Lerp interpolates each coefficient independently. As with [Affine.Lerp],
// coefficient-wise interpolation of rotations passes through degenerate
// matrices.
func (m Transform3D) Lerp(o Transform3D, t float64) Transform3D {
	a, b := m.rows(), o.rows()
	var r [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = lerp(a[i][j], b[i][j], t)
		}
	}
	return transform3DFromRows(r)
}

func (m Transform3D) IsInf() bool {
	for _, row := range m.rows() {
		for _, v := range row {
			if math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}

func (m Transform3D) IsNaN() bool {
	for _, row := range m.rows() {
		for _, v := range row {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}

// Components returns the arity of the transform encoding.
func (m Transform3D) Components() int { return 16 }

// Vectorize encodes the transform as [m11, m12, ..., m44], row by row.
func (m Transform3D) Vectorize() (Vector, error) {
	return NewVector([]float64{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}, reconstructor(Transform3DFromValues)), nil
}

// Transform3DFromValues reconstructs a transform from its row-by-row,
// 16-coefficient encoding.
func Transform3DFromValues(values []float64) (Transform3D, error) {
	if err := checkArity(16, len(values)); err != nil {
		return Transform3D{}, err
	}
	return Transform3D{
		values[0], values[1], values[2], values[3],
		values[4], values[5], values[6], values[7],
		values[8], values[9], values[10], values[11],
		values[12], values[13], values[14], values[15],
	}, nil
}
