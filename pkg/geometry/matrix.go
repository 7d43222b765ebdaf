package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when two matrices cannot be multiplied
var ErrDimensionMismatch = errors.New("matrix dimension mismatch")

// Matrix is a dense row-major matrix. Transform matrices are 4x4 and
// points are multiplied as row vectors: p' = p·M.
type Matrix [][]float64

// Rows returns the number of rows
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Multiply returns the product a·b
func Multiply(a, b Matrix) (Matrix, error) {
	if a.Rows() == 0 || b.Rows() == 0 {
		return nil, fmt.Errorf("%w: empty operand", ErrDimensionMismatch)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("%w: columns in a: %d didn't match rows in b: %d",
			ErrDimensionMismatch, a.Cols(), b.Rows())
	}

	rows, cols, inner := a.Rows(), b.Cols(), a.Cols()
	c := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		c[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return c, nil
}

// mustMultiply is used for products of the fixed 4x4 constructors below
func mustMultiply(a, b Matrix) Matrix {
	c, err := Multiply(a, b)
	if err != nil {
		panic(err)
	}
	return c
}

// RowVector returns the point as a 1x4 matrix
func (p Point) RowVector() Matrix {
	return Matrix{{p.X, p.Y, p.Z, p.W}}
}

// MultiplyRowVector transforms a point by a 4x4 matrix
func MultiplyRowVector(p Point, m Matrix) (Point, error) {
	r, err := Multiply(p.RowVector(), m)
	if err != nil {
		return Point{}, err
	}
	if len(r[0]) != 4 {
		return Point{}, fmt.Errorf("%w: expected 4 columns, got %d", ErrDimensionMismatch, len(r[0]))
	}
	return Point{X: r[0][0], Y: r[0][1], Z: r[0][2], W: r[0][3]}, nil
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotationMatrix returns Rx·Ry·Rz for angles in degrees.
// The composition order is fixed; X is applied first.
func RotationMatrix(rx, ry, rz float64) Matrix {
	return mustMultiply(mustMultiply(xRotation(rx), yRotation(ry)), zRotation(rz))
}

func xRotation(deg float64) Matrix {
	s, c := math.Sincos(Radians(deg))
	return Matrix{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func yRotation(deg float64) Matrix {
	s, c := math.Sincos(Radians(deg))
	return Matrix{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func zRotation(deg float64) Matrix {
	s, c := math.Sincos(Radians(deg))
	return Matrix{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// ScalingMatrix returns a diagonal scaling matrix
func ScalingMatrix(sx, sy, sz float64) Matrix {
	return Matrix{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// TranslationMatrix returns an affine translation in row-vector form
func TranslationMatrix(dx, dy, dz float64) Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{dx, dy, dz, 1},
	}
}

// ObliqueMatrix returns the oblique projection shear for length l and
// angle alpha (degrees). Depth is sheared into x/y and then dropped.
func ObliqueMatrix(l, alpha float64) Matrix {
	s, c := math.Sincos(Radians(alpha))
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{l * c, l * s, 0, 0},
		{0, 0, 0, 1},
	}
}

// ViewMatrix returns the camera orientation for distance rho, azimuth phi
// and elevation theta (degrees).
func ViewMatrix(rho, phi, theta float64) Matrix {
	sp, cp := math.Sincos(Radians(phi))
	st, ct := math.Sincos(Radians(theta))
	return Matrix{
		{-st, -cp * ct, -sp * ct, 0},
		{ct, -cp * st, -sp * st, 0},
		{0, sp, -cp, 0},
		{0, 0, rho, 1},
	}
}

// LegacyViewMatrix is the view matrix older renders were made with: phi
// and theta go to sin/cos unconverted (radians), and the second row's
// middle entry is built from cos(phi)·sin(phi), so it ignores theta.
func LegacyViewMatrix(rho, phi, theta float64) Matrix {
	sp, cp := math.Sincos(phi)
	st, ct := math.Sincos(theta)
	return Matrix{
		{-st, -cp * ct, -sp * ct, 0},
		{ct, -cp * sp, -sp * st, 0},
		{0, sp, -cp, 0},
		{0, 0, rho, 1},
	}
}
