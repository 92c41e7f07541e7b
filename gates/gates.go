// Package gates provides the standard single-qubit gate matrices.
//
// Every matrix is a row-major 2x2 complex128 array in the layout the
// executor's ApplyGate expects: {m00, m01, m10, m11}. Use As to convert to
// complex64.
package gates

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/cwbudde/algo-qsim/internal/qtypes"
)

// Matrix is a row-major 2x2 complex matrix.
type Matrix [4]complex128

var (
	// Identity leaves the target unchanged.
	Identity = Matrix{1, 0, 0, 1}
	// X is the Pauli-X (NOT) gate.
	X = Matrix{0, 1, 1, 0}
	// Y is the Pauli-Y gate.
	Y = Matrix{0, -1i, 1i, 0}
	// Z is the Pauli-Z gate.
	Z = Matrix{1, 0, 0, -1}
	// H is the Hadamard gate.
	H = Matrix{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	}
	// S is the phase gate diag(1, i).
	S = Matrix{1, 0, 0, 1i}
	// T is the pi/8 gate diag(1, e^{i pi/4}).
	T = Matrix{1, 0, 0, cmplx.Exp(complex(0, math.Pi/4))}
)

// RX is a rotation by theta around the X axis.
func RX(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))

	return Matrix{c, s, s, c}
}

// RY is a rotation by theta around the Y axis.
func RY(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return Matrix{c, -s, s, c}
}

// RZ is a rotation by theta around the Z axis: diag(e^{-i theta/2}, e^{i theta/2}).
func RZ(theta float64) Matrix {
	return Matrix{cmplx.Exp(complex(0, -theta/2)), 0, 0, cmplx.Exp(complex(0, theta/2))}
}

// U1 is the phase shift diag(1, e^{i theta}).
func U1(theta float64) Matrix {
	return Matrix{1, 0, 0, cmplx.Exp(complex(0, theta))}
}

// U3 is the general single-qubit rotation with Euler angles theta, phi, lambda.
func U3(theta, phi, lambda float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return Matrix{
		c,
		-cmplx.Exp(complex(0, lambda)) * s,
		cmplx.Exp(complex(0, phi)) * s,
		cmplx.Exp(complex(0, phi+lambda)) * c,
	}
}

// Dagger returns the conjugate transpose of m.
func (m Matrix) Dagger() Matrix {
	return Matrix{cmplx.Conj(m[0]), cmplx.Conj(m[2]), cmplx.Conj(m[1]), cmplx.Conj(m[3])}
}

// Mul returns the product m*o.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

// IsUnitary reports whether m times its conjugate transpose is the identity
// within tol.
func (m Matrix) IsUnitary(tol float64) bool {
	p := m.Mul(m.Dagger())
	for i := range p {
		if cmplx.Abs(p[i]-Identity[i]) > tol {
			return false
		}
	}

	return true
}

// As converts m to the amplitude type T.
func As[T qtypes.Complex](m Matrix) [4]T {
	return [4]T{T(m[0]), T(m[1]), T(m[2]), T(m[3])}
}

// Slice converts m to a length-4 slice of T.
func Slice[T qtypes.Complex](m Matrix) []T {
	a := As[T](m)
	return a[:]
}

// ByName returns the named gate. Parametrised gates take their angles from
// params: RX, RY, RZ and U1 take one, U3 takes three. Names are case-insensitive.
func ByName(name string, params []float64) (Matrix, error) {
	need := func(n int) error {
		if len(params) != n {
			return fmt.Errorf("gates: %s takes %d parameter(s), got %d", name, n, len(params))
		}

		return nil
	}

	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "I", "ID":
		return Identity, need(0)
	case "X", "NOT":
		return X, need(0)
	case "Y":
		return Y, need(0)
	case "Z":
		return Z, need(0)
	case "H":
		return H, need(0)
	case "S":
		return S, need(0)
	case "SDG":
		return S.Dagger(), need(0)
	case "T":
		return T, need(0)
	case "TDG":
		return T.Dagger(), need(0)
	case "RX":
		if err := need(1); err != nil {
			return Matrix{}, err
		}
		return RX(params[0]), nil
	case "RY":
		if err := need(1); err != nil {
			return Matrix{}, err
		}
		return RY(params[0]), nil
	case "RZ":
		if err := need(1); err != nil {
			return Matrix{}, err
		}
		return RZ(params[0]), nil
	case "U1", "P":
		if err := need(1); err != nil {
			return Matrix{}, err
		}
		return U1(params[0]), nil
	case "U3", "U":
		if err := need(3); err != nil {
			return Matrix{}, err
		}
		return U3(params[0], params[1], params[2]), nil
	default:
		return Matrix{}, fmt.Errorf("gates: unknown gate %q", name)
	}
}
