package csr

import "math"

// sqrt computes the square root of a Float value without losing the
// compile-time type parameter, by routing through float64 and converting
// back.
func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}
