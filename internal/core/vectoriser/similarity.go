package vectoriser

import (
	"fmt"
	"math"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// Dot returns the dot product of two equal-length vectors.
func Dot(a, b domain.Vector) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Magnitude returns the Euclidean length of v.
func Magnitude(v domain.Vector) float64 {
	return math.Sqrt(Dot(v, v))
}

// Cosine returns the cosine of the angle between a and b.
// The result is not clamped; negative weights can push it below zero.
func Cosine(a, b domain.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", domain.ErrDimensionMismatch, len(a), len(b))
	}

	magA, magB := Magnitude(a), Magnitude(b)
	if magA == 0 || magB == 0 {
		return 0, domain.ErrZeroMagnitudeVector
	}
	return Dot(a, b) / (magA * magB), nil
}
