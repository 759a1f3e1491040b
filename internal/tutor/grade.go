package tutor

import "math"

// Tolerance is the absolute difference within which a submitted answer is
// accepted as correct. Absorbs floating-point and rounding noise; the
// comparison is strict, so a difference of exactly 0.01 is wrong.
const Tolerance = 0.01

// CheckAnswer reports whether the submitted answer matches the correct one
// within Tolerance.
func CheckAnswer(userAnswer, correctAnswer float64) bool {
	return math.Abs(userAnswer-correctAnswer) < Tolerance
}
