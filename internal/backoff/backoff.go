// Package backoff computes inter-attempt retry delays for the request
// pipeline.
package backoff

import (
	"math"
	"time"
)

// maxExponent bounds the doubling so the float math cannot overflow into a
// negative duration.
const maxExponent = 30

// Exponential computes base * 2^attempt. A cap of zero disables capping;
// otherwise the result never exceeds cap.
func Exponential(attempt int, base, cap time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	}
	if attempt > maxExponent {
		attempt = maxExponent
	}

	delay := time.Duration(float64(base) * Pow(2, attempt))
	if delay < 0 {
		delay = time.Duration(math.MaxInt64)
	}
	if cap > 0 && delay > cap {
		delay = cap
	}
	return delay
}

// Pow is integer exponentiation on a float base, avoiding a math.Pow call on
// the retry hot path.
func Pow(base float64, exponent int) float64 {
	result := 1.0
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result
}
