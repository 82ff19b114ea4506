package math

import (
	"github.com/go-mpf/mpf"
)

// Sqrt sets z to the rounded square root of x and returns z.
//
// Proxy for [mpf.Float.Sqrt], for use in expressions written against
// this package.
func Sqrt(z, x *mpf.Float) *mpf.Float {
	return z.Sqrt(x)
}
