package indicator

import (
	log "github.com/sirupsen/logrus"

	"github.com/c9s/streamta/pkg/num"
)

// sqrtIterations is the fixed number of Heron steps, there is no early exit.
const sqrtIterations = 32

// sqrt computes the square root with Heron's method: a(n+1) = 1/2 * (a(n) + v/a(n)).
// The seed is v itself.
func sqrt[T any](ar num.Arithmetic[T], v T) T {
	half := ar.Div(ar.One(), ar.FromUint32(2))

	seed := v
	for i := 0; i < sqrtIterations; i++ {
		if ar.Sign(seed) == 0 {
			log.Debugf("sqrt: zero seed after %d iterations, returning zero", i)
			return ar.Zero()
		}

		seed = ar.Mul(half, ar.Add(seed, ar.Div(v, seed)))
	}

	return seed
}
