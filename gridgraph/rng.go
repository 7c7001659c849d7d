package gridgraph

import "math/rand"

// defaultRNGSeed is the seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// math/rand.Rand is not goroutine-safe; give each generation its own instance.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
