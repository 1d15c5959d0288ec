package core

// Rand is the random source games draw from.
// *math/rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}
