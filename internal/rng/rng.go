package rng

// Generator provides seeds for deck shuffles
type Generator interface {
	// Seed returns a positive 63-bit seed
	Seed() int64
}
