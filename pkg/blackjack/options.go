package blackjack

// Options are options for creating a new blackjack game
type Options struct {
	// StartingBalance is each player's stake at the start of the session
	StartingBalance int

	// Seed shuffles the deck deterministically when > 0. Leave as 0 for a
	// random shuffle.
	Seed int64
}

// DefaultOptions returns the default options for a blackjack game
func DefaultOptions() Options {
	return Options{
		StartingBalance: 1000,
	}
}
