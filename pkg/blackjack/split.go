package blackjack

// CanSplit returns true if the hand holds exactly two cards of equal
// blackjack value. Rank is irrelevant: a king and a queen both count 10
// and are splittable.
func CanSplit(bh *BetHand) bool {
	cards := bh.Hand.Cards
	return len(cards) == 2 && cards[0].Value() == cards[1].Value()
}

// splitHand produces two new active bet hands, each holding one of the
// original cards and carrying the original wager. The caller replaces
// the source hand and deals one fresh card into each half.
func splitHand(bh *BetHand) (*BetHand, *BetHand, error) {
	if !CanSplit(bh) {
		return nil, nil, ErrCannotSplit
	}

	h1 := &BetHand{Hand: NewHand(bh.Hand.Cards[0]), Bet: bh.Bet}
	h2 := &BetHand{Hand: NewHand(bh.Hand.Cards[1]), Bet: bh.Bet}

	return h1, h2, nil
}
