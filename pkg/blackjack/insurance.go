package blackjack

// insuranceAvailable returns true if the dealer's up-card is an ace
func insuranceAvailable(dealer *Hand) bool {
	up := dealer.UpCard()
	return up != nil && up.Value() == 11
}

// placeInsurance sets the player's insurance wager. The amount must be
// between zero and half of the player's primary bet. Placing again
// overwrites the previous wager rather than adding to it.
func placeInsurance(p *Player, amount int) error {
	if amount < 0 || amount*2 > p.Hands[0].Bet {
		return ErrInvalidInsurance
	}

	p.InsuranceBet = amount
	return nil
}

// resolveInsurance returns the net balance change for the player's
// insurance wager: 2:1 if the dealer has a blackjack, otherwise the
// wager is lost. A zero wager is a no-op.
func resolveInsurance(p *Player, dealerHasBlackjack bool) int {
	if p.InsuranceBet == 0 {
		return 0
	}

	if dealerHasBlackjack {
		return p.InsuranceBet * 2
	}

	return -p.InsuranceBet
}
