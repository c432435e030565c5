package blackjack

// Player is an individual at the blackjack table
type Player struct {
	Name         string
	Balance      int
	Hands        []*BetHand
	InsuranceBet int
}

// newPlayer returns a player with a single empty bet hand
func newPlayer(name string, bet, balance int) *Player {
	return &Player{
		Name:    name,
		Balance: balance,
		Hands:   []*BetHand{NewBetHand(bet)},
	}
}

// AllHandsFinished returns true once every one of the player's hands has
// reached a terminal state
func (p *Player) AllHandsFinished() bool {
	for _, bh := range p.Hands {
		if !bh.IsFinished() {
			return false
		}
	}

	return true
}
