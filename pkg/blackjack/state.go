package blackjack

import (
	"blackjack-server/pkg/deck"
)

// HandState is the visible state of a single bet hand
type HandState struct {
	Cards       []*deck.Card `json:"cards"`
	Value       int          `json:"value"`
	IsBlackjack bool         `json:"isBlackjack"`
	IsBust      bool         `json:"isBust"`
	Bet         int          `json:"bet"`
	Doubled     bool         `json:"doubled"`
	IsFinished  bool         `json:"isFinished"`
}

// PlayerState is the visible state of one player
type PlayerState struct {
	Name         string       `json:"name"`
	Balance      int          `json:"balance"`
	Hands        []*HandState `json:"hands"`
	InsuranceBet int          `json:"insuranceBet"`
}

// GameState is the overall game state
// This is safe for all players to see: the dealer's hole card is only
// included once the session has been resolved.
type GameState struct {
	Players []*PlayerState `json:"players"`

	// DealerHand holds the up-card only until the session resolves
	DealerHand  []*deck.Card `json:"dealerHand"`
	DealerValue int          `json:"dealerValue"`

	// CurrentPlayer is nil once every hand of every player is finished
	CurrentPlayer *int `json:"currentPlayer"`

	GameOver           bool `json:"gameOver"`
	InsuranceAvailable bool `json:"insuranceAvailable"`
}

func newHandState(bh *BetHand) *HandState {
	return &HandState{
		Cards:       append([]*deck.Card{}, bh.Hand.Cards...),
		Value:       bh.Hand.Value(),
		IsBlackjack: bh.Hand.IsBlackjack(),
		IsBust:      bh.Hand.IsBust(),
		Bet:         bh.Bet,
		Doubled:     bh.Doubled,
		IsFinished:  bh.IsFinished(),
	}
}

// State returns the visible game state. The full dealer hand is included
// only when showDealer is true; before that only the up-card and its
// value are exposed.
func (g *Game) State(showDealer bool) *GameState {
	players := make([]*PlayerState, len(g.players))
	for i, p := range g.players {
		hands := make([]*HandState, len(p.Hands))
		for j, bh := range p.Hands {
			hands[j] = newHandState(bh)
		}

		players[i] = &PlayerState{
			Name:         p.Name,
			Balance:      p.Balance,
			Hands:        hands,
			InsuranceBet: p.InsuranceBet,
		}
	}

	dealerCards := g.dealerHand.Cards
	dealerValue := g.dealerHand.Value()
	if !showDealer {
		dealerCards = dealerCards[:1]
		dealerValue = dealerCards[0].Value()
	}

	var current *int
	if idx, ok := g.CurrentPlayer(); ok {
		current = &idx
	}

	return &GameState{
		Players:            players,
		DealerHand:         append([]*deck.Card{}, dealerCards...),
		DealerValue:        dealerValue,
		CurrentPlayer:      current,
		GameOver:           g.GameOver(),
		InsuranceAvailable: g.InsuranceAvailable(),
	}
}
