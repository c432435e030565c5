package blackjack

import (
	"blackjack-server/pkg/deck"
)

// TurnResult is the outcome of a single player action on a bet hand
type TurnResult int

// turn results
const (
	TurnContinue TurnResult = iota
	TurnBust
	TurnBlackjack
	TurnStand
	TurnDouble
)

func (t TurnResult) String() string {
	switch t {
	case TurnContinue:
		return "continue"
	case TurnBust:
		return "bust"
	case TurnBlackjack:
		return "blackjack"
	case TurnStand:
		return "stand"
	case TurnDouble:
		return "double"
	default:
		return "unknown"
	}
}

// hit draws one card into the hand. A two-card 21 finishes as a blackjack,
// a bust finishes the hand, anything else leaves the hand active.
func hit(bh *BetHand, d *deck.Deck) (TurnResult, error) {
	if bh.IsFinished() {
		return 0, ErrHandFinished
	}

	card, err := d.Draw()
	if err != nil {
		return 0, err
	}
	bh.Hand.Add(card)

	if bh.Hand.IsBlackjack() {
		bh.finish(TurnBlackjack)
		return TurnBlackjack, nil
	}

	if bh.Hand.IsBust() {
		bh.finish(TurnBust)
		return TurnBust, nil
	}

	return TurnContinue, nil
}

// stand finishes the hand without drawing
func stand(bh *BetHand) (TurnResult, error) {
	if bh.IsFinished() {
		return 0, ErrHandFinished
	}

	bh.finish(TurnStand)
	return TurnStand, nil
}

// double doubles the wager, draws exactly one card, and finishes the hand.
// Only a two-card hand that has not already been doubled is eligible.
func double(bh *BetHand, d *deck.Deck) (TurnResult, error) {
	if bh.IsFinished() {
		return 0, ErrHandFinished
	}

	if len(bh.Hand.Cards) != 2 || bh.Doubled {
		return 0, ErrCannotDouble
	}

	card, err := d.Draw()
	if err != nil {
		return 0, err
	}

	bh.Bet *= 2
	bh.Doubled = true
	bh.Hand.Add(card)

	if bh.Hand.IsBust() {
		bh.finish(TurnBust)
		return TurnBust, nil
	}

	bh.finish(TurnDouble)
	return TurnDouble, nil
}

// dealerPlay draws into the dealer hand until the total reaches 17.
// A soft 17 is a stop condition: the value engine already counts the
// ace as 11, so the dealer stands on all 17s.
func dealerPlay(h *Hand, d *deck.Deck) error {
	for h.Value() < 17 {
		card, err := d.Draw()
		if err != nil {
			return err
		}

		h.Add(card)
	}

	return nil
}
