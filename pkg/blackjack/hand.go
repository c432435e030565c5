package blackjack

import (
	"blackjack-server/pkg/deck"
)

// Hand is an ordered set of cards belonging to one party at the table
type Hand struct {
	Cards []*deck.Card `json:"cards"`
}

// NewHand returns a hand with the given cards
func NewHand(cards ...*deck.Card) *Hand {
	return &Hand{Cards: cards}
}

// Add appends a card to the hand
func (h *Hand) Add(card *deck.Card) {
	h.Cards = append(h.Cards, card)
}

// Value returns the blackjack total of the hand.
// Aces start at 11 and are downgraded to 1 one at a time while the
// total exceeds 21. The result is the best total <= 21 if one exists,
// otherwise the lowest achievable bust total.
func (h *Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		total += c.Value()
		if c.Value() == 11 {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack returns true for a natural: exactly two cards totaling 21.
// A 21 made with three or more cards is not a blackjack.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// IsBust returns true if the hand value exceeds 21
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// UpCard returns the first card dealt to the hand, or nil if the hand is empty
func (h *Hand) UpCard() *deck.Card {
	if len(h.Cards) == 0 {
		return nil
	}

	return h.Cards[0]
}

func (h *Hand) String() string {
	return deck.CardsToString(h.Cards)
}

// handStatus is the state of a bet hand in the turn state machine
type handStatus int

const (
	statusActive handStatus = iota
	statusFinished
)

// BetHand is a hand paired with a wager. It is the unit a player acts on.
type BetHand struct {
	Hand    *Hand
	Bet     int
	Doubled bool

	status       handStatus
	finishReason TurnResult
}

// NewBetHand returns an empty, active bet hand with the given wager
func NewBetHand(bet int) *BetHand {
	return &BetHand{
		Hand: NewHand(),
		Bet:  bet,
	}
}

// IsFinished returns true once the hand has reached a terminal state
func (bh *BetHand) IsFinished() bool {
	return bh.status == statusFinished
}

// FinishReason returns how the hand finished. The second return value is
// false while the hand is still active.
func (bh *BetHand) FinishReason() (TurnResult, bool) {
	if bh.status != statusFinished {
		return 0, false
	}

	return bh.finishReason, true
}

func (bh *BetHand) finish(reason TurnResult) {
	bh.status = statusFinished
	bh.finishReason = reason
}
