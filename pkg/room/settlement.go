package room

import (
	"errors"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/deck"
)

// ErrSettlementInProgress is returned when a settlement call times out
// waiting for a concurrent settlement. The caller can retry.
var ErrSettlementInProgress = errors.New("settlement in progress, retry later")

// HandResult is the settled outcome of one bet hand
type HandResult struct {
	HandIndex   int              `json:"handIndex"`
	Result      blackjack.Result `json:"result"`
	Payout      int              `json:"payout"`
	Bet         int              `json:"bet"`
	HandValue   int              `json:"handValue"`
	IsBlackjack bool             `json:"isBlackjack"`
	IsBust      bool             `json:"isBust"`
}

// PlayerSettlement is the settled outcome for one player
type PlayerSettlement struct {
	Name            string        `json:"name"`
	FinalBalance    int           `json:"finalBalance"`
	InsurancePayout int           `json:"insurancePayout"`
	TotalPayout     int           `json:"totalPayout"`
	HandResults     []*HandResult `json:"handResults"`
}

// Settlement is the terminal result of a session: the dealer's revealed
// hand and every player's payouts
type Settlement struct {
	Players     []*PlayerSettlement `json:"players"`
	DealerHand  []*deck.Card        `json:"dealerHand"`
	DealerValue int                 `json:"dealerValue"`
}

// Clone returns a deep copy of the settlement. The cached settlement is
// canonical; every caller gets an independent copy so nobody can corrupt
// it.
func (s *Settlement) Clone() *Settlement {
	players := make([]*PlayerSettlement, len(s.Players))
	for i, p := range s.Players {
		results := make([]*HandResult, len(p.HandResults))
		for j, hr := range p.HandResults {
			cp := *hr
			results[j] = &cp
		}

		pp := *p
		pp.HandResults = results
		players[i] = &pp
	}

	dealerHand := make([]*deck.Card, len(s.DealerHand))
	for i, c := range s.DealerHand {
		dealerHand[i] = c.Clone()
	}

	return &Settlement{
		Players:     players,
		DealerHand:  dealerHand,
		DealerValue: s.DealerValue,
	}
}

func (t *Table) cachedSettlement() *Settlement {
	t.resultMu.Lock()
	defer t.resultMu.Unlock()

	return t.settlement
}

// Settle runs dealer auto-play, insurance settlement, and payout
// settlement exactly once for the session. Every caller, including late
// and duplicate ones, observes the same result. If another caller holds
// the settlement lock past the timeout, ErrSettlementInProgress is
// returned and the caller may retry.
func (t *Table) Settle() (*Settlement, error) {
	if s := t.cachedSettlement(); s != nil {
		return s.Clone(), nil
	}

	timedOut := make(chan struct{})
	timer := t.clock.AfterFunc(t.settleTimeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case t.settleLock <- struct{}{}:
	case <-timedOut:
		// the winner may have finished while we waited
		if s := t.cachedSettlement(); s != nil {
			return s.Clone(), nil
		}

		return nil, ErrSettlementInProgress
	}
	defer func() { <-t.settleLock }()

	// another caller may have settled before we acquired the lock
	if s := t.cachedSettlement(); s != nil {
		return s.Clone(), nil
	}

	settlement, err := t.settle()
	if err != nil {
		return nil, err
	}

	t.logger.Info("table settled")
	t.Broadcast(t.State())

	return settlement.Clone(), nil
}

// settle performs the settlement and stores the canonical result while
// still holding the table lock, so no player action can interleave with
// a settled game
func (t *Table) settle() (*Settlement, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.game.PlayDealer(); err != nil {
		return nil, err
	}

	insurance := t.game.ResolveInsurance()
	outcomes := t.game.ResolveBets()

	players := make([]*PlayerSettlement, len(t.game.Players()))
	for i, p := range t.game.Players() {
		results := make([]*HandResult, len(p.Hands))
		total := insurance[i]

		for j, bh := range p.Hands {
			outcome := outcomes[i][j]
			total += outcome.Payout

			results[j] = &HandResult{
				HandIndex:   j,
				Result:      outcome.Result,
				Payout:      outcome.Payout,
				Bet:         bh.Bet,
				HandValue:   bh.Hand.Value(),
				IsBlackjack: bh.Hand.IsBlackjack(),
				IsBust:      bh.Hand.IsBust(),
			}
		}

		players[i] = &PlayerSettlement{
			Name:            p.Name,
			FinalBalance:    p.Balance,
			InsurancePayout: insurance[i],
			TotalPayout:     total,
			HandResults:     results,
		}
	}

	dealer := t.game.DealerHand()
	dealerHand := make([]*deck.Card, len(dealer.Cards))
	for i, c := range dealer.Cards {
		dealerHand[i] = c.Clone()
	}

	settlement := &Settlement{
		Players:     players,
		DealerHand:  dealerHand,
		DealerValue: dealer.Value(),
	}

	t.resultMu.Lock()
	t.settlement = settlement
	t.resultMu.Unlock()

	return settlement, nil
}
