package blackjack

import (
	"blackjack-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Seat describes one player joining a new game
type Seat struct {
	Name string
	Bet  int
}

// Game is a single blackjack session: one deck, one dealer hand, and an
// ordered set of players acting in seat order.
type Game struct {
	options       Options
	deck          *deck.Deck
	players       []*Player
	dealerHand    *Hand
	currentPlayer *int

	logger logrus.FieldLogger
}

// NewGame deals a new blackjack game. Two cards go to each player's
// primary hand and the dealer, alternating a card at a time. Natural
// blackjacks are finished immediately so a two-card 21 never waits for a
// manual stand.
func NewGame(logger logrus.FieldLogger, seats []Seat, opts Options) (*Game, error) {
	if len(seats) == 0 {
		return nil, ErrNoPlayers
	}

	if opts.StartingBalance <= 0 {
		opts.StartingBalance = DefaultOptions().StartingBalance
	}

	players := make([]*Player, len(seats))
	for i, seat := range seats {
		if seat.Bet < 0 {
			return nil, ErrInvalidBet
		}

		players[i] = newPlayer(seat.Name, seat.Bet, opts.StartingBalance)
	}

	d := deck.New()
	d.Shuffle(opts.Seed)

	g := &Game{
		options:    opts,
		deck:       d,
		players:    players,
		dealerHand: NewHand(),
		logger:     logger,
	}

	if err := g.initialDeal(); err != nil {
		return nil, err
	}

	g.autoFinishNaturals()
	g.advanceTurn()

	g.logger.WithField("players", len(players)).Debug("game dealt")

	return g, nil
}

func (g *Game) initialDeal() error {
	for i := 0; i < 2; i++ {
		for _, p := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}
			p.Hands[0].Hand.Add(card)
		}

		card, err := g.deck.Draw()
		if err != nil {
			return err
		}
		g.dealerHand.Add(card)
	}

	return nil
}

func (g *Game) autoFinishNaturals() {
	for _, p := range g.players {
		for _, bh := range p.Hands {
			if bh.Hand.IsBlackjack() {
				bh.finish(TurnBlackjack)
			}
		}
	}
}

// advanceTurn moves the turn cursor past players whose hands are all
// finished. When no player remains the cursor becomes undefined and the
// turn phase is over.
func (g *Game) advanceTurn() {
	idx := 0
	if g.currentPlayer != nil {
		idx = *g.currentPlayer
	}

	for ; idx < len(g.players); idx++ {
		if !g.players[idx].AllHandsFinished() {
			cur := idx
			g.currentPlayer = &cur
			return
		}
	}

	g.currentPlayer = nil
}

// CurrentPlayer returns the index of the player whose turn it is. The
// second return value is false once every hand of every player is
// finished.
func (g *Game) CurrentPlayer() (int, bool) {
	if g.currentPlayer == nil {
		return 0, false
	}

	return *g.currentPlayer, true
}

// GameOver returns true once every hand of every player is finished
func (g *Game) GameOver() bool {
	for _, p := range g.players {
		if !p.AllHandsFinished() {
			return false
		}
	}

	return true
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	return g.players
}

// DealerHand returns the dealer's hand
func (g *Game) DealerHand() *Hand {
	return g.dealerHand
}

// DealerHasBlackjack returns true if the dealer was dealt a natural
func (g *Game) DealerHasBlackjack() bool {
	return g.dealerHand.IsBlackjack()
}

// InsuranceAvailable returns true if the dealer's up-card is an ace
func (g *Game) InsuranceAvailable() bool {
	return insuranceAvailable(g.dealerHand)
}

func (g *Game) player(playerIndex int) (*Player, error) {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return nil, ErrPlayerNotFound
	}

	return g.players[playerIndex], nil
}

func (g *Game) betHand(playerIndex, handIndex int) (*BetHand, error) {
	p, err := g.player(playerIndex)
	if err != nil {
		return nil, err
	}

	if handIndex < 0 || handIndex >= len(p.Hands) {
		return nil, ErrHandNotFound
	}

	return p.Hands[handIndex], nil
}

// Hit draws one card into the hand and advances the turn cursor
func (g *Game) Hit(playerIndex, handIndex int) (TurnResult, error) {
	bh, err := g.betHand(playerIndex, handIndex)
	if err != nil {
		return 0, err
	}

	result, err := hit(bh, g.deck)
	if err != nil {
		return 0, err
	}

	g.advanceTurn()
	return result, nil
}

// Stand finishes the hand and advances the turn cursor
func (g *Game) Stand(playerIndex, handIndex int) (TurnResult, error) {
	bh, err := g.betHand(playerIndex, handIndex)
	if err != nil {
		return 0, err
	}

	result, err := stand(bh)
	if err != nil {
		return 0, err
	}

	g.advanceTurn()
	return result, nil
}

// Double doubles the wager, draws exactly one card, finishes the hand,
// and advances the turn cursor
func (g *Game) Double(playerIndex, handIndex int) (TurnResult, error) {
	bh, err := g.betHand(playerIndex, handIndex)
	if err != nil {
		return 0, err
	}

	result, err := double(bh, g.deck)
	if err != nil {
		return 0, err
	}

	g.advanceTurn()
	return result, nil
}

// Split divides a two-card equal-value hand into two hands carrying the
// original wager. Each new hand receives one fresh card before it
// becomes actionable. The split hands are appended at the end of the
// player's hand list.
func (g *Game) Split(playerIndex, handIndex int) error {
	p, err := g.player(playerIndex)
	if err != nil {
		return err
	}

	bh, err := g.betHand(playerIndex, handIndex)
	if err != nil {
		return err
	}

	if bh.IsFinished() {
		return ErrHandFinished
	}

	h1, h2, err := splitHand(bh)
	if err != nil {
		return err
	}

	for _, nh := range []*BetHand{h1, h2} {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}
		nh.Hand.Add(card)
	}

	hands := make([]*BetHand, 0, len(p.Hands)+1)
	hands = append(hands, p.Hands[:handIndex]...)
	hands = append(hands, p.Hands[handIndex+1:]...)
	hands = append(hands, h1, h2)
	p.Hands = hands

	g.advanceTurn()
	return nil
}

// PlaceInsurance sets the player's insurance wager against the dealer's
// hole card. Placing again overwrites the previous wager.
func (g *Game) PlaceInsurance(playerIndex, amount int) error {
	p, err := g.player(playerIndex)
	if err != nil {
		return err
	}

	return placeInsurance(p, amount)
}

// PlayDealer runs the dealer's auto-play: draw until 17 or bust
func (g *Game) PlayDealer() error {
	return dealerPlay(g.dealerHand, g.deck)
}

// ResolveInsurance settles every player's insurance wager against the
// dealer's hand and applies the returned deltas to balances. The result
// is ordered by seat.
func (g *Game) ResolveInsurance() []int {
	dealerBlackjack := g.DealerHasBlackjack()

	payouts := make([]int, len(g.players))
	for i, p := range g.players {
		payout := resolveInsurance(p, dealerBlackjack)
		p.Balance += payout
		payouts[i] = payout
	}

	return payouts
}

// ResolveBets settles every bet hand against the dealer's hand and
// applies the payouts to balances. The outer slice is ordered by seat,
// the inner slice by hand.
func (g *Game) ResolveBets() [][]HandOutcome {
	results := make([][]HandOutcome, len(g.players))
	for i, p := range g.players {
		outcomes := make([]HandOutcome, len(p.Hands))
		for j, bh := range p.Hands {
			outcome := resolveHand(bh, g.dealerHand)
			p.Balance += outcome.Payout
			outcomes[j] = outcome
		}

		results[i] = outcomes
	}

	return results
}
