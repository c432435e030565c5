package room

import (
	"errors"
	"sync"
	"time"

	"blackjack-server/pkg/blackjack"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// ErrTableSettled is returned when a player action arrives after the
// session has been settled
var ErrTableSettled = errors.New("table has already been settled")

// Table is one active blackjack session. All player actions are
// serialized by the table's own mutex; settlement has its own guard so
// it runs exactly once no matter how many callers race on it.
type Table struct {
	// UUID is the session id
	UUID string

	mu   sync.Mutex
	game *blackjack.Game

	// settleLock is a try-acquire lock for the settlement path
	settleLock chan struct{}
	resultMu   sync.Mutex
	settlement *Settlement

	clientMu sync.Mutex
	clients  map[*Client]struct{}

	logger        logrus.FieldLogger
	clock         quartz.Clock
	settleTimeout time.Duration
}

// State returns the current visible game state
func (t *Table) State() *blackjack.GameState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.State(t.isSettled())
}

func (t *Table) isSettled() bool {
	t.resultMu.Lock()
	defer t.resultMu.Unlock()

	return t.settlement != nil
}

// action runs fn under the table lock and broadcasts the resulting state
func (t *Table) action(fn func(g *blackjack.Game) error) (*blackjack.GameState, error) {
	t.mu.Lock()
	if t.isSettled() {
		t.mu.Unlock()
		return nil, ErrTableSettled
	}

	err := fn(t.game)
	state := t.game.State(false)
	t.mu.Unlock()

	if err != nil {
		return nil, err
	}

	t.Broadcast(state)
	return state, nil
}

// Hit draws a card into the given hand
func (t *Table) Hit(playerIndex, handIndex int) (*blackjack.GameState, error) {
	return t.action(func(g *blackjack.Game) error {
		result, err := g.Hit(playerIndex, handIndex)
		if err != nil {
			return err
		}

		t.logger.WithFields(logrus.Fields{
			"player": playerIndex,
			"hand":   handIndex,
			"result": result.String(),
		}).Debug("hit")
		return nil
	})
}

// Stand finishes the given hand
func (t *Table) Stand(playerIndex, handIndex int) (*blackjack.GameState, error) {
	return t.action(func(g *blackjack.Game) error {
		_, err := g.Stand(playerIndex, handIndex)
		return err
	})
}

// Double doubles down on the given hand
func (t *Table) Double(playerIndex, handIndex int) (*blackjack.GameState, error) {
	return t.action(func(g *blackjack.Game) error {
		result, err := g.Double(playerIndex, handIndex)
		if err != nil {
			return err
		}

		t.logger.WithFields(logrus.Fields{
			"player": playerIndex,
			"hand":   handIndex,
			"result": result.String(),
		}).Debug("double down")
		return nil
	})
}

// Split splits the given hand into two
func (t *Table) Split(playerIndex, handIndex int) (*blackjack.GameState, error) {
	return t.action(func(g *blackjack.Game) error {
		return g.Split(playerIndex, handIndex)
	})
}

// PlaceInsurance sets the player's insurance wager
func (t *Table) PlaceInsurance(playerIndex, amount int) (*blackjack.GameState, error) {
	return t.action(func(g *blackjack.Game) error {
		return g.PlaceInsurance(playerIndex, amount)
	})
}
