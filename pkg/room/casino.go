// Package room keeps the in-memory blackjack sessions. A Casino owns the
// table store; each Table owns one game, serializes the actions against it,
// and guards settlement so it runs exactly once.
package room

import (
	"errors"
	"sync"
	"time"

	"blackjack-server/internal/rng"
	"blackjack-server/pkg/blackjack"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrTableNotFound is returned when a session id is unknown
var ErrTableNotFound = errors.New("table not found")

// DefaultSettleTimeout is how long a settlement call waits for a
// concurrent settlement before giving up
const DefaultSettleTimeout = time.Second * 5

// Casino is the arena for active blackjack tables, keyed by session id
type Casino struct {
	mu     sync.RWMutex
	tables map[string]*Table

	logger        logrus.FieldLogger
	rng           rng.Generator
	clock         quartz.Clock
	settleTimeout time.Duration
}

// NewCasino returns an empty casino
func NewCasino(logger logrus.FieldLogger, settleTimeout time.Duration) *Casino {
	if settleTimeout <= 0 {
		settleTimeout = DefaultSettleTimeout
	}

	return &Casino{
		tables:        make(map[string]*Table),
		logger:        logger,
		rng:           rng.Crypto{},
		clock:         quartz.NewReal(),
		settleTimeout: settleTimeout,
	}
}

// CreateTable deals a new game and registers it under a fresh session id
func (c *Casino) CreateTable(seats []blackjack.Seat, opts blackjack.Options) (*Table, error) {
	if opts.Seed == 0 {
		opts.Seed = c.rng.Seed()
	}

	id := uuid.New().String()
	logger := c.logger.WithField("table", id)

	game, err := blackjack.NewGame(logger, seats, opts)
	if err != nil {
		return nil, err
	}

	table := &Table{
		UUID:          id,
		game:          game,
		logger:        logger,
		clock:         c.clock,
		settleTimeout: c.settleTimeout,
		settleLock:    make(chan struct{}, 1),
		clients:       make(map[*Client]struct{}),
	}

	c.mu.Lock()
	c.tables[id] = table
	c.mu.Unlock()

	logger.WithField("players", len(seats)).Info("table created")

	return table, nil
}

// Table returns the table with the given session id
func (c *Casino) Table(id string) (*Table, error) {
	c.mu.RLock()
	table, ok := c.tables[id]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrTableNotFound
	}

	return table, nil
}
