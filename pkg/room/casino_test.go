package room

import (
	"testing"

	"blackjack-server/pkg/blackjack"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasino_CreateTable(t *testing.T) {
	a := assert.New(t)

	casino := NewCasino(logrus.StandardLogger(), 0)

	table, err := casino.CreateTable([]blackjack.Seat{{Name: "alice", Bet: 100}}, blackjack.Options{})
	require.NoError(t, err)
	a.NotEmpty(table.UUID)

	found, err := casino.Table(table.UUID)
	a.NoError(err)
	a.Equal(table, found)

	_, err = casino.Table("e7c9b6a1-0000-0000-0000-000000000000")
	a.Equal(ErrTableNotFound, err)
}

func TestCasino_CreateTable_InvalidSeats(t *testing.T) {
	a := assert.New(t)

	casino := NewCasino(logrus.StandardLogger(), 0)

	table, err := casino.CreateTable([]blackjack.Seat{}, blackjack.Options{})
	a.Nil(table)
	a.Equal(blackjack.ErrNoPlayers, err)
}

func TestTable_Actions(t *testing.T) {
	a := assert.New(t)

	table := testTable(t, 0)

	state := table.State()
	a.Equal(2, len(state.Players))

	// the dealer's hole card stays hidden before settlement
	a.Equal(1, len(state.DealerHand))

	// find an actionable hand and stand it
	for i, p := range state.Players {
		if p.Hands[0].IsFinished {
			continue
		}

		next, err := table.Stand(i, 0)
		a.NoError(err)
		a.True(next.Players[i].Hands[0].IsFinished)
	}

	a.True(table.State().GameOver)
}
