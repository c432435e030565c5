package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanSplit(t *testing.T) {
	a := assert.New(t)

	a.True(CanSplit(betHandOf("8c,8d", 50)))

	// rank does not matter, value does
	a.True(CanSplit(betHandOf("13c,12d", 50)))
	a.True(CanSplit(betHandOf("10c,11d", 50)))

	a.False(CanSplit(betHandOf("8c,9d", 50)))
	a.False(CanSplit(betHandOf("8c", 50)))
	a.False(CanSplit(betHandOf("8c,8d,8h", 50)))
}

func TestSplitHand(t *testing.T) {
	a := assert.New(t)

	bh := betHandOf("8c,8d", 50)
	h1, h2, err := splitHand(bh)
	a.NoError(err)

	a.Equal(1, len(h1.Hand.Cards))
	a.Equal(1, len(h2.Hand.Cards))
	a.Equal("8c", h1.Hand.String())
	a.Equal("8d", h2.Hand.String())

	// each half carries the original wager, not doubled, not finished
	a.Equal(50, h1.Bet)
	a.Equal(50, h2.Bet)
	a.False(h1.Doubled)
	a.False(h1.IsFinished())
	a.False(h2.IsFinished())

	_, _, err = splitHand(betHandOf("8c,9d", 50))
	a.Equal(ErrCannotSplit, err)
}
