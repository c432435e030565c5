package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsuranceAvailable(t *testing.T) {
	a := assert.New(t)

	a.True(insuranceAvailable(handOf("14s,7c")))
	a.False(insuranceAvailable(handOf("7c,14s"))) // hole card ace does not count
	a.False(insuranceAvailable(handOf("13c,12d")))
	a.False(insuranceAvailable(NewHand()))
}

func TestPlaceInsurance(t *testing.T) {
	a := assert.New(t)

	p := newPlayer("alice", 100, 1000)

	a.NoError(placeInsurance(p, 50))
	a.Equal(50, p.InsuranceBet)

	// placing again overwrites, it does not accumulate
	a.NoError(placeInsurance(p, 20))
	a.Equal(20, p.InsuranceBet)

	a.NoError(placeInsurance(p, 0))
	a.Equal(0, p.InsuranceBet)

	a.Equal(ErrInvalidInsurance, placeInsurance(p, -1))
	a.Equal(ErrInvalidInsurance, placeInsurance(p, 51))

	// odd bet: floor(101/2) = 50
	p = newPlayer("bob", 101, 1000)
	a.NoError(placeInsurance(p, 50))
	a.Equal(ErrInvalidInsurance, placeInsurance(p, 51))
}

func TestResolveInsurance(t *testing.T) {
	a := assert.New(t)

	p := newPlayer("alice", 100, 1000)

	// no wager is a no-op
	a.Equal(0, resolveInsurance(p, true))
	a.Equal(0, resolveInsurance(p, false))

	p.InsuranceBet = 50
	a.Equal(100, resolveInsurance(p, true))
	a.Equal(-50, resolveInsurance(p, false))
}
