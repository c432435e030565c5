package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHand(t *testing.T) {
	tests := []struct {
		name   string
		player string
		dealer string
		bet    int
		result Result
		payout int
	}{
		{
			name:   "player bust loses",
			player: "10c,9d,5h",
			dealer: "10s,7s",
			bet:    100,
			result: ResultLose,
			payout: -100,
		},
		{
			name:   "player bust loses even when dealer busts",
			player: "10c,9d,5h",
			dealer: "10s,6s,13h",
			bet:    100,
			result: ResultLose,
			payout: -100,
		},
		{
			name:   "dealer bust wins",
			player: "10c,8d",
			dealer: "10s,6s,13h",
			bet:    100,
			result: ResultWin,
			payout: 100,
		},
		{
			name:   "both blackjack pushes",
			player: "14c,13d",
			dealer: "14s,12s",
			bet:    100,
			result: ResultPush,
			payout: 0,
		},
		{
			name:   "player blackjack pays 3:2",
			player: "14c,13d",
			dealer: "10s,12s",
			bet:    100,
			result: ResultBlackjackWin,
			payout: 150,
		},
		{
			name:   "blackjack payout is floored",
			player: "14c,13d",
			dealer: "10s,12s",
			bet:    85,
			result: ResultBlackjackWin,
			payout: 127,
		},
		{
			name:   "player blackjack beats a three-card dealer 21",
			player: "14c,13d",
			dealer: "7s,7h,7d",
			bet:    80,
			result: ResultBlackjackWin,
			payout: 120,
		},
		{
			name:   "dealer blackjack beats a three-card player 21",
			player: "7s,7h,7d",
			dealer: "14c,13d",
			bet:    100,
			result: ResultLose,
			payout: -100,
		},
		{
			name:   "higher value wins",
			player: "10c,9d",
			dealer: "10s,8s",
			bet:    100,
			result: ResultWin,
			payout: 100,
		},
		{
			name:   "lower value loses",
			player: "10c,7d",
			dealer: "10s,8s",
			bet:    100,
			result: ResultLose,
			payout: -100,
		},
		{
			name:   "equal values push",
			player: "10c,8d",
			dealer: "10s,8s",
			bet:    100,
			result: ResultPush,
			payout: 0,
		},
		{
			name:   "three-card 21 against a dealer 20 is a plain win",
			player: "7s,7h,7d",
			dealer: "10s,12s",
			bet:    100,
			result: ResultWin,
			payout: 100,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bh := betHandOf(test.player, test.bet)
			outcome := resolveHand(bh, handOf(test.dealer))

			assert.Equal(t, test.result, outcome.Result)
			assert.Equal(t, test.payout, outcome.Payout)
		})
	}
}
