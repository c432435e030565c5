package blackjack

// Result is the outcome of a bet hand against the dealer
type Result string

// hand results
const (
	ResultWin          Result = "win"
	ResultLose         Result = "lose"
	ResultPush         Result = "push"
	ResultBlackjackWin Result = "blackjack_win"
)

// HandOutcome is the settled outcome for one bet hand. Payout is the net
// change applied to the player's balance: negative for losses, zero for
// a push.
type HandOutcome struct {
	Result Result `json:"result"`
	Payout int    `json:"payout"`
}

// resolveHand settles one bet hand against the dealer hand. The rules are
// checked in a strict order:
//
//  1. player bust loses, even if the dealer also busts
//  2. dealer bust wins
//  3. naturals outrank other 21s: both push, a lone player natural pays
//     3:2 (floored), a lone dealer natural wins
//  4. otherwise compare totals
func resolveHand(bh *BetHand, dealer *Hand) HandOutcome {
	hand := bh.Hand
	bet := bh.Bet

	if hand.IsBust() {
		return HandOutcome{ResultLose, -bet}
	}

	if dealer.IsBust() {
		return HandOutcome{ResultWin, bet}
	}

	playerBlackjack := hand.IsBlackjack()
	dealerBlackjack := dealer.IsBlackjack()

	if playerBlackjack || dealerBlackjack {
		if playerBlackjack && dealerBlackjack {
			return HandOutcome{ResultPush, 0}
		}

		if playerBlackjack {
			return HandOutcome{ResultBlackjackWin, bet * 3 / 2}
		}

		return HandOutcome{ResultLose, -bet}
	}

	if hand.Value() > dealer.Value() {
		return HandOutcome{ResultWin, bet}
	}

	if hand.Value() < dealer.Value() {
		return HandOutcome{ResultLose, -bet}
	}

	return HandOutcome{ResultPush, 0}
}
