package blackjack

import "errors"

// ErrNoPlayers is returned when a game is created with an empty player list
var ErrNoPlayers = errors.New("at least one player is required")

// ErrInvalidBet is returned when a starting bet is negative
var ErrInvalidBet = errors.New("bet cannot be negative")

// ErrPlayerNotFound is returned when a player index is out of range
var ErrPlayerNotFound = errors.New("player not found")

// ErrHandNotFound is returned when a hand index is out of range
var ErrHandNotFound = errors.New("hand not found")

// ErrHandFinished is returned when an action is attempted on a finished hand
var ErrHandFinished = errors.New("hand is already finished")

// ErrCannotDouble is returned when a hand is not eligible for a double down
var ErrCannotDouble = errors.New("hand cannot be doubled")

// ErrCannotSplit is returned when a hand is not eligible for a split
var ErrCannotSplit = errors.New("hand cannot be split")

// ErrInvalidInsurance is returned when an insurance amount is outside [0, bet/2]
var ErrInvalidInsurance = errors.New("invalid insurance amount")
