package mux

import (
	"errors"
	"net/http"

	"blackjack-server/internal/config"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/room"
)

type seatPayload struct {
	Name string `json:"name"`
	Bet  int    `json:"bet"`
}

type postGamePayload struct {
	Players []seatPayload `json:"players"`
}

type gameResponse struct {
	GameID string `json:"gameId"`
	*blackjack.GameState
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		seats := make([]blackjack.Seat, len(pp.Players))
		for i, p := range pp.Players {
			if p.Name == "" {
				writeJSONError(w, http.StatusBadRequest, errors.New("player name must not be empty"))
				return
			}

			seats[i] = blackjack.Seat{Name: p.Name, Bet: p.Bet}
		}

		opts := blackjack.DefaultOptions()
		opts.StartingBalance = config.Instance().Blackjack.StartingBalance

		table, err := m.casino.CreateTable(seats, opts)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, gameResponse{
			GameID:    table.UUID,
			GameState: table.State(),
		})
	}
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := tableFromContext(r)
		writeJSON(w, http.StatusOK, gameResponse{
			GameID:    table.UUID,
			GameState: table.State(),
		})
	}
}

type actionPayload struct {
	PlayerIndex int `json:"playerIndex"`
	HandIndex   int `json:"handIndex"`
}

// postAction returns a handler for the hit/stand/double/split actions,
// which all share the same request shape
func (m *Mux) postAction(action func(t *room.Table, playerIndex, handIndex int) (*blackjack.GameState, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ap actionPayload
		if !decodeRequest(w, r, &ap) {
			return
		}

		table := tableFromContext(r)
		state, err := action(table, ap.PlayerIndex, ap.HandIndex)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, gameResponse{
			GameID:    table.UUID,
			GameState: state,
		})
	}
}

type insurancePayload struct {
	PlayerIndex int `json:"playerIndex"`
	Amount      int `json:"amount"`
}

func (m *Mux) postInsurance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ip insurancePayload
		if !decodeRequest(w, r, &ip) {
			return
		}

		table := tableFromContext(r)
		state, err := table.PlaceInsurance(ip.PlayerIndex, ip.Amount)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, gameResponse{
			GameID:    table.UUID,
			GameState: state,
		})
	}
}

type resolveResponse struct {
	GameID     string           `json:"gameId"`
	Settlement *room.Settlement `json:"settlement"`
	*blackjack.GameState
}

func (m *Mux) postResolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := tableFromContext(r)

		settlement, err := table.Settle()
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resolveResponse{
			GameID:     table.UUID,
			Settlement: settlement,
			GameState:  table.State(),
		})
	}
}
