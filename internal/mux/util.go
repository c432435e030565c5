package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/room"

	"github.com/sirupsen/logrus"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeGameError maps a game or room error to an HTTP status
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, room.ErrTableNotFound),
		errors.Is(err, blackjack.ErrPlayerNotFound),
		errors.Is(err, blackjack.ErrHandNotFound):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.Is(err, room.ErrSettlementInProgress):
		writeJSONError(w, http.StatusConflict, err)
	case errors.Is(err, room.ErrTableSettled),
		errors.Is(err, blackjack.ErrNoPlayers),
		errors.Is(err, blackjack.ErrInvalidBet),
		errors.Is(err, blackjack.ErrHandFinished),
		errors.Is(err, blackjack.ErrCannotDouble),
		errors.Is(err, blackjack.ErrCannotSplit),
		errors.Is(err, blackjack.ErrInvalidInsurance):
		writeJSONError(w, http.StatusBadRequest, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
