package mux

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// getGameWS upgrades the connection and streams game state updates to
// the client after every action at the table
func (m *Mux) getGameWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := tableFromContext(r)

		conn, err := m.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Debug("could not upgrade connection")
			return
		}

		table.AddClient(conn)
	}
}
