package mux

import (
	"context"
	"net/http"

	"blackjack-server/pkg/room"

	gmux "github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type ctxKey int

const ctxTableKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	casino   *room.Casino
	upgrader websocket.Upgrader
}

// NewMux returns a new HTTP mux
func NewMux(version string, casino *room.Casino) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		casino:  casino,
		upgrader: websocket.Upgrader{
			// cross-origin policy is enforced by the outer CORS handler
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/api/game").Handler(this.postGame())

	gr := r.PathPrefix("/api/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.tableMiddleware)
	gr.Methods(http.MethodGet).Path("").Handler(this.getGame())
	gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameWS())
	gr.Methods(http.MethodPost).Path("/hit").Handler(this.postAction((*room.Table).Hit))
	gr.Methods(http.MethodPost).Path("/stand").Handler(this.postAction((*room.Table).Stand))
	gr.Methods(http.MethodPost).Path("/double").Handler(this.postAction((*room.Table).Double))
	gr.Methods(http.MethodPost).Path("/split").Handler(this.postAction((*room.Table).Split))
	gr.Methods(http.MethodPost).Path("/insurance").Handler(this.postInsurance())
	gr.Methods(http.MethodPost).Path("/resolve").Handler(this.postResolve())

	return this
}

// tableMiddleware resolves the {uuid} path variable to a table and
// stores it on the request context
func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table, err := m.casino.Table(gmux.Vars(r)["uuid"])
		if err != nil {
			writeGameError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxTableKey, table)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tableFromContext(r *http.Request) *room.Table {
	return r.Context().Value(ctxTableKey).(*room.Table)
}
