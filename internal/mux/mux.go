package mux

import (
	"context"
	"net/http"
	"strings"

	"tarneeb-server/internal/jwt"
	"tarneeb-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxTicketKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss

	// store for testing purposes
	ticketRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	this.ticketRouter = this.Router.NewRoute().Subrouter()
	this.ticketRouter.Use(this.ticketMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodPost).Path("/table/seat").Handler(this.postTableSeat())
		r.Methods(http.MethodGet).Path("/history").Handler(this.getHistory())
	}

	// requires a seat ticket
	{
		r := this.ticketRouter
		r.Methods(http.MethodGet).Path("/table/ws").Handler(this.getTableWS())
	}

	return this
}

// ticketMiddleware accepts the ticket as a query parameter, since browsers cannot set headers on a websocket
func (m *Mux) ticketMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signed := r.FormValue("ticket")
		if signed == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			signed = authHeader[1]
		}

		ticket, err := jwt.ValidTicket(signed)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTicketKey, ticket)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
