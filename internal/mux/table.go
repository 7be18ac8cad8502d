package mux

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"tarneeb-server/internal/jwt"
	"tarneeb-server/pkg/history"
	"tarneeb-server/pkg/playable/tarneeb"
)

const maxNameLength = 40

type getTableResponse struct {
	TableID string `json:"tableId"`
	tarneeb.GameState
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := m.pitBoss.Dealer()
		writeJSON(w, http.StatusOK, getTableResponse{
			TableID:   dealer.ID(),
			GameState: dealer.State(),
		})
	}
}

type postTableSeatPayload struct {
	Name string `json:"name"`
}

type postTableSeatResponse struct {
	Ticket  string    `json:"ticket"`
	Expires time.Time `json:"expires"`
}

// postTableSeat issues a seat ticket. The seat itself is taken when the websocket connects
// An empty name is replaced with a random one
func (m *Mux) postTableSeat() http.HandlerFunc {
	var wordChar = regexp.MustCompile(`\w`)
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableSeatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		name := strings.TrimSpace(pp.Name)
		if name != "" && (!wordChar.MatchString(name) || len(name) > maxNameLength) {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 1-40 characters"))
			return
		}

		ticket, expires, err := jwt.Sign(name)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, postTableSeatResponse{
			Ticket:  ticket,
			Expires: expires,
		})
	}
}

func (m *Mux) getHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rounds, err := m.pitBoss.Dealer().Rounds(r.Context(), start, rows)
		if err != nil {
			if err == history.ErrNotRecording {
				writeJSONError(w, http.StatusNotFound, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}

			return
		}

		writeJSON(w, http.StatusOK, rounds)
	}
}
