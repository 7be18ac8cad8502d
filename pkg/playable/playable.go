package playable

import (
	"fmt"
	"time"

	"tarneeb-server/pkg/deck"

	"github.com/google/uuid"
)

// Playable is a game that can be played at a table
type Playable interface {
	// Action performs with a message from the player sitting at seat
	// If playerResponse is not null, that's the response sent directly to the client
	Action(seat int, message *PayloadIn) (playerResponse *Response, err error)

	// GetPlayerState returns the current state of the game for the seat
	// A negative seat returns the public state only
	GetPlayerState(seat int) (*Response, error)

	// Name returns the name of the game
	Name() string
}

// LogMessage is the format a game should send log messages in
// If Seats is empty, assume it's a general statement, otherwise the message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Seats   []int       `json:"seats"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Cards          []deck.Card    `json:"cards"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}

		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// NewLogMessage returns a new LogMessage about the seats, with optional cards
func NewLogMessage(seats []int, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	if len(seats) == 0 {
		seats = nil
	}

	if len(cards) == 0 {
		cards = nil
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
