package playable

import (
	"encoding/json"
	"testing"
	"time"

	"tarneeb-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestNewLogMessage(t *testing.T) {
	before := time.Now()
	lm := NewLogMessage(nil, []deck.Card{}, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.Seats)
	assert.False(t, lm.Time.Before(before))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestNewLogMessage_withSeatsAndCards(t *testing.T) {
	card := deck.Card{Rank: 14, Suit: deck.Spades}
	lm := NewLogMessage([]int{0, 2}, []deck.Card{card}, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int{0, 2}, lm.Seats)
	assert.Equal(t, []deck.Card{card}, lm.Cards)
	assert.NotEqual(t, lm.UUID, NewLogMessage(nil, nil, "test").UUID)
}

func TestOK(t *testing.T) {
	assert.Equal(t, &Response{Key: "status", Value: "OK"}, OK())
	assert.Equal(t, "abc", OK("abc").Context)
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	a.NoError(json.Unmarshal([]byte(`{"number":7,"half":6.5,"suit":"spades"}`), &data))

	val, ok := data.GetInt("number")
	a.True(ok)
	a.Equal(7, val)

	_, ok = data.GetInt("half")
	a.False(ok)

	_, ok = data.GetInt("suit")
	a.False(ok)

	_, ok = data.GetInt("missing")
	a.False(ok)

	s, ok := data.GetString("suit")
	a.True(ok)
	a.Equal("spades", s)
}

func TestPayloadIn_cards(t *testing.T) {
	var msg PayloadIn
	assert.NoError(t, json.Unmarshal([]byte(`{"action":"playCard","cards":[{"rank":12,"suit":"hearts"}],"context":"x"}`), &msg))
	assert.Equal(t, "playCard", msg.Action)
	assert.Equal(t, 1, len(msg.Cards))
	assert.Equal(t, "Q♥", msg.Cards[0].String())
}
