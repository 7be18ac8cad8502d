package room

import (
	"errors"

	"tarneeb-server/pkg/playable"
	"tarneeb-server/pkg/playable/tarneeb"
)

// seatResponse tells a client which seat it was given
type seatResponse struct {
	TableID string `json:"tableId"`
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	res := &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}

	var gameErr *tarneeb.GameError
	if errors.As(err, &gameErr) {
		res.Value = string(gameErr.Kind)
		res.Data = gameErr
	}

	return res
}

func newNotificationResponse(n tarneeb.Notification) *playable.Response {
	return &playable.Response{
		Key:  string(n.Kind),
		Data: n.Data,
	}
}
