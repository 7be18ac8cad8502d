package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"tarneeb-server/pkg/history"
	"tarneeb-server/pkg/playable"
	"tarneeb-server/pkg/playable/tarneeb"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const notificationBuffer = 1024
const recordTimeout = time.Second * 5

// ErrNotSeated is sent to a client that sends a game action before it has a seat
var ErrNotSeated = errors.New("you are not seated at the table")

// Dealer is responsible for running the table
// It owns the engine and delivers its notifications to the connected clients
type Dealer struct {
	id       string
	logger   logrus.FieldLogger
	engine   *tarneeb.Engine
	recorder history.Recorder
	clients  map[*Client]bool
	lock     sync.RWMutex

	// logMessages must only be accessed from the run loop
	logMessages []*playable.LogMessage

	notifications chan tarneeb.Notification
	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(recorder history.Recorder, opts tarneeb.Options) *Dealer {
	if recorder == nil {
		recorder = history.NopRecorder{}
	}

	id := uuid.New().String()
	logger := logrus.WithField("tableId", id)

	d := &Dealer{
		id:            id,
		logger:        logger,
		recorder:      recorder,
		clients:       make(map[*Client]bool),
		notifications: make(chan tarneeb.Notification, notificationBuffer),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	d.engine = tarneeb.NewEngine(logger, d, opts)
	return d
}

// ID returns the table ID
func (d *Dealer) ID() string {
	return d.id
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// State returns the public state of the table
func (d *Dealer) State() tarneeb.GameState {
	return d.engine.State()
}

// Rounds returns recorded rounds, most recent first
func (d *Dealer) Rounds(ctx context.Context, start int64, rows int) ([]*history.Round, error) {
	return d.recorder.Rounds(ctx, start, rows)
}

// Notify queues a notification from the engine
// It is called while the engine holds its lock, so it must not block
func (d *Dealer) Notify(n tarneeb.Notification) {
	select {
	case d.notifications <- n:
	default:
		d.logger.WithField("kind", n.Kind).Error("notification queue is full, dropping notification")
	}
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case n := <-d.notifications:
			d.deliver(n)
		case fn := <-d.execInRunLoop:
			// keep notifications that were queued before fn ahead of anything fn sends
			d.drainNotifications()
			fn()
			d.drainNotifications()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		d.engine.Close()
		close(d.close)
	})
}

// exec runs fn in the run loop. It returns false if the dealer has ended its shift
func (d *Dealer) exec(fn func()) bool {
	select {
	case d.execInRunLoop <- fn:
		return true
	case <-d.close:
		return false
	}
}

// AddClient seats a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	client.dealer = d

	queued := d.exec(func() {
		seat, err := d.engine.JoinTable(client.name)
		if err != nil {
			d.logger.WithError(err).WithField("client", client.String()).Info("could not seat client")
			client.Send(newErrorResponse("", err))
			client.Disconnect(err.Error())
			return
		}

		client.seat = seat
		d.lock.Lock()
		d.clients[client] = true
		d.lock.Unlock()

		client.Send(&playable.Response{
			Key: "seat",
			Data: seatResponse{
				TableID: d.id,
				Seat:    seat,
				Name:    client.name,
			},
		})

		if state, err := d.engine.GetPlayerState(seat); err == nil {
			client.Send(state)
		} else {
			d.logger.WithError(err).Error("could not get player state")
		}

		if messages := d.recentLogMessages(); len(messages) > 0 {
			client.Send(&playable.Response{
				Key:  string(tarneeb.NotifyLog),
				Data: tarneeb.Log{Messages: messages},
			})
		}
	})

	if !queued {
		client.Disconnect("the table is closed")
	}
}

// RemoveClient frees the client's seat
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) {
	d.exec(func() {
		d.lock.Lock()
		_, found := d.clients[client]
		delete(d.clients, client)
		d.lock.Unlock()

		if !found {
			return
		}

		if err := d.engine.Leave(client.seat); err != nil {
			d.logger.WithError(err).WithField("seat", client.seat).Error("could not free seat")
		}

		client.seat = -1
	})
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.exec(func() {
		d.lock.RLock()
		seated := d.clients[c]
		d.lock.RUnlock()

		if !seated {
			c.Send(newErrorResponse(msg.Context, ErrNotSeated))
			return
		}

		switch msg.Action {
		case "getState":
			state, err := d.engine.GetPlayerState(c.seat)
			if err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			state.Context = msg.Context
			c.Send(state)
		default:
			res, err := d.engine.Action(c.seat, msg)
			if err != nil {
				d.logger.WithError(err).WithFields(logrus.Fields{
					"client": c.String(),
					"action": msg.Action,
				}).Debug("could not perform action")
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			if res != nil {
				res.Context = msg.Context
				c.Send(res)
			}
		}
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) drainNotifications() {
	for {
		select {
		case n := <-d.notifications:
			d.deliver(n)
		default:
			return
		}
	}
}

// deliver sends the notification to its recipients
// NOTE: must only be called from the run loop
func (d *Dealer) deliver(n tarneeb.Notification) {
	switch data := n.Data.(type) {
	case tarneeb.Log:
		d.addLogMessages(data.Messages)
	case tarneeb.RoundScored:
		d.recordRound(data)
	}

	res := newNotificationResponse(n)
	for _, client := range d.Clients() {
		if !n.IsBroadcast() && client.seat != n.Seat {
			continue
		}

		if !client.Send(res) {
			d.logger.WithFields(logrus.Fields{
				"client": client.String(),
				"kind":   n.Kind,
			}).Warn("client send buffer is full")
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) recordRound(scored tarneeb.RoundScored) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := d.recorder.RecordRound(ctx, d.id, scored); err != nil {
		d.logger.WithError(err).WithField("round", scored.Round).Error("could not record round")
	}
}
