package room

import (
	"tarneeb-server/pkg/history"
	"tarneeb-server/pkg/playable/tarneeb"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for dispatching players to the table
type PitBoss struct {
	dealer *Dealer
}

// NewPitBoss returns a new dispatch object with a single table
func NewPitBoss(recorder history.Recorder, opts tarneeb.Options) *PitBoss {
	return &PitBoss{
		dealer: NewDealer(recorder, opts),
	}
}

// StartShift starts the dealer's run loop
func (p *PitBoss) StartShift() {
	p.dealer.StartShift()
}

// EndShift stops the dealer
func (p *PitBoss) EndShift() {
	p.dealer.EndShift()
}

// Dealer returns the dealer running the table
func (p *PitBoss) Dealer() *Dealer {
	return p.dealer
}

// ClientConnected is called when a client connects to the server
// It must be called before the client's read loop starts
func (p *PitBoss) ClientConnected(client *Client) {
	logrus.WithField("client", client.String()).Debug("client connected")
	p.dealer.AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	logrus.WithField("client", client.String()).Debug("client disconnected")
	p.dealer.RemoveClient(client)
}
