package tarneeb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualScheduler(t *testing.T) {
	a := assert.New(t)
	s := &ManualScheduler{}

	calls := 0
	first := s.AfterFunc(time.Second, func() { calls++ })
	second := s.AfterFunc(time.Minute, func() { calls += 10 })
	a.Equal(2, s.Pending())
	a.Equal(time.Second, s.NextDelay())

	a.True(first.Stop())
	a.False(first.Stop())
	a.Equal(time.Minute, s.NextDelay())

	a.Equal(1, s.Fire())
	a.Equal(10, calls)
	a.False(second.Stop(), "already fired")
	a.Equal(0, s.Pending())
	a.Equal(time.Duration(0), s.NextDelay())
}

func TestManualScheduler_rearm(t *testing.T) {
	s := &ManualScheduler{}

	s.AfterFunc(time.Second, func() {
		s.AfterFunc(time.Second, func() {})
	})

	assert.Equal(t, 1, s.Fire())
	assert.Equal(t, 1, s.Pending(), "timers armed while firing wait for the next call")
}

func TestRealScheduler(t *testing.T) {
	done := make(chan bool, 1)
	RealScheduler{}.AfterFunc(time.Millisecond, func() { done <- true })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("timer did not fire")
	}
}
