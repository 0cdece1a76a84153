package audit

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
}

func (s *memorySink) Log(_ context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_DeliversOnClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zerolog.Nop())

	actor := uuid.New()
	d.Dispatch(Event{ActorID: &actor, Action: "client_created", Entity: "client"})
	d.Dispatch(Event{ActorID: &actor, Action: "order_created", Entity: "order"})
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, "client_created", sink.events[0].Action)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := &memorySink{block: make(chan struct{})}
	var buf bytes.Buffer
	d := NewDispatcher(sink, zerolog.New(&buf))

	// worker fica preso no primeiro evento; a fila comporta queueSize
	for i := 0; i < queueSize+10; i++ {
		d.Dispatch(Event{Action: "x"})
	}

	assert.Contains(t, buf.String(), "audit queue full")

	close(sink.block)
	d.Close()

	assert.LessOrEqual(t, len(sink.events), queueSize+1)
	assert.GreaterOrEqual(t, len(sink.events), queueSize)
}

func TestDispatcher_AfterCloseAndNil(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zerolog.Nop())
	d.Close()
	d.Close()

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "late"}) })
	assert.Empty(t, sink.events)

	var nilDispatcher *Dispatcher
	assert.NotPanics(t, func() { nilDispatcher.Dispatch(Event{Action: "x"}) })
}
