package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/scrollview/parameter"
)

func TestQueuePushConsumeFIFO(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventWheel, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Consume returned %d events, want 5", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d, want %d (FIFO order)", i, ev.Frame, i)
		}
	}
}

func TestQueueConsumeEmptyReturnsNil(t *testing.T) {
	q := NewQueue()
	if events := q.Consume(); events != nil {
		t.Errorf("Consume on empty queue = %v, want nil", events)
	}
}

func TestQueueDrainsFully(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventWheel})
	q.Push(Event{Type: EventScrollToRequest})

	if got := len(q.Consume()); got != 2 {
		t.Fatalf("first Consume returned %d events, want 2", got)
	}
	if events := q.Consume(); events != nil {
		t.Errorf("second Consume = %v, want nil (fully drained)", events)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventWheel, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) == 0 || len(events) > parameter.EventQueueSize {
		t.Fatalf("Consume after overflow returned %d events", len(events))
	}
	// Oldest events were overwritten; the newest must survive
	last := events[len(events)-1]
	if last.Frame != int64(total-1) {
		t.Errorf("newest surviving frame = %d, want %d", last.Frame, total-1)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup

	producers := 8
	perProducer := 16
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: EventWheel})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("consumed %d events, want %d", got, producers*perProducer)
	}
}

func TestQueueLen(t *testing.T) {
	q := NewQueue()
	if q.Len() != 0 {
		t.Errorf("Len on empty queue = %d, want 0", q.Len())
	}
	q.Push(Event{Type: EventWheel})
	q.Push(Event{Type: EventWheel})
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
	q.Consume()
	if q.Len() != 0 {
		t.Errorf("Len after Consume = %d, want 0", q.Len())
	}
}
