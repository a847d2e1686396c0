package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memoryStore struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (m *memoryStore) Log(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("db down")
	}
	m.events = append(m.events, ev)
	return nil
}

func TestDispatcher_DeliversOnClose(t *testing.T) {
	store := &memoryStore{}
	d := NewDispatcher(store, zap.NewNop())

	d.Dispatch(Event{ActorID: "PAT-0001", Action: ActionAppointmentBooked, Entity: "appointment", EntityID: "APT-0001"})
	d.Dispatch(Event{ActorID: "DOC-0001", Action: ActionOrderCreated, Entity: "order", EntityID: "ORD-0001"})
	d.Close()

	assert.Len(t, store.events, 2)
	assert.Equal(t, "APT-0001", store.events[0].EntityID)
}

func TestDispatcher_StoreErrorsDoNotStopWorker(t *testing.T) {
	store := &memoryStore{fail: true}
	d := NewDispatcher(store, zap.NewNop())

	d.Dispatch(Event{Action: ActionPatientCreated})
	d.Close()

	assert.Empty(t, store.events)
}

func TestDispatcher_DispatchAfterClose(t *testing.T) {
	d := NewDispatcher(&memoryStore{}, zap.NewNop())
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionOrderCreated})
	})
	d.Close()
}

func TestDispatcher_ConcurrentDispatchAndClose(t *testing.T) {
	store := &memoryStore{}
	d := NewDispatcher(store, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: ActionAppointmentBooked})
			}
		}()
	}
	d.Close()
	wg.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.LessOrEqual(t, len(store.events), 8*50)
}
