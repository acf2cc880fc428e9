package app

import (
	"sync"

	"justice-play/internal/domain"
)

// Bus is the in-process publish/subscribe hub for profile change notifications.
// Delivery is synchronous and best-effort: observers run on the publisher's goroutine and
// channel subscribers that fall behind lose their oldest queued event.
type Bus struct {
	mu          sync.RWMutex
	nextID      int
	observers   map[int]func(domain.ProfileEvent)
	subscribers map[chan domain.ProfileEvent]string
}

func NewBus() *Bus {
	return &Bus{
		observers:   make(map[int]func(domain.ProfileEvent)),
		subscribers: make(map[chan domain.ProfileEvent]string),
	}
}

// Observe registers a callback invoked for every event. The returned func unregisters it.
func (b *Bus) Observe(fn func(domain.ProfileEvent)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.observers[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.observers, id)
		b.mu.Unlock()
	}
}

// Subscribe returns a channel receiving events for userID, or for every user when userID is empty.
// The caller must invoke the returned cancel function to avoid leaks.
func (b *Bus) Subscribe(userID string) (<-chan domain.ProfileEvent, func()) {
	ch := make(chan domain.ProfileEvent, 16)

	b.mu.Lock()
	b.subscribers[ch] = userID
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subscribers[ch]; ok {
			delete(b.subscribers, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish fans an event out to observers and matching subscribers.
func (b *Bus) Publish(event domain.ProfileEvent) {
	b.mu.RLock()
	observers := make([]func(domain.ProfileEvent), 0, len(b.observers))
	for _, fn := range b.observers {
		observers = append(observers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range observers {
		fn(event)
	}

	// Write lock: a concurrent cancel must not close a channel mid-send.
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch, userID := range b.subscribers {
		if userID != "" && userID != event.UserID {
			continue
		}
		select {
		case ch <- event:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- event
		}
	}
}
