// Package events is a typed in-process publish/subscribe hub.
package events

import (
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

// Topic fans out values of one kind to its subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses that value.
type Topic[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan T
}

// Subscribe registers a subscriber with the given buffer size. The returned
// function unsubscribes and closes the channel; it is safe to call twice.
func (t *Topic[T]) Subscribe(buffer int) (<-chan T, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan T, buffer)

	t.mu.Lock()
	if t.subs == nil {
		t.subs = make(map[int]chan T)
	}
	id := t.nextID
	t.nextID++
	t.subs[id] = ch
	t.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.subs, id)
			t.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers v to every subscriber and returns how many received it.
func (t *Topic[T]) Publish(v T) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	delivered := 0
	for _, ch := range t.subs {
		select {
		case ch <- v:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribers returns the number of active subscribers.
func (t *Topic[T]) Subscribers() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.subs)
}

// Bus groups the topics emitted by the tracker and the notifier.
type Bus struct {
	Status       Topic[model.StatusSnapshot]
	Transaction  Topic[model.Transaction]
	Settings     Topic[model.NotificationPreferences]
	Notification Topic[model.Notification]
	Countdown    Topic[time.Duration]
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}
