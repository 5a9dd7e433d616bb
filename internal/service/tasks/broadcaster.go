package tasks

import (
	"log/slog"
	"sync"
)

const defaultSubscriberBuffer = 16

// Subscription is one push channel for a single user's task events.
// Events arrive on C until Unsubscribe closes it.
type Subscription struct {
	UserID string
	C      <-chan Event

	ch chan Event
}

// Broadcaster fans task events out to per-user subscriber sets. A slow or
// dead subscriber drops events instead of blocking the publisher or the
// other subscribers.
type Broadcaster struct {
	mu     sync.RWMutex
	users  map[string]map[*Subscription]struct{}
	buffer int
	log    *slog.Logger
}

// NewBroadcaster creates a Broadcaster. buffer sets the per-subscriber event
// queue size; values <= 0 use the default.
func NewBroadcaster(buffer int, logger *slog.Logger) *Broadcaster {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Broadcaster{
		users:  make(map[string]map[*Subscription]struct{}),
		buffer: buffer,
		log:    logger.With("service", "broadcaster"),
	}
}

// Subscribe registers a new subscriber for the user's task events.
func (b *Broadcaster) Subscribe(userID string) *Subscription {
	ch := make(chan Event, b.buffer)
	sub := &Subscription{UserID: userID, C: ch, ch: ch}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.users[userID] == nil {
		b.users[userID] = make(map[*Subscription]struct{})
	}
	b.users[userID][sub] = struct{}{}
	return sub
}

// Unsubscribe removes the subscriber and closes its channel. Membership and
// the per-user set are cleaned up together; unsubscribing twice is safe.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.users[sub.UserID]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(b.users, sub.UserID)
	}
	close(sub.ch)
}

// Publish delivers the event to every subscriber of its user. A full
// subscriber queue drops the event for that subscriber only.
func (b *Broadcaster) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.users[event.Progress.UserID] {
		select {
		case sub.ch <- event:
		default:
			b.log.Warn("subscriber queue full, event dropped",
				slog.String("user_id", event.Progress.UserID),
				slog.String("task_id", event.Progress.TaskID),
			)
		}
	}
}

// SubscriberCount reports how many subscribers the user currently has.
func (b *Broadcaster) SubscriberCount(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.users[userID])
}
