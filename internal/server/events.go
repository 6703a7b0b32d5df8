package server

import (
	"context"
	"sync"
	"time"
)

const (
	ProfileEventSaved  = "profile-saved"
	profileEventSource = "onematch-backend"
)

// ProfileEvent notifies subscribers that a user's profile changed.
type ProfileEvent struct {
	UserID    string    `json:"userId"`
	EventType string    `json:"eventType"`
	Onboarded bool      `json:"onboarded"`
	Timestamp time.Time `json:"timestamp"`
}

// ProfileEventDispatcher fans profile-change events out to per-user
// subscribers. Slow subscribers drop events rather than block a save.
type ProfileEventDispatcher struct {
	mu          sync.RWMutex
	subscribers map[string]map[int64]*profileSubscriber
	nextID      int64
	bufferSize  int
}

type profileSubscriber struct {
	id     int64
	stream chan ProfileEvent
}

func NewProfileEventDispatcher() *ProfileEventDispatcher {
	return &ProfileEventDispatcher{
		subscribers: make(map[string]map[int64]*profileSubscriber),
		bufferSize:  16,
	}
}

// Subscribe registers a listener for the user's profile events. The stream
// closes and the subscription is released when ctx is done or the returned
// cancel func runs.
func (d *ProfileEventDispatcher) Subscribe(ctx context.Context, userID string) (<-chan ProfileEvent, func()) {
	if userID == "" {
		ch := make(chan ProfileEvent)
		close(ch)
		return ch, func() {}
	}
	subscriber := &profileSubscriber{
		id:     d.nextSequence(),
		stream: make(chan ProfileEvent, d.bufferSize),
	}
	d.registerSubscriber(userID, subscriber)
	cleanup := func() {
		d.unregisterSubscriber(userID, subscriber.id)
	}
	go func() {
		<-ctx.Done()
		cleanup()
	}()
	return subscriber.stream, cleanup
}

// Publish delivers the event to every current subscriber of its user.
func (d *ProfileEventDispatcher) Publish(event ProfileEvent) {
	if event.UserID == "" || event.EventType == "" {
		return
	}
	d.mu.RLock()
	subscribers := d.subscribers[event.UserID]
	if len(subscribers) == 0 {
		d.mu.RUnlock()
		return
	}
	copies := make([]*profileSubscriber, 0, len(subscribers))
	for _, subscriber := range subscribers {
		copies = append(copies, subscriber)
	}
	d.mu.RUnlock()
	for _, subscriber := range copies {
		select {
		case subscriber.stream <- event:
		default:
		}
	}
}

func (d *ProfileEventDispatcher) nextSequence() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	return d.nextID
}

func (d *ProfileEventDispatcher) registerSubscriber(userID string, subscriber *profileSubscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.subscribers[userID]; !ok {
		d.subscribers[userID] = make(map[int64]*profileSubscriber)
	}
	d.subscribers[userID][subscriber.id] = subscriber
}

func (d *ProfileEventDispatcher) unregisterSubscriber(userID string, subscriberID int64) {
	d.mu.Lock()
	subscribers := d.subscribers[userID]
	if subscribers != nil {
		delete(subscribers, subscriberID)
		if len(subscribers) == 0 {
			delete(d.subscribers, userID)
		}
	}
	d.mu.Unlock()
}
