// Package bus is the cross-screen invalidation channel: any component can
// emit a named event, any component can subscribe. Subscriptions are
// handle-based — a subscriber keeps the returned handle and cancels it on
// teardown, so nothing leaks ambient callbacks.
package bus

import (
	"sync"

	"github.com/google/uuid"
)

// Topic names an invalidation event.
type Topic string

const (
	TopicProfileChanged   Topic = "profile-changed"
	TopicNutritionChanged Topic = "nutrition-changed"
	TopicSleepChanged     Topic = "sleep-changed"
	TopicHydrationChanged Topic = "hydration-changed"
	TopicPlanSaved        Topic = "plan-saved"
	TopicRemindersSaved   Topic = "reminders-saved"
)

// Event is what subscribers receive. Payload is topic-specific and may be nil.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler receives events for one subscription. Handlers run synchronously on
// the emitting goroutine, matching the single event-loop model — emitters
// should not hold locks that handlers might need.
type Handler func(Event)

// Bus routes events by topic.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic]map[string]Handler
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic]map[string]Handler)}
}

// Subscription is the handle returned by Subscribe. Cancel is idempotent.
type Subscription struct {
	bus   *Bus
	topic Topic
	id    string
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if handlers, ok := s.bus.subs[s.topic]; ok {
		delete(handlers, s.id)
		if len(handlers) == 0 {
			delete(s.bus.subs, s.topic)
		}
	}
	s.bus = nil
}

// Subscribe registers a handler for a topic and returns its handle.
func (b *Bus) Subscribe(topic Topic, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]Handler)
	}
	id := uuid.New().String()
	b.subs[topic][id] = h
	return &Subscription{bus: b, topic: topic, id: id}
}

// Emit delivers the event to every current subscriber of the topic. The
// subscriber set is snapshotted before delivery so a handler may subscribe
// or cancel without deadlocking.
func (b *Bus) Emit(topic Topic, payload any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload}
	for _, h := range handlers {
		h(ev)
	}
}

// SubscriberCount reports the live subscriptions for a topic. Used by tests
// and teardown assertions.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
