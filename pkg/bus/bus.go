// Package bus implements the topic-based publish/subscribe event bus Mail
// frames flow through between module processes and remote subscribers.
package bus

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sagacious-labs/hyperion/pkg/log"
	"github.com/sagacious-labs/hyperion/pkg/mail"
)

// SubscriberBuffer is the capacity of every subscriber channel.
const SubscriberBuffer = 8

// SubscriberID identifies a single subscription on a topic.
type SubscriberID = uuid.UUID

// Bus is a topic -> {subscriberID -> channel} fan-out registry. The zero
// value is not usable; construct with New. A Bus may be freely copied:
// all copies share the same underlying subscriber map.
type Bus struct {
	mu          *sync.Mutex
	subscribers *map[string]map[SubscriberID]chan mail.Mail
}

// New returns an empty Bus.
func New() Bus {
	subs := make(map[string]map[SubscriberID]chan mail.Mail)
	return Bus{mu: &sync.Mutex{}, subscribers: &subs}
}

// Subscribe registers a fresh subscriber on topic and returns its ID and
// receive channel.
func (b Bus) Subscribe(topic string) (SubscriberID, <-chan mail.Mail) {
	id := uuid.New()
	ch := make(chan mail.Mail, SubscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	group, ok := (*b.subscribers)[topic]
	if !ok {
		group = make(map[SubscriberID]chan mail.Mail)
		(*b.subscribers)[topic] = group
	}
	group[id] = ch

	return id, ch
}

// Publish fans m out to every current subscriber of topic. Each delivery
// happens on its own detached goroutine so a slow subscriber cannot block
// the publisher or other subscribers. A delivery to a full subscriber
// channel waits on its goroutine until there is room; a delivery to a
// closed subscriber channel is logged and otherwise ignored.
func (b Bus) Publish(topic string, m mail.Mail) {
	b.mu.Lock()
	group, ok := (*b.subscribers)[topic]
	if !ok {
		b.mu.Unlock()
		return
	}
	targets := make([]chan mail.Mail, 0, len(group))
	for _, ch := range group {
		targets = append(targets, ch)
	}
	b.mu.Unlock()

	for _, ch := range targets {
		go func(ch chan mail.Mail) {
			defer func() {
				if recover() != nil {
					log.WithComponent("bus").Warn().Str("topic", topic).Msg("dropped message for closed subscriber")
				}
			}()
			// Blocks until the subscriber drains, but only this detached
			// goroutine blocks — the publisher and other subscribers are
			// unaffected.
			ch <- m
		}(ch)
	}
}

// Unsubscribe removes id from topic. If the topic has no remaining
// subscribers, the topic entry itself is removed to prevent unbounded
// growth of the subscriber map.
func (b Bus) Unsubscribe(topic string, id SubscriberID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	group, ok := (*b.subscribers)[topic]
	if !ok {
		return
	}

	if ch, ok := group[id]; ok {
		close(ch)
		delete(group, id)
	}

	if len(group) == 0 {
		delete(*b.subscribers, topic)
	}
}

// SubscriberCount returns the number of live subscribers on topic, used by
// the metrics collector to populate hyperion_bus_subscribers_total.
func (b Bus) SubscriberCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len((*b.subscribers)[topic])
}

// Topics returns a snapshot of all topics that currently have at least one
// subscriber.
func (b Bus) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	topics := make([]string, 0, len(*b.subscribers))
	for t := range *b.subscribers {
		topics = append(topics, t)
	}
	return topics
}
