package bus

import (
	"sync"

	"github.com/sagacious-labs/hyperion/pkg/mail"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

// subscription records a single (subscriberID, topic) pair a ModuleEventBus
// has taken out on the underlying Bus, so cleanup can unwind it.
type subscription struct {
	id    SubscriberID
	topic string
}

// ModuleEventBus is a per-module adapter over Bus: it derives the module's
// log/data/input topic lists at registration time and wires the module's
// process stdio streams to them.
//
// Each of StreamLogs/StreamData/RecvData is "taken once": the topic
// list it operates on is consumed on first call, and subsequent calls are
// no-ops, mirroring the original's Option<Vec<String>>::take() semantics.
type ModuleEventBus struct {
	bus Bus

	mu          sync.Mutex
	logTopics   []string
	dataTopics  []string
	inputTopics []string
	logTaken    bool
	dataTaken   bool
	inputTaken  bool

	subsMu sync.Mutex
	subs   []subscription
}

// NewModuleEventBus derives the module's topic lists from m and wires them
// against the given Bus.
func NewModuleEventBus(b Bus, m types.Module) *ModuleEventBus {
	return &ModuleEventBus{
		bus:         b,
		logTopics:   m.LogTopics(),
		dataTopics:  m.DataTopics(),
		inputTopics: m.InputTopics(),
	}
}

// StreamLogs detaches a goroutine that publishes every Mail read from rx
// to every log topic. A second call is a no-op.
func (m *ModuleEventBus) StreamLogs(rx <-chan mail.Mail) {
	m.mu.Lock()
	if m.logTaken {
		m.mu.Unlock()
		return
	}
	m.logTaken = true
	topics := m.logTopics
	m.mu.Unlock()

	m.stream(topics, rx)
}

// StreamData detaches a goroutine that publishes every Mail read from rx
// to every data topic. A second call is a no-op.
func (m *ModuleEventBus) StreamData(rx <-chan mail.Mail) {
	m.mu.Lock()
	if m.dataTaken {
		m.mu.Unlock()
		return
	}
	m.dataTaken = true
	topics := m.dataTopics
	m.mu.Unlock()

	m.stream(topics, rx)
}

func (m *ModuleEventBus) stream(topics []string, rx <-chan mail.Mail) {
	go func() {
		for item := range rx {
			for _, topic := range topics {
				m.bus.Publish(topic, item)
			}
		}
	}()
}

// RecvData subscribes to every input topic, recording each (subscriberID,
// topic) pair for cleanup, and detaches one forwarding goroutine per
// subscription piping received Mail into tx. A second call is a no-op.
func (m *ModuleEventBus) RecvData(tx chan<- mail.Mail) {
	m.mu.Lock()
	if m.inputTaken {
		m.mu.Unlock()
		return
	}
	m.inputTaken = true
	topics := m.inputTopics
	m.mu.Unlock()

	for _, topic := range topics {
		id, rx := m.bus.Subscribe(topic)

		m.subsMu.Lock()
		m.subs = append(m.subs, subscription{id: id, topic: topic})
		m.subsMu.Unlock()

		go func(rx <-chan mail.Mail) {
			for item := range rx {
				tx <- item
			}
		}(rx)
	}
}

// Cleanup unsubscribes every recorded (subscriberID, topic) pair from the
// bus and clears the list. Idempotent.
func (m *ModuleEventBus) Cleanup() {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()

	for _, s := range m.subs {
		m.bus.Unsubscribe(s.topic, s.id)
	}
	m.subs = nil
}
