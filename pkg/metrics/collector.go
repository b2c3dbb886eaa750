package metrics

import (
	"time"

	"github.com/sagacious-labs/hyperion/pkg/manager"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

// Collector periodically polls the Manager's registry and Bus to keep
// the gauge metrics current, mirroring the teacher's ticking collector
// pattern.
type Collector struct {
	manager *manager.Manager
	stopCh  chan struct{}
}

// NewCollector returns a Collector over mgr.
func NewCollector(mgr *manager.Manager) *Collector {
	return &Collector{
		manager: mgr,
		stopCh:  make(chan struct{}),
	}
}

// Start begins collecting on a 15-second tick, collecting once
// immediately first.
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop halts the collector.
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	out := make(chan types.Module, 64)
	go c.manager.List(manager.Filter{}, out)

	counts := make(map[string]int)
	var modules []types.Module
	for m := range out {
		// List doesn't populate Status (only Get does, mirroring the
		// original); fetch it per module so the gauge reflects live
		// process state. A module whose Get fails is reported as "Unknown",
		// which normalizeState buckets as "Error".
		if withStatus, err := c.manager.Get(m.Core); err == nil {
			m = withStatus
		}
		modules = append(modules, m)

		state := "Unknown"
		if m.Status != nil {
			state = m.Status.Msg
		}
		counts[normalizeState(state)]++
	}

	for state, n := range counts {
		ModulesTotal.WithLabelValues(state).Set(float64(n))
	}

	seen := make(map[string]struct{})
	for _, m := range modules {
		for _, topic := range append(m.DataTopics(), m.LogTopics()...) {
			if _, ok := seen[topic]; ok {
				continue
			}
			seen[topic] = struct{}{}
			BusSubscribersTotal.WithLabelValues(topic).Set(float64(c.manager.Bus().SubscriberCount(topic)))
		}
	}
}

// normalizeState collapses "Exit: {code}" and raw error messages into
// coarse buckets so the state label's cardinality stays bounded.
func normalizeState(msg string) string {
	switch {
	case msg == "Init", msg == "Running", msg == "InitCrashLoopBackoff":
		return msg
	case len(msg) >= 5 && msg[:5] == "Exit:":
		return "Exit"
	default:
		return "Error"
	}
}
