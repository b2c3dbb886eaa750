// Package health serves Hyperion's /healthz process-liveness endpoint.
//
// Unlike the container-probe health checks the teacher's orchestrator
// runs against managed workloads, Hyperion's own liveness is simply
// "has this process been initialized": there is nothing to probe beyond
// the gRPC server having started, since the supervised modules already
// report their own state through Get/WatchLog.
package health

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var (
	mu        sync.RWMutex
	startTime = time.Now()
	ready     bool
)

// status is the JSON body served at /healthz.
type status struct {
	Status string    `json:"status"`
	Uptime string    `json:"uptime"`
	Since  time.Time `json:"since"`
}

// MarkReady flags the process as having completed startup. cmd/hyperion
// calls it once the manager is constructed and the gRPC server's Serve
// goroutine has been launched. Before this is called, /healthz reports
// "starting" with a 503.
func MarkReady() {
	mu.Lock()
	defer mu.Unlock()
	ready = true
}

// Handler returns the /healthz HTTP handler.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		isReady := ready
		mu.RUnlock()

		body := status{
			Uptime: time.Since(startTime).String(),
			Since:  startTime,
		}

		w.Header().Set("Content-Type", "application/json")
		if isReady {
			body.Status = "alive"
			w.WriteHeader(http.StatusOK)
		} else {
			body.Status = "starting"
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(body)
	}
}
