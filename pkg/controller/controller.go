// Package controller supervises a single module's process: it acquires
// the module's binary, spawns it, wires its stdio to the module's event
// bus, and restarts it with exponential backoff until stopped.
package controller

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sagacious-labs/hyperion/pkg/bus"
	"github.com/sagacious-labs/hyperion/pkg/log"
	"github.com/sagacious-labs/hyperion/pkg/mail"
	"github.com/sagacious-labs/hyperion/pkg/metrics"
	"github.com/sagacious-labs/hyperion/pkg/process"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

// DefaultMaxBackoff is used when the Controller is constructed with a
// zero maxBackoff, matching the spec's recommended cap.
const DefaultMaxBackoff = 60 * time.Second

// DefaultDownloadTimeout bounds an HTTP(S) binary acquisition when the
// Controller is constructed with a zero downloadTimeout.
const DefaultDownloadTimeout = 30 * time.Second

// Controller supervises the lifecycle of one module's process across
// restarts. Construct with New and start the supervision loop with Run;
// Stop requests a graceful shutdown.
type Controller struct {
	mu    sync.Mutex
	state types.State

	cancel   chan struct{}
	cancelOk sync.Once

	tempDir         string
	maxBackoff      time.Duration
	downloadTimeout time.Duration

	logger zerolog.Logger
	key    string
}

// Options configures a Controller's ambient knobs.
type Options struct {
	TempDir         string
	MaxBackoff      time.Duration
	DownloadTimeout time.Duration
}

// New returns a Controller in the Init state, not yet running.
func New(key string, opts Options) *Controller {
	maxBackoff := opts.MaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = DefaultMaxBackoff
	}
	downloadTimeout := opts.DownloadTimeout
	if downloadTimeout <= 0 {
		downloadTimeout = DefaultDownloadTimeout
	}
	tempDir := opts.TempDir
	if tempDir == "" {
		tempDir = "/tmp/hyperion"
	}

	return &Controller{
		state:           types.Init(),
		cancel:          make(chan struct{}),
		tempDir:         tempDir,
		maxBackoff:      maxBackoff,
		downloadTimeout: downloadTimeout,
		logger:          log.WithModule(key),
		key:             key,
	}
}

// Run starts the supervision loop as a detached goroutine. Run must be
// called at most once per Controller.
func (c *Controller) Run(m types.Module, eb *bus.ModuleEventBus) {
	go c.loop(m, eb)
}

// Stop requests the supervision loop terminate. It is fire-and-forget:
// the loop observes cancellation either immediately (if currently
// blocked waiting on the child or the cancel signal) or at the start of
// its next iteration. Stop is idempotent.
func (c *Controller) Stop() {
	c.cancelOk.Do(func() {
		close(c.cancel)
	})
}

// GetStatus returns the current supervision state rendered as a string:
// "Init", "Running", "InitCrashLoopBackoff", "Exit: {code}", or the raw
// error message.
func (c *Controller) GetStatus() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.String()
}

// State returns the controller's current state as a typed value, used by
// the metrics collector to aggregate hyperion_modules_total across the
// registry without string parsing.
func (c *Controller) State() types.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s types.State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Controller) loop(m types.Module, eb *bus.ModuleEventBus) {
	backoff := time.Second

	for {
		select {
		case <-c.cancel:
			return
		default:
		}

		c.setState(types.Init())

		bin, err := c.acquireBinary(m)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to set up process binary")
			c.setState(types.Error(err.Error()))

			if c.sleepOrCancel(backoff) {
				return
			}
			backoff = nextBackoff(backoff, c.maxBackoff)
			continue
		}

		c.logger.Debug().Str("bin", bin).Msg("setup process binary")

		stdoutCh := make(chan mail.Mail, 8)
		stdinCh := make(chan mail.Mail, 8)
		dataCh, logCh := splitStdout(stdoutCh)

		proc, err := process.New(bin, stdoutCh, stdinCh)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to start process - init crashed")
			c.setState(types.InitCrashLoopBackOff())
			metrics.ModuleRestartsTotal.WithLabelValues(c.key).Inc()

			if c.sleepOrCancel(backoff) {
				return
			}
			backoff = nextBackoff(backoff, c.maxBackoff)
			continue
		}

		c.setState(types.Running())
		metrics.ModuleRestartsTotal.WithLabelValues(c.key).Inc()

		eb.StreamData(dataCh)
		eb.StreamLogs(logCh)
		eb.RecvData(stdinCh)

		cancelled := c.waitOrCancel(proc)

		eb.Cleanup()

		if cancelled {
			return
		}

		if c.sleepOrCancel(backoff) {
			return
		}
		backoff = nextBackoff(backoff, c.maxBackoff)
	}
}

// waitOrCancel awaits either the child's exit or a cancel signal,
// whichever fires first, recording the resulting state. It returns true
// if cancellation was observed (and the loop should terminate).
//
// Exactly one goroutine calls proc.WaitOnChild (cmd.Wait may only be
// called once); on cancellation, Terminate only signals the child, and
// this function still waits on exitCh for that single goroutine to
// observe the resulting exit status.
func (c *Controller) waitOrCancel(proc *process.Process) bool {
	exitCh := make(chan struct{})
	var code int
	var waitErr error

	go func() {
		code, waitErr = proc.WaitOnChild()
		close(exitCh)
	}()

	select {
	case <-exitCh:
		if waitErr != nil {
			c.setState(types.Error(waitErr.Error()))
		} else {
			c.setState(types.Exit(code))
		}
		return false

	case <-c.cancel:
		c.logger.Debug().Msg("received process termination request")
		if err := proc.Terminate(); err != nil {
			c.logger.Error().Err(err).Msg("failed to signal process for termination")
		}

		<-exitCh
		if waitErr != nil {
			c.setState(types.Error(waitErr.Error()))
		} else {
			c.setState(types.Exit(code))
		}
		return true
	}
}

// sleepOrCancel sleeps for d, returning early (true) if cancellation is
// observed during the sleep.
func (c *Controller) sleepOrCancel(d time.Duration) bool {
	metrics.ModuleBackoffSeconds.WithLabelValues(c.key).Set(d.Seconds())

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return false
	case <-c.cancel:
		return true
	}
}

func nextBackoff(current, max time.Duration) time.Duration {
	next := current * 2
	if next > max {
		return max
	}
	return next
}

// splitStdout demultiplexes a raw stdout Mail stream into separate data
// and log channels by inspecting each frame's type, preserving per-kind
// arrival order.
func splitStdout(stdout <-chan mail.Mail) (data, logs chan mail.Mail) {
	data = make(chan mail.Mail, 8)
	logs = make(chan mail.Mail, 8)

	go func() {
		defer close(data)
		defer close(logs)

		for m := range stdout {
			switch m.Type {
			case mail.Log:
				logs <- m
			case mail.Data:
				data <- m
			default:
				// unknown frame types are silently ignored per the
				// child-process protocol contract
			}
		}
	}()

	return data, logs
}
