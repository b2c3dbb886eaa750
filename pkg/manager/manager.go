// Package manager implements the Module Manager: the top-level component
// owning the module registry and exposing Apply/Delete/List/Get/WatchData/
// WatchLog against it.
package manager

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sagacious-labs/hyperion/pkg/actor"
	"github.com/sagacious-labs/hyperion/pkg/bus"
	"github.com/sagacious-labs/hyperion/pkg/controller"
	"github.com/sagacious-labs/hyperion/pkg/log"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

// ErrNotFound is returned when Delete or Get addresses a key absent from
// the registry.
var ErrNotFound = errors.New("manager: module not found")

// ErrInvalidModule is returned when a module's core is missing required
// fields, so a canonical key cannot be computed.
var ErrInvalidModule = errors.New("manager: invalid module core")

// entry is one registry slot: the stored module plus the controller
// supervising its process.
type entry struct {
	module     types.Module
	controller *controller.Controller
	eventBus   *bus.ModuleEventBus
}

// Manager owns the module registry (key -> (Module, Controller)) and the
// shared Bus every module's event bus is derived from. Manager is an
// actor.Actor[Command]: every Apply/Delete/List/Get/WatchData/WatchLog
// call is a Command sent over its mailbox, so commands are taken off in
// arrival order. Handle immediately spawns a goroutine per command,
// though, so the mailbox only serializes dispatch order, not execution -
// a slow Apply (e.g. a binary download) never blocks a concurrent Get or
// List sitting right behind it. The registry mutex is the actual
// serialization point for registry mutations, and MUST be held across
// the stop -> remove -> insert sequence in doApply to avoid orphaned
// controllers from interleaved Applies on the same key.
type Manager struct {
	bus     bus.Bus
	mailbox actor.MailBox[Command]

	mu       sync.Mutex
	registry map[string]*entry

	controllerOpts controller.Options
	logger         zerolog.Logger
}

// New returns an empty Manager with its command actor running.
func New(opts controller.Options) *Manager {
	mgr := &Manager{
		bus:            bus.New(),
		registry:       make(map[string]*entry),
		controllerOpts: opts,
		logger:         log.WithComponent("manager"),
	}
	mgr.mailbox, _ = actor.Start[Command](mgr)
	return mgr
}

// Bus returns the shared event bus backing every module's event bus, for
// callers (the metrics collector) that need to inspect subscriber counts.
func (mgr *Manager) Bus() bus.Bus {
	return mgr.bus
}

// Apply validates m, injects the core.hyperion.io/app label, and
// (re)starts its supervision, replacing any existing controller for the
// same key unconditionally. It returns the confirmation message
// "applied {key}".
func (mgr *Manager) Apply(m types.Module) (string, error) {
	reply := make(chan result, 1)
	_ = mgr.mailbox.Mail(Command{kind: cmdApply, module: m, replyResult: reply})
	r := <-reply
	return r.msg, r.err
}

// Delete stops and removes the module keyed by core.Name.
//
// This keys on the bare module name, not the full canonical key, exactly
// matching the upstream behavior: two modules sharing a name across
// different namespaces or versions will collide here. This is a known,
// documented defect carried intentionally rather than silently fixed —
// flag it before relying on Delete/Get/WatchData/WatchLog in a multi-
// namespace deployment.
func (mgr *Manager) Delete(core types.ModuleCore) (string, error) {
	reply := make(chan result, 1)
	_ = mgr.mailbox.Mail(Command{kind: cmdDelete, core: core, replyResult: reply})
	r := <-reply
	return r.msg, r.err
}

// Filter selects modules for List: exactly one of Core or Label is set.
type Filter struct {
	Core  *types.ModuleCore
	Label types.LabelSelector
}

// List streams every module matching filter to out, then closes out.
// Callers should range over out from a separate goroutine or be prepared
// to block.
func (mgr *Manager) List(filter Filter, out chan<- types.Module) {
	done := make(chan struct{}, 1)
	_ = mgr.mailbox.Mail(Command{kind: cmdList, filter: filter, out: out, replyDone: done})
	<-done
}

// Get returns the module keyed by core.Name (see Delete's doc comment
// regarding the name-only key collision risk), with its Status populated
// from the owning controller's live state.
func (mgr *Manager) Get(core types.ModuleCore) (types.Module, error) {
	reply := make(chan moduleResult, 1)
	_ = mgr.mailbox.Mail(Command{kind: cmdGet, core: core, replyModule: reply})
	r := <-reply
	return r.module, r.err
}

// WatchData streams the raw payload bytes of every Mail published on the
// topic "core.hyperion.io/app={core.Name}.data" to out (see Delete's doc
// comment regarding the name-only key). The auto-injected app label
// carries the full canonical key, so this is the module's own implicit
// data topic only when that key equals core.Name. The forwarding
// goroutine blocks while out is not drained; it closes out and
// unsubscribes only when the subscription channel is closed.
func (mgr *Manager) WatchData(core types.ModuleCore, out chan<- []byte) {
	done := make(chan struct{}, 1)
	_ = mgr.mailbox.Mail(Command{kind: cmdWatchData, core: core, raw: out, replyDone: done})
	<-done
}

// WatchLog streams the raw payload bytes of every Mail published on the
// topic "core.hyperion.io/app={core.Name}.log" to out, with the same
// name-only topic and forwarding behavior as WatchData.
func (mgr *Manager) WatchLog(core types.ModuleCore, out chan<- []byte) {
	done := make(chan struct{}, 1)
	_ = mgr.mailbox.Mail(Command{kind: cmdWatchLog, core: core, raw: out, replyDone: done})
	<-done
}

func (mgr *Manager) doApply(m types.Module) (string, error) {
	if m.Core.Namespace == "" && m.Core.Name == "" && m.Core.Version == "" {
		return "", ErrInvalidModule
	}
	key := m.Key()

	m.Metadata.Labels = types.WithAppLabel(m.Metadata.Labels, key)

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if existing, ok := mgr.registry[key]; ok {
		existing.controller.Stop()
		existing.eventBus.Cleanup()
		delete(mgr.registry, key)
	}

	ctrl := controller.New(key, mgr.controllerOpts)
	eb := bus.NewModuleEventBus(mgr.bus, m)
	ctrl.Run(m, eb)

	mgr.registry[key] = &entry{module: m, controller: ctrl, eventBus: eb}

	return fmt.Sprintf("applied %s", key), nil
}

func (mgr *Manager) doDelete(core types.ModuleCore) (string, error) {
	key := core.Name

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	e, ok := mgr.registry[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}

	e.controller.Stop()
	delete(mgr.registry, key)

	return fmt.Sprintf("deleted %s", key), nil
}

func (mgr *Manager) doList(filter Filter, out chan<- types.Module) {
	defer close(out)

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if filter.Core != nil {
		if e, ok := mgr.registry[filter.Core.Name]; ok {
			out <- e.module
		}
		return
	}

	for _, e := range mgr.registry {
		if filter.Label.Matches(e.module.Metadata.Labels) {
			out <- e.module
		}
	}
}

func (mgr *Manager) doGet(core types.ModuleCore) (types.Module, error) {
	key := core.Name

	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	e, ok := mgr.registry[key]
	if !ok {
		return types.Module{}, fmt.Errorf("%s: %w", key, ErrNotFound)
	}

	m := e.module
	m.Status = &types.ModuleStatus{Msg: e.controller.GetStatus()}
	return m, nil
}

func (mgr *Manager) doWatch(core types.ModuleCore, kind string, out chan<- []byte) {
	key := core.Name
	topic := types.Topic(types.AppLabel, key, kind)

	id, rx := mgr.bus.Subscribe(topic)

	go func() {
		defer mgr.bus.Unsubscribe(topic, id)
		defer close(out)

		for m := range rx {
			out <- m.Data
		}
	}()
}
