package manager

import "github.com/sagacious-labs/hyperion/pkg/types"

// commandKind tags which operation a Command carries. A Command mirrors
// the original's command enum: one variant per RPC, each pairing its
// request payload with the reply channel its caller is waiting on.
type commandKind int

const (
	cmdApply commandKind = iota
	cmdDelete
	cmdList
	cmdGet
	cmdWatchData
	cmdWatchLog
)

// Command is one request dispatched through the Manager's actor mailbox.
// Only the fields matching its kind are populated.
type Command struct {
	kind commandKind

	module types.Module
	core   types.ModuleCore
	filter Filter

	replyResult chan<- result
	replyModule chan<- moduleResult
	replyDone   chan<- struct{}

	out chan<- types.Module
	raw chan<- []byte
}

type result struct {
	msg string
	err error
}

type moduleResult struct {
	module types.Module
	err    error
}

// Handle dispatches cmd on its own goroutine, so a slow Apply (e.g. a
// binary download) never blocks a concurrent Get or List sitting right
// behind it in the mailbox. The mailbox only serializes the order
// commands are taken off the channel, not the work each one does.
func (mgr *Manager) Handle(cmd Command) {
	go func() {
		switch cmd.kind {
		case cmdApply:
			msg, err := mgr.doApply(cmd.module)
			cmd.replyResult <- result{msg: msg, err: err}
		case cmdDelete:
			msg, err := mgr.doDelete(cmd.core)
			cmd.replyResult <- result{msg: msg, err: err}
		case cmdList:
			mgr.doList(cmd.filter, cmd.out)
			cmd.replyDone <- struct{}{}
		case cmdGet:
			m, err := mgr.doGet(cmd.core)
			cmd.replyModule <- moduleResult{module: m, err: err}
		case cmdWatchData:
			mgr.doWatch(cmd.core, types.KindData, cmd.raw)
			cmd.replyDone <- struct{}{}
		case cmdWatchLog:
			mgr.doWatch(cmd.core, types.KindLog, cmd.raw)
			cmd.replyDone <- struct{}{}
		}
	}()
}
