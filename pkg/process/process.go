// Package process spawns a module's child binary and pipes framed Mail
// between the Controller and the child's stdin/stdout.
package process

import (
	"errors"
	"io"
	"os/exec"
	"syscall"

	"github.com/sagacious-labs/hyperion/pkg/log"
	"github.com/sagacious-labs/hyperion/pkg/mail"
)

// ErrNoPID is returned by Terminate when the child's process ID cannot be
// determined (the process was never started).
var ErrNoPID = errors.New("process: child process id unavailable")

// Process owns one spawned child: its command handle and the two detached
// goroutines piping Mail frames over its stdin/stdout.
type Process struct {
	cmd *exec.Cmd
}

// New spawns bin as a child process with stdin/stdout piped and stderr
// discarded. It detaches a reader goroutine forwarding decoded Mail frames
// from the child's stdout to stdoutSink, and a writer goroutine encoding
// every Mail read from stdinSource to the child's stdin until stdinSource
// is closed.
func New(bin string, stdoutSink chan<- mail.Mail, stdinSource <-chan mail.Mail) (*Process, error) {
	cmd := exec.Command(bin)

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	log.WithComponent("process").Debug().Str("bin", bin).Msg("spun up new process")

	go observe(stdoutPipe, stdoutSink)
	go write(stdinPipe, stdinSource)

	return &Process{cmd: cmd}, nil
}

// WaitOnChild blocks until the child exits and returns its exit code.
func (p *Process) WaitOnChild() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return p.cmd.ProcessState.ExitCode(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// Terminate sends SIGINT to the child, giving it a chance to exit
// cleanly. It does not wait for the child to exit: cmd.Wait may only be
// called once, and WaitOnChild is expected to already be running in a
// caller's goroutine to observe the resulting exit status. Terminate is
// preferred over an unconditional kill because it gives the child a
// chance to clean up.
func (p *Process) Terminate() error {
	if p.cmd.Process == nil {
		return ErrNoPID
	}
	return p.cmd.Process.Signal(syscall.SIGINT)
}

// Kill forcibly kills the child, the equivalent of kill_on_drop: callers
// should invoke this if a Process is discarded without an explicit Wait or
// Terminate.
func (p *Process) Kill() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

func observe(pipe io.ReadCloser, sink chan<- mail.Mail) {
	logger := log.WithComponent("process")
	reader := mail.NewReader(pipe)

	for {
		m, err := reader.ReadMail()
		if err != nil {
			logger.Error().Err(err).Msg("failed to observe process stream")
			return
		}

		if m.IsEOF() {
			logger.Debug().Msg("stopping observation, child closed stdout")
			return
		}

		logger.Debug().Uint8("type", m.Type).Uint64("size", m.Size).Msg("received data")
		sink <- m
	}
}

func write(pipe io.WriteCloser, source <-chan mail.Mail) {
	defer pipe.Close()
	for m := range source {
		if _, err := m.WriteTo(pipe); err != nil {
			log.WithComponent("process").Error().Err(err).Msg("failed to write mail to child stdin")
		}
	}
}
