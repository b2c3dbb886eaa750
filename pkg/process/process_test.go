package process

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagacious-labs/hyperion/pkg/mail"
)

// TestMain re-execs this test binary as a tiny echo-over-mail helper when
// invoked with HYPERION_TEST_HELPER=echo, the standard Go idiom for
// exercising real child-process I/O in tests without shipping fixture
// binaries.
func TestMain(m *testing.M) {
	switch os.Getenv("HYPERION_TEST_HELPER") {
	case "echo":
		runEchoHelper()
		os.Exit(0)
	case "exit1":
		os.Exit(1)
	case "sigint-ok":
		runSigintHelper()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func runEchoHelper() {
	reader := mail.NewReader(os.Stdin)
	for {
		in, err := reader.ReadMail()
		if err != nil || in.IsEOF() {
			return
		}
		_, _ = in.WriteTo(os.Stdout)
	}
}

func runSigintHelper() {
	// Blocks until the parent delivers SIGINT, then exits cleanly.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT)
	<-ch
}

func helperCommand(helper string) string {
	return os.Args[0]
}

func helperEnv(helper string) []string {
	return append(os.Environ(), "HYPERION_TEST_HELPER="+helper)
}

func TestProcessEchoesMail(t *testing.T) {
	bin := helperCommand("echo")

	stdout := make(chan mail.Mail, 8)
	stdin := make(chan mail.Mail, 8)

	p, err := newWithEnv(bin, helperEnv("echo"), stdout, stdin)
	require.NoError(t, err)

	payload := mail.New(mail.Data, []byte("ping"))
	stdin <- payload

	select {
	case got := <-stdout:
		assert.Equal(t, payload.Data, got.Data)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for echoed mail")
	}

	close(stdin)
	_, _ = p.WaitOnChild()
}

func TestProcessWaitOnChildExitCode(t *testing.T) {
	bin := helperCommand("exit1")
	stdout := make(chan mail.Mail, 1)
	stdin := make(chan mail.Mail, 1)

	p, err := newWithEnv(bin, helperEnv("exit1"), stdout, stdin)
	require.NoError(t, err)

	code, err := p.WaitOnChild()
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestProcessTerminateSendsSigint(t *testing.T) {
	bin := helperCommand("sigint-ok")
	stdout := make(chan mail.Mail, 1)
	stdin := make(chan mail.Mail, 1)

	p, err := newWithEnv(bin, helperEnv("sigint-ok"), stdout, stdin)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		_, _ = p.WaitOnChild()
		close(done)
	}()

	require.NoError(t, p.Terminate())

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for terminate to observe child exit")
	}
}

// newWithEnv is a test-only constructor mirroring New but allowing the
// helper-selection environment variable to be injected.
func newWithEnv(bin string, env []string, stdoutSink chan mail.Mail, stdinSource chan mail.Mail) (*Process, error) {
	cmd := exec.Command(bin)
	cmd.Env = env

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

	go observe(stdoutPipe, stdoutSink)
	go write(stdinPipe, stdinSource)

	return &Process{cmd: cmd}, nil
}
