package actor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoMsg struct {
	data  string
	reply chan string
}

type echoActor struct{}

func (echoActor) Handle(msg echoMsg) {
	msg.reply <- msg.data
}

func TestActorEcho(t *testing.T) {
	box, stop := Start[echoMsg](echoActor{})
	defer stop()

	reply := make(chan string, 1)
	require.NoError(t, box.Mail(echoMsg{data: "echo", reply: reply}))

	select {
	case got := <-reply:
		assert.Equal(t, "echo", got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for actor reply")
	}
}

func TestActorSerializesMessages(t *testing.T) {
	var order []int
	done := make(chan struct{})

	recorder := &orderActor{order: &order, n: 5, done: done}
	box, stop := Start[int](recorder)
	defer stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, box.Mail(i))
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for all messages")
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

type orderActor struct {
	order *[]int
	n     int
	done  chan struct{}
}

func (a *orderActor) Handle(msg int) {
	*a.order = append(*a.order, msg)
	if len(*a.order) == a.n {
		close(a.done)
	}
}

func TestMailAfterStopFails(t *testing.T) {
	box, stop := Start[int](&orderActor{order: &[]int{}, n: -1, done: make(chan struct{})})
	stop()
	time.Sleep(10 * time.Millisecond)
	assert.Error(t, box.Mail(1))
}
