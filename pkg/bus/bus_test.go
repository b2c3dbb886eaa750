package bus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagacious-labs/hyperion/pkg/mail"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

func TestBusFanOut(t *testing.T) {
	b := New()

	const n = 5
	var chans []<-chan mail.Mail
	for i := 0; i < n; i++ {
		_, ch := b.Subscribe("topic")
		chans = append(chans, ch)
	}

	m := mail.New(mail.Data, []byte("payload"))
	b.Publish("topic", m)

	var wg sync.WaitGroup
	wg.Add(n)
	for _, ch := range chans {
		go func(ch <-chan mail.Mail) {
			defer wg.Done()
			select {
			case got := <-ch:
				assert.Equal(t, m.Data, got.Data)
			case <-time.After(time.Second):
				t.Error("timed out waiting for fan-out delivery")
			}
		}(ch)
	}
	wg.Wait()
}

func TestBusTopicGC(t *testing.T) {
	b := New()

	id, _ := b.Subscribe("topic")
	assert.Equal(t, 1, b.SubscriberCount("topic"))

	b.Unsubscribe("topic", id)
	assert.Equal(t, 0, b.SubscriberCount("topic"))
	assert.NotContains(t, b.Topics(), "topic")
}

func TestBusPublishToUnknownTopicIsNoop(t *testing.T) {
	b := New()
	assert.NotPanics(t, func() {
		b.Publish("nobody-subscribed", mail.New(mail.Log, nil))
	})
}

func TestModuleEventBusTopicDerivationAndCleanup(t *testing.T) {
	b := New()
	selector := types.LabelSelector{"c": "3"}
	m := types.Module{
		Core:     types.ModuleCore{Namespace: "n", Name: "m", Version: "v1"},
		Metadata: types.ModuleMetadata{Labels: map[string]string{"a": "1"}},
		Spec:     types.ModuleSpec{DataSource: &selector},
	}

	meb := NewModuleEventBus(b, m)

	logCh := make(chan mail.Mail, 1)
	meb.StreamLogs(logCh)
	// second call is a no-op; must not panic or double-subscribe
	meb.StreamLogs(logCh)

	dataCh := make(chan mail.Mail, 1)
	meb.StreamData(dataCh)

	inTx := make(chan mail.Mail, 1)
	meb.RecvData(inTx)

	require.Eventually(t, func() bool {
		return b.SubscriberCount("c=3.data") == 1
	}, time.Second, 10*time.Millisecond)

	meb.Cleanup()

	require.Eventually(t, func() bool {
		return b.SubscriberCount("c=3.data") == 0
	}, time.Second, 10*time.Millisecond)
}

func TestModuleEventBusStreamsPublishToDerivedTopics(t *testing.T) {
	b := New()
	m := types.Module{
		Metadata: types.ModuleMetadata{Labels: map[string]string{"a": "1"}},
	}
	meb := NewModuleEventBus(b, m)

	_, sub := b.Subscribe("a=1.data")

	dataCh := make(chan mail.Mail, 1)
	meb.StreamData(dataCh)

	payload := mail.New(mail.Data, []byte{0xAA, 0xBB})
	dataCh <- payload

	select {
	case got := <-sub:
		assert.Equal(t, payload.Data, got.Data)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for derived-topic publish")
	}
}
