package manager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagacious-labs/hyperion/pkg/controller"
	"github.com/sagacious-labs/hyperion/pkg/mail"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

func moduleWithLocation(ns, name, version, location string, labels map[string]string) types.Module {
	return types.Module{
		Core: types.ModuleCore{Namespace: ns, Name: name, Version: version},
		Metadata: types.ModuleMetadata{
			Labels: labels,
			Releases: types.ModuleReleases{
				types.PlatformLinuxAMD64: {Location: location, SHA256: ""},
				types.PlatformLinuxARM64: {Location: location, SHA256: ""},
			},
		},
	}
}

// S1 — Apply+Get.
func TestApplyThenGet(t *testing.T) {
	mgr := New(controller.Options{})
	m := moduleWithLocation("n", "m", "v1", "file:///bin/true", map[string]string{})

	msg, err := mgr.Apply(m)
	require.NoError(t, err)
	assert.Equal(t, "applied n/m/v1", msg)

	got, err := mgr.Get(types.ModuleCore{Name: "m"})
	require.NoError(t, err)

	assert.Equal(t, "n/m/v1", got.Metadata.Labels[types.AppLabel])
	require.NotNil(t, got.Status)
	assert.Contains(t, []string{"Init", "Running", "Exit: 0"}, got.Status.Msg)
}

// S2 — Apply replaces: only one entry remains for the key.
func TestApplyReplaces(t *testing.T) {
	mgr := New(controller.Options{})

	_, err := mgr.Apply(moduleWithLocation("n", "m", "v1", "file:///bin/true", map[string]string{}))
	require.NoError(t, err)

	_, err = mgr.Apply(moduleWithLocation("n", "m", "v1", "file:///bin/false", map[string]string{}))
	require.NoError(t, err)

	assert.Len(t, mgr.registry, 1)
}

// S3 — Delete not-found.
func TestDeleteNotFound(t *testing.T) {
	mgr := New(controller.Options{})

	_, err := mgr.Delete(types.ModuleCore{Name: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// S4 — List label filter.
func TestListLabelFilter(t *testing.T) {
	mgr := New(controller.Options{})

	_, err := mgr.Apply(moduleWithLocation("n", "prod-mod", "v1", "file:///bin/true", map[string]string{"env": "prod"}))
	require.NoError(t, err)
	_, err = mgr.Apply(moduleWithLocation("n", "dev-mod", "v1", "file:///bin/true", map[string]string{"env": "dev"}))
	require.NoError(t, err)

	out := make(chan types.Module, 4)
	mgr.List(Filter{Label: types.LabelSelector{"env": "prod"}}, out)

	var got []types.Module
	for m := range out {
		got = append(got, m)
	}

	require.Len(t, got, 1)
	assert.Equal(t, "prod-mod", got[0].Core.Name)
}

// S5 — WatchData fan-out: two concurrent subscribers each receive a frame
// published on the module's name-keyed data topic.
func TestWatchDataFanOut(t *testing.T) {
	mgr := New(controller.Options{})

	_, err := mgr.Apply(moduleWithLocation("n", "m", "v1", "file:///bin/true", map[string]string{}))
	require.NoError(t, err)

	topic := types.Topic(types.AppLabel, "m", types.KindData)

	out1 := make(chan []byte, 1)
	out2 := make(chan []byte, 1)
	mgr.WatchData(types.ModuleCore{Name: "m"}, out1)
	mgr.WatchData(types.ModuleCore{Name: "m"}, out2)

	require.Eventually(t, func() bool {
		return mgr.bus.SubscriberCount(topic) == 2
	}, time.Second, 10*time.Millisecond)

	payload := []byte{0xAA, 0xBB}
	mgr.bus.Publish(topic, mail.New(mail.Data, payload))

	select {
	case got := <-out1:
		assert.Equal(t, payload, got)
	case <-time.After(time.Second):
		t.Fatal("subscriber 1 timed out")
	}
	select {
	case got := <-out2:
		assert.Equal(t, payload, got)
	case <-time.After(time.Second):
		t.Fatal("subscriber 2 timed out")
	}
}

// S6 — Backoff on bad binary.
func TestApplyBadBinaryEntersCrashLoopBackoff(t *testing.T) {
	mgr := New(controller.Options{})

	_, err := mgr.Apply(moduleWithLocation("n", "m", "v1", "file:///does/not/exist", map[string]string{}))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := mgr.Get(types.ModuleCore{Name: "m"})
		return err == nil && got.Status != nil && got.Status.Msg == "InitCrashLoopBackoff"
	}, 2*time.Second, 10*time.Millisecond)
}
