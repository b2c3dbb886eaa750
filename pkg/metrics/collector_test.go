package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagacious-labs/hyperion/pkg/controller"
	"github.com/sagacious-labs/hyperion/pkg/manager"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

func TestCollectorPopulatesModulesTotal(t *testing.T) {
	mgr := manager.New(controller.Options{})

	_, err := mgr.Apply(types.Module{
		Core: types.ModuleCore{Namespace: "n", Name: "m", Version: "v1"},
		Metadata: types.ModuleMetadata{
			Labels: map[string]string{},
			Releases: types.ModuleReleases{
				types.PlatformLinuxAMD64: {Location: "file:///bin/true"},
				types.PlatformLinuxARM64: {Location: "file:///bin/true"},
			},
		},
	})
	require.NoError(t, err)

	c := NewCollector(mgr)
	c.collect()

	metric, err := ModulesTotal.GetMetricWithLabelValues("Running")
	if err != nil {
		metric, err = ModulesTotal.GetMetricWithLabelValues("Init")
	}
	require.NoError(t, err)
	assert.NotNil(t, metric)
}
