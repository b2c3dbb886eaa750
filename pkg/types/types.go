// Package types carries Hyperion's domain model: the plain Go structs a
// Module is built from, independent of their protobuf wire representation
// in api/proto.
package types

import "fmt"

// AppLabel is the label key the Manager auto-injects into every module's
// metadata on Apply. Its value is the module's canonical key and anchors
// the module's implicit data/log topics.
const AppLabel = "core.hyperion.io/app"

// ModuleCore identifies a module uniquely: namespace, name, and version
// together form the canonical key.
type ModuleCore struct {
	Namespace string
	Name      string
	Version   string
}

// Key returns the canonical registry key "{namespace}/{name}/{version}".
func (c ModuleCore) Key() string {
	return fmt.Sprintf("%s/%s/%s", c.Namespace, c.Name, c.Version)
}

// Release describes a single platform build of a module's binary.
type Release struct {
	Location string
	SHA256   string
}

// ModuleReleases maps a supported (os, arch) pair to its Release. Keys are
// the platform identifiers resolved by Controller: "linux_amd64",
// "linux_arm64".
type ModuleReleases map[string]Release

const (
	// PlatformLinuxAMD64 is the release key for linux/amd64.
	PlatformLinuxAMD64 = "linux_amd64"
	// PlatformLinuxARM64 is the release key for linux/arm64.
	PlatformLinuxARM64 = "linux_arm64"
)

// ModuleMetadata carries labels and per-platform release information.
type ModuleMetadata struct {
	Labels   map[string]string
	Releases ModuleReleases
}

// LabelSelector is a set of label (key, value) pairs a module's labels
// must be a superset of to match.
type LabelSelector map[string]string

// ModuleSpec carries the module's runtime spec. Only the Label data
// source variant is modeled; every other field the original schema
// carries is opaque to the core and preserved verbatim in Opaque.
type ModuleSpec struct {
	// DataSource, when non-nil, selects the input topics this module
	// receives data on.
	DataSource *LabelSelector
	// Opaque holds any other spec fields the core does not interpret,
	// serialized as received so Get/List round-trip them unchanged.
	Opaque []byte
}

// ModuleStatus is computed on read from the owning Controller's state
// machine; it is never stored in the registry.
type ModuleStatus struct {
	Msg string
}

// Module is the full declarative unit the Manager accepts on Apply and
// returns from Get/List.
type Module struct {
	Core     ModuleCore
	Metadata ModuleMetadata
	Spec     ModuleSpec
	Status   *ModuleStatus
}

// Key returns the module's canonical registry key.
func (m Module) Key() string {
	return m.Core.Key()
}

// KindData and KindLog are the two topic suffixes a label maps to.
const (
	KindData = "data"
	KindLog  = "log"
)

// Topic renders the canonical topic name for a label (key, value) pair
// and kind: "{key}={value}.{kind}".
func Topic(key, value, kind string) string {
	return fmt.Sprintf("%s=%s.%s", key, value, kind)
}

// LogTopics returns one topic per label, kind "log".
func (m Module) LogTopics() []string {
	return labelTopics(m.Metadata.Labels, KindLog)
}

// DataTopics returns one topic per label, kind "data".
func (m Module) DataTopics() []string {
	return labelTopics(m.Metadata.Labels, KindData)
}

// InputTopics returns one data topic per entry in the module's data
// source label selector, or nil if the module has none.
func (m Module) InputTopics() []string {
	if m.Spec.DataSource == nil {
		return nil
	}
	return labelTopics(*m.Spec.DataSource, KindData)
}

func labelTopics(labels map[string]string, kind string) []string {
	topics := make([]string, 0, len(labels))
	for k, v := range labels {
		topics = append(topics, Topic(k, v, kind))
	}
	return topics
}

// WithAppLabel returns a copy of labels with AppLabel set to key, per the
// Manager's auto-annotation step on Apply.
func WithAppLabel(labels map[string]string, key string) map[string]string {
	out := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		out[k] = v
	}
	out[AppLabel] = key
	return out
}

// Matches reports whether labels is a superset of selector: every (k, v)
// pair in selector must appear in labels with an equal value. An empty
// selector matches everything.
func (s LabelSelector) Matches(labels map[string]string) bool {
	for k, v := range s {
		if labels[k] != v {
			return false
		}
	}
	return true
}
