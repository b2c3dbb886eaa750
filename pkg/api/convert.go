package api

import (
	"github.com/sagacious-labs/hyperion/api/proto"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

func coreToProto(c types.ModuleCore) *proto.ModuleCore {
	return &proto.ModuleCore{
		Namespace: c.Namespace,
		Name:      c.Name,
		Version:   c.Version,
	}
}

func protoToCore(c *proto.ModuleCore) types.ModuleCore {
	if c == nil {
		return types.ModuleCore{}
	}
	return types.ModuleCore{
		Namespace: c.Namespace,
		Name:      c.Name,
		Version:   c.Version,
	}
}

func releaseToProto(r types.Release) *proto.ModuleRelease {
	return &proto.ModuleRelease{Location: r.Location, Sha256: r.SHA256}
}

func protoToRelease(r *proto.ModuleRelease) types.Release {
	if r == nil {
		return types.Release{}
	}
	return types.Release{Location: r.Location, SHA256: r.Sha256}
}

func metadataToProto(m types.ModuleMetadata) *proto.ModuleMetadata {
	releases := &proto.ModuleReleases{}
	if r, ok := m.Releases[types.PlatformLinuxAMD64]; ok {
		releases.LinuxAmd64 = releaseToProto(r)
	}
	if r, ok := m.Releases[types.PlatformLinuxARM64]; ok {
		releases.LinuxArm64 = releaseToProto(r)
	}
	return &proto.ModuleMetadata{
		Labels:  m.Labels,
		Release: releases,
	}
}

func protoToMetadata(m *proto.ModuleMetadata) types.ModuleMetadata {
	if m == nil {
		return types.ModuleMetadata{}
	}
	releases := make(types.ModuleReleases, 2)
	if rel := m.Release; rel != nil {
		if rel.LinuxAmd64 != nil {
			releases[types.PlatformLinuxAMD64] = protoToRelease(rel.LinuxAmd64)
		}
		if rel.LinuxArm64 != nil {
			releases[types.PlatformLinuxARM64] = protoToRelease(rel.LinuxArm64)
		}
	}
	return types.ModuleMetadata{
		Labels:   m.Labels,
		Releases: releases,
	}
}

func labelSelectorToProto(s types.LabelSelector) *proto.LabelSelector {
	return &proto.LabelSelector{Selector: map[string]string(s)}
}

func protoToLabelSelector(s *proto.LabelSelector) types.LabelSelector {
	if s == nil {
		return nil
	}
	return types.LabelSelector(s.Selector)
}

func specToProto(s types.ModuleSpec) *proto.ModuleSpec {
	out := &proto.ModuleSpec{Opaque: s.Opaque}
	if s.DataSource != nil {
		out.DataSource = &proto.ModuleSpec_Label{Label: labelSelectorToProto(*s.DataSource)}
	}
	return out
}

func protoToSpec(s *proto.ModuleSpec) types.ModuleSpec {
	if s == nil {
		return types.ModuleSpec{}
	}
	out := types.ModuleSpec{Opaque: s.Opaque}
	if label := s.GetLabel(); label != nil {
		sel := protoToLabelSelector(label)
		out.DataSource = &sel
	}
	return out
}

func statusToProto(s *types.ModuleStatus) *proto.ModuleStatus {
	if s == nil {
		return nil
	}
	return &proto.ModuleStatus{Msg: s.Msg}
}

func moduleToProto(m types.Module) *proto.Module {
	return &proto.Module{
		Core:     coreToProto(m.Core),
		Metadata: metadataToProto(m.Metadata),
		Spec:     specToProto(m.Spec),
		Status:   statusToProto(m.Status),
	}
}

func protoToModule(m *proto.Module) types.Module {
	if m == nil {
		return types.Module{}
	}
	return types.Module{
		Core:     protoToCore(m.Core),
		Metadata: protoToMetadata(m.Metadata),
		Spec:     protoToSpec(m.Spec),
	}
}
