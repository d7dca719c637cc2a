// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backing

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The backing store never creates a GPU device of its own: a host
// framework (e.g. gogpu.App) that wants layer surfaces in its preferred
// texture format attaches its device through [WithDevice]. Surfaces
// then carry that format, and [Surface.Descriptor] describes the
// matching texture for upload.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// integration point a backing-specific name while staying compatible
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only compositing where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns empty adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// TextureDescriptor describes parameters for creating a texture that
// mirrors a layer surface. This follows the WebGPU
// GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// MipLevelCount is the number of mipmap levels.
	// Layer surfaces use 1: compositing never minifies.
	MipLevelCount uint32

	// SampleCount is the number of samples for multisampling.
	// Layer surfaces use 1: they hold already-rendered content.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be used in a texture binding.
	TextureUsageTextureBinding

	// TextureUsageRenderAttachment allows the texture to be used as a render attachment.
	TextureUsageRenderAttachment
)

// Descriptor returns the texture descriptor matching this surface, for
// hosts uploading layer content to the GPU. Surfaces are written on the
// CPU and sampled during composition, so the usage is copy-destination
// plus texture-binding.
func (s *Surface) Descriptor() TextureDescriptor {
	return TextureDescriptor{
		Width:         uint32(s.Width()),  //nolint:gosec // G115: bounded by MaxSurfaceDim
		Height:        uint32(s.Height()), //nolint:gosec // G115: bounded by MaxSurfaceDim
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        s.format,
		Usage:         TextureUsageCopyDst | TextureUsageTextureBinding,
	}
}
