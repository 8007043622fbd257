// Package gpuprobe detects WebGPU adapter availability. The GPU execution
// space never runs kernels; this package exists so dispatch errors and the
// CLI can report whether a device is present at all.
package gpuprobe

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Available checks if a WebGPU adapter can be acquired on this system.
func Available() (available bool) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// AdapterInfo returns information about the default GPU adapter.
func AdapterInfo() (info *wgpu.AdapterInfo, err error) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("gpuprobe: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, adapterErr := instance.RequestAdapter(nil)
	if adapterErr != nil {
		return nil, fmt.Errorf("gpuprobe: no adapters available: %w", adapterErr)
	}
	defer adapter.Release()

	ai := adapter.GetInfo()
	return &ai, nil
}
