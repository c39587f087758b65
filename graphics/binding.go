// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

// Binding carries the native graphics handles an XR runtime needs to create
// a session for one backend. The runtime trusts the handles; nothing in this
// package can verify that they are alive or belong to the claimed backend.
type Binding interface {
	// Backend returns the backend the handles belong to.
	Backend() Backend
}

// VulkanBinding is the session binding for BackendVulkan.
type VulkanBinding struct {
	Instance         uintptr // VkInstance
	PhysicalDevice   uintptr // VkPhysicalDevice
	Device           uintptr // VkDevice
	QueueFamilyIndex uint32
	QueueIndex       uint32
}

// D3D11Binding is the session binding for BackendD3D11.
type D3D11Binding struct {
	Device uintptr // ID3D11Device*
}

// D3D12Binding is the session binding for BackendD3D12.
type D3D12Binding struct {
	Device uintptr // ID3D12Device*
	Queue  uintptr // ID3D12CommandQueue*
}

// OpenGLESBinding is the session binding for BackendOpenGLES (EGL).
type OpenGLESBinding struct {
	GetProcAddress uintptr // PFNEGLGETPROCADDRESSPROC
	Display        uintptr // EGLDisplay
	Config         uintptr // EGLConfig
	Context        uintptr // EGLContext
}

// MetalBinding is the session binding for BackendMetal.
type MetalBinding struct {
	CommandQueue uintptr // id<MTLCommandQueue>
}

func (VulkanBinding) Backend() Backend   { return BackendVulkan }
func (D3D11Binding) Backend() Backend    { return BackendD3D11 }
func (D3D12Binding) Backend() Backend    { return BackendD3D12 }
func (OpenGLESBinding) Backend() Backend { return BackendOpenGLES }
func (MetalBinding) Backend() Backend    { return BackendMetal }
