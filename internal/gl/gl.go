// Package gl resolves the OpenGL entry points used by the render package.
//
// Unlike bindings that dlopen libGL themselves, this package resolves
// symbols through a caller-supplied proc-address function, because GL
// symbol resolution is only meaningful against the context that will
// execute the calls.
package gl

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

const (
	// ColorBufferBit is a mask used with Clear to clear the color buffer.
	ColorBufferBit = 0x00004000
	// DepthBufferBit is a mask used with Clear to clear the depth buffer.
	DepthBufferBit = 0x00000100
	// StencilBufferBit is a mask used with Clear to clear the stencil buffer.
	StencilBufferBit = 0x00000400

	// ScissorTest restricts drawing to the scissor rectangle.
	ScissorTest = 0x0C11

	// GetString parameters.
	//
	// Vendor returns the company responsible for the GL implementation.
	Vendor = 0x1F00
	// Renderer returns the name of the renderer.
	Renderer = 0x1F01
	// Version returns the GL version string of the current context.
	Version = 0x1F02

	// NoError is returned by GetError when no error has been recorded.
	NoError = 0
)

// Functions is the set of resolved GL entry points. Fields left nil were
// not resolvable in the current context; Complete reports whether the set
// is sufficient for rendering.
type Functions struct {
	Clear        func(mask uint32)
	ClearColor   func(r, g, b, a float32)
	ClearDepth   func(depth float64)
	ClearStencil func(s int32)
	Viewport     func(x, y, width, height int32)
	Scissor      func(x, y, width, height int32)
	Enable       func(cap uint32)
	Disable      func(cap uint32)
	Flush        func()
	GetError     func() uint32
	GetString    func(name uint32) *byte
}

// Complete reports whether every entry point was resolved.
func (f *Functions) Complete() bool {
	return f.Clear != nil &&
		f.ClearColor != nil &&
		f.ClearDepth != nil &&
		f.ClearStencil != nil &&
		f.Viewport != nil &&
		f.Scissor != nil &&
		f.Enable != nil &&
		f.Disable != nil &&
		f.Flush != nil &&
		f.GetError != nil &&
		f.GetString != nil
}

// Load resolves all entry points through getProc. Symbols that resolve to
// 0 are left nil.
func Load(getProc func(name string) uintptr) *Functions {
	f := &Functions{}
	resolve := func(fptr interface{}, name string) {
		addr := getProc(name)
		if addr == 0 {
			return
		}
		purego.RegisterFunc(fptr, addr)
	}
	resolve(&f.Clear, "glClear")
	resolve(&f.ClearColor, "glClearColor")
	resolve(&f.ClearDepth, "glClearDepth")
	resolve(&f.ClearStencil, "glClearStencil")
	resolve(&f.Viewport, "glViewport")
	resolve(&f.Scissor, "glScissor")
	resolve(&f.Enable, "glEnable")
	resolve(&f.Disable, "glDisable")
	resolve(&f.Flush, "glFlush")
	resolve(&f.GetError, "glGetError")
	resolve(&f.GetString, "glGetString")
	return f
}

// String converts a NUL-terminated byte pointer returned by GetString into
// a Go string. Returns "" for nil.
func String(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}
