// Package render is a minimal rendering layer over a window-system
// backend. It owns no window: everything it needs from the windowing
// integration is expressed by the Backend interface, so the same context
// and frame machinery works against any window source, including test
// doubles.
//
// Nothing in this package is internally synchronized. A Context and the
// frames drawn from it belong to the single thread whose GL context is
// bound via the backend.
package render

// Backend is the capability set a windowing integration must provide for
// rendering to one of its windows.
type Backend interface {
	// SwapBuffers presents the back buffer. A non-nil error usually
	// indicates context loss and is returned as *SwapBuffersError.
	SwapBuffers() error

	// GetProcAddress resolves a GL entry point by name, returning 0 if
	// the symbol is unknown or the name is not representable.
	GetProcAddress(name string) uintptr

	// FramebufferDimensions reports the current drawable size in pixels.
	// A failed query reports (0, 0), indistinguishable from a zero-sized
	// window; callers must tolerate zero dimensions.
	FramebufferDimensions() (width, height uint32)

	// IsCurrent reports whether this backend's GL context is bound on the
	// calling thread.
	IsCurrent() bool

	// MakeCurrent binds this backend's GL context to the calling thread.
	// Failure is unrecoverable: implementations panic rather than return,
	// because every subsequent GL call assumes the bind succeeded. Do not
	// call speculatively.
	MakeCurrent()
}

// IncompatibleGLError reports that the resolved GL function set or version
// is insufficient for this package.
type IncompatibleGLError struct {
	Reason string
}

func (e *IncompatibleGLError) Error() string {
	return "render: incompatible OpenGL: " + e.Reason
}

// SwapBuffersError reports a failed buffer swap.
type SwapBuffersError struct {
	Detail string
}

func (e *SwapBuffersError) Error() string {
	if e.Detail == "" {
		return "render: swap buffers failed"
	}
	return "render: swap buffers: " + e.Detail
}
