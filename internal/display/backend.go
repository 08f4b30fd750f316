// Package display splits ownership of an SDL window between two threads:
// the main thread keeps the video subsystem and the event queue, while a
// single worker thread owns the window's GL context and renders through
// it.
//
// The split works in three steps. BuildBackend creates the window and its
// GL context on the main thread and releases the context so it is current
// on no thread. The resulting Backend is sent to the worker thread, which
// promotes it to a Display with BuildDisplay, re-acquiring the context as
// a side effect. The Display then stays on the worker thread for its whole
// life; its Window accessor hands out an aliased *sdl.Window so the worker
// can adjust window properties without touching the main thread.
package display

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spearman/sdlsplit/internal/gl"
	"github.com/spearman/sdlsplit/internal/render"
	"github.com/spearman/sdlsplit/internal/sdl"
)

// Backend owns a window and its GL context. It may be sent to another
// thread exactly once, before promotion: when BuildBackend returns, the
// context is current on no thread, so the receiving thread is free to
// re-acquire it.
//
// Once promoted into a Display the backend is shared and must stay on the
// promoting thread; teardown has to run where SDL window and GL calls
// remain meaningful.
type Backend struct {
	windowRaw    sdl.RawWindow
	glContextRaw sdl.GLContext

	// glFuncs is present from construction until promotion consumes it.
	glFuncs *gl.Functions

	teardown sync.Once
}

var _ render.Backend = (*Backend)(nil)

// SwapBuffers presents the back buffer. SDL_GL_SwapWindow reports no
// status, so failure is detected through the error string it leaves
// behind, which in practice means a lost context.
func (b *Backend) SwapBuffers() error {
	sdl.ClearError()
	sdl.GLSwapWindow(b.windowRaw)
	if detail := sdl.GetError(); detail != "" {
		return &render.SwapBuffersError{Detail: detail}
	}
	return nil
}

// GetProcAddress resolves a GL entry point in this backend's context.
// Names containing a NUL byte resolve to 0.
func (b *Backend) GetProcAddress(name string) uintptr {
	if strings.ContainsRune(name, 0) {
		return 0
	}
	return sdl.GLGetProcAddress(name)
}

// FramebufferDimensions reports the drawable size in pixels, or (0, 0) if
// the query fails.
func (b *Backend) FramebufferDimensions() (uint32, uint32) {
	width, height := sdl.GLDrawableSize(b.windowRaw)
	if width < 0 || height < 0 {
		return 0, 0
	}
	return uint32(width), uint32(height)
}

// IsCurrent reports whether this backend's GL context is bound on the
// calling thread.
func (b *Backend) IsCurrent() bool {
	return sdl.GLGetCurrentContext() == b.glContextRaw
}

// MakeCurrent binds this backend's GL context to the calling thread.
// Failure panics: the rendering pipeline assumes the bind succeeded, and
// continuing would issue GL calls against an undefined context.
func (b *Backend) MakeCurrent() {
	if sdl.GLMakeCurrent(b.windowRaw, b.glContextRaw) != 0 {
		panic(fmt.Sprintf("display: make current: %s", sdl.GetError()))
	}
}

// Close releases the backend's native resources without promoting it:
// the window is destroyed, then the GL context deleted. Use it when a
// built backend is abandoned or its promotion failed; after a successful
// promotion, Display.Close does the same teardown and the two share
// once-only semantics. Like Display.Close, it must run on a thread where
// SDL window and GL calls remain meaningful.
func (b *Backend) Close() {
	b.destroy()
}

// destroy tears the native resources down: window first, then GL context.
// Runs at most once, no matter how many Display clones call Close.
func (b *Backend) destroy() {
	b.teardown.Do(func() {
		sdl.DestroyWindow(b.windowRaw)
		sdl.GLDeleteContext(b.glContextRaw)
	})
}
