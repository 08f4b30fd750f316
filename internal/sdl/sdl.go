// Package sdl is a small CGO-free binding to libSDL2, loaded at runtime with
// purego. It covers exactly the surface needed to create an OpenGL-capable
// window, manage its GL context and pump input events.
//
// SDL's video subsystem is single-threaded: the thread that calls Init owns
// window creation and the event queue. Init locks the calling goroutine to
// its OS thread to keep that contract visible on the Go side.
package sdl

import (
	"errors"
	"runtime"
)

// RawWindow is an opaque non-null *SDL_Window handle.
type RawWindow uintptr

// GLContext is an opaque non-null SDL_GLContext handle.
type GLContext uintptr

// Subsystem init flags.
const (
	initVideo  = 0x00000020
	initEvents = 0x00004000
)

// SDL represents the initialized library. There is at most one per process.
type SDL struct {
	pumped bool
}

// VideoSubsystem is a handle to SDL's video subsystem. It is valid only on
// the thread that called Init and must never be sent to another thread.
type VideoSubsystem struct {
	sdl *SDL
}

// Init initializes the video and event subsystems and locks the calling
// goroutine to its OS thread. Call from the main goroutine.
func Init() (*SDL, error) {
	runtime.LockOSThread()
	if err := ensureLib(); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	if lib.Init(initVideo|initEvents) != 0 {
		runtime.UnlockOSThread()
		return nil, &Error{Call: "SDL_Init", Detail: lib.GetError()}
	}
	return &SDL{}, nil
}

// Quit shuts the library down and unlocks the OS thread. No handle obtained
// from this SDL value may be used afterwards.
func (s *SDL) Quit() {
	lib.Quit()
	runtime.UnlockOSThread()
}

// Video returns the video subsystem handle.
func (s *SDL) Video() (*VideoSubsystem, error) {
	return &VideoSubsystem{sdl: s}, nil
}

// EventPump returns the event pump. SDL has a single event queue, so only
// one pump may be live at a time.
func (s *SDL) EventPump() (*EventPump, error) {
	if s.pumped {
		return nil, errors.New("sdl: event pump already obtained")
	}
	s.pumped = true
	return &EventPump{sdl: s}, nil
}

// GLReleaseCurrentContext unbinds whatever GL context is current on the
// calling thread.
func (v *VideoSubsystem) GLReleaseCurrentContext() error {
	if lib.GLMakeCurrent(0, 0) != 0 {
		return &Error{Call: "SDL_GL_MakeCurrent", Detail: lib.GetError()}
	}
	return nil
}

// Error is a failed SDL call together with SDL_GetError's diagnostic.
type Error struct {
	Call   string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "sdl: " + e.Call + " failed"
	}
	return "sdl: " + e.Call + ": " + e.Detail
}

// GetError returns the thread-local SDL error string.
func GetError() string { return lib.GetError() }

// ClearError clears the thread-local SDL error string.
func ClearError() { lib.ClearError() }

// DestroyWindow destroys a raw window handle.
func DestroyWindow(w RawWindow) { lib.DestroyWindow(w) }

// GLCreateContext creates a GL context for the window and makes it current
// on the calling thread. Returns 0 on failure; see GetError.
func GLCreateContext(w RawWindow) GLContext { return lib.GLCreateContext(w) }

// GLDeleteContext deletes a GL context.
func GLDeleteContext(c GLContext) { lib.GLDeleteContext(c) }

// GLMakeCurrent binds the context to the calling thread. Returns non-zero
// on failure; see GetError.
func GLMakeCurrent(w RawWindow, c GLContext) int32 { return lib.GLMakeCurrent(w, c) }

// GLGetCurrentContext returns the context current on the calling thread,
// or 0 if none is bound.
func GLGetCurrentContext() GLContext { return lib.GLGetCurrentContext() }

// GLSwapWindow presents the back buffer of an OpenGL window.
func GLSwapWindow(w RawWindow) { lib.GLSwapWindow(w) }

// GLGetProcAddress resolves a GL entry point in the current context.
// Returns 0 if the symbol is unknown.
func GLGetProcAddress(name string) uintptr { return lib.GLGetProcAddress(name) }

// GLDrawableSize reports the drawable size of an OpenGL window in pixels,
// which may differ from the window size on high-DPI displays.
func GLDrawableSize(w RawWindow) (width, height int32) {
	lib.GLGetDrawableSize(w, &width, &height)
	return width, height
}
