package sdl

// Funcs is the table of native entry points the binding calls. It is
// normally populated from libSDL2 by the platform loader, but tests may
// install their own table with Use to observe call order or inject
// failures without a display server.
type Funcs struct {
	Init       func(flags uint32) int32
	Quit       func()
	GetError   func() string
	ClearError func()

	CreateWindow   func(title string, x, y, w, h int32, flags uint32) RawWindow
	DestroyWindow  func(window RawWindow)
	GetWindowTitle func(window RawWindow) string
	SetWindowTitle func(window RawWindow, title string)
	GetWindowSize  func(window RawWindow, w, h *int32)

	GLCreateContext     func(window RawWindow) GLContext
	GLDeleteContext     func(ctx GLContext)
	GLMakeCurrent       func(window RawWindow, ctx GLContext) int32
	GLGetCurrentContext func() GLContext
	GLSwapWindow        func(window RawWindow)
	GLGetProcAddress    func(name string) uintptr
	GLGetDrawableSize   func(window RawWindow, w, h *int32)

	WaitEvent func(ev *RawEvent) int32
	PollEvent func(ev *RawEvent) int32
}

// lib is the table in effect. All wrapper functions and methods in this
// package dispatch through it.
var lib Funcs

// ensureLib loads libSDL2 unless a table is already installed.
func ensureLib() error {
	if lib.Init != nil {
		return nil
	}
	return load()
}

// Use installs a replacement function table and returns a function that
// restores the previous one. Intended for tests.
func Use(f Funcs) (restore func()) {
	prev := lib
	lib = f
	return func() { lib = prev }
}
