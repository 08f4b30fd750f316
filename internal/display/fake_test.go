package display

import (
	"fmt"

	"github.com/spearman/sdlsplit/internal/gl"
	"github.com/spearman/sdlsplit/internal/sdl"
)

// fakeSDL is an instrumented stand-in for libSDL2. It records the order of
// native calls and lets tests inject failures.
type fakeSDL struct {
	calls  []string
	titles map[sdl.RawWindow]string

	nextWindow  sdl.RawWindow
	nextContext sdl.GLContext
	current     sdl.GLContext

	drawableW, drawableH int32

	failCreateWindow  bool
	failCreateContext bool
	failMakeCurrent   bool
	swapError         string

	lastError string

	procs map[string]uintptr
}

func newFakeSDL() *fakeSDL {
	return &fakeSDL{
		titles:      map[sdl.RawWindow]string{},
		nextWindow:  0x1000,
		nextContext: 0x2000,
		drawableW:   320,
		drawableH:   240,
	}
}

func (f *fakeSDL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeSDL) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeSDL) funcs() sdl.Funcs {
	return sdl.Funcs{
		Init:       func(flags uint32) int32 { return 0 },
		Quit:       func() {},
		GetError:   func() string { return f.lastError },
		ClearError: func() { f.lastError = "" },

		CreateWindow: func(title string, x, y, w, h int32, flags uint32) sdl.RawWindow {
			f.record("CreateWindow(%q, flags=%#x)", title, flags)
			if f.failCreateWindow {
				f.lastError = "no display"
				return 0
			}
			win := f.nextWindow
			f.nextWindow++
			f.titles[win] = title
			return win
		},
		DestroyWindow: func(w sdl.RawWindow) {
			f.record("DestroyWindow")
			delete(f.titles, w)
		},
		GetWindowTitle: func(w sdl.RawWindow) string { return f.titles[w] },
		SetWindowTitle: func(w sdl.RawWindow, title string) { f.titles[w] = title },
		GetWindowSize: func(win sdl.RawWindow, w, h *int32) {
			*w, *h = f.drawableW, f.drawableH
		},

		GLCreateContext: func(w sdl.RawWindow) sdl.GLContext {
			f.record("GLCreateContext")
			if f.failCreateContext {
				f.lastError = "no GL driver"
				return 0
			}
			ctx := f.nextContext
			f.nextContext++
			f.current = ctx
			return ctx
		},
		GLDeleteContext: func(ctx sdl.GLContext) {
			f.record("GLDeleteContext")
			if f.current == ctx {
				f.current = 0
			}
		},
		GLMakeCurrent: func(w sdl.RawWindow, ctx sdl.GLContext) int32 {
			f.record("GLMakeCurrent(%#x)", uintptr(ctx))
			if f.failMakeCurrent {
				f.lastError = "make current refused"
				return -1
			}
			f.current = ctx
			return 0
		},
		GLGetCurrentContext: func() sdl.GLContext { return f.current },
		GLSwapWindow: func(w sdl.RawWindow) {
			f.record("GLSwapWindow")
			if f.swapError != "" {
				f.lastError = f.swapError
			}
		},
		GLGetProcAddress: func(name string) uintptr {
			return f.procs[name]
		},
		GLGetDrawableSize: func(win sdl.RawWindow, w, h *int32) {
			*w, *h = f.drawableW, f.drawableH
		},

		WaitEvent: func(ev *sdl.RawEvent) int32 { return 0 },
		PollEvent: func(ev *sdl.RawEvent) int32 { return 0 },
	}
}

// testGLFuncs is a complete GL function set backed by Go closures, enough
// for context validation and frame clears.
func testGLFuncs() *gl.Functions {
	version := append([]byte("2.1 test"), 0)
	return &gl.Functions{
		Clear:        func(mask uint32) {},
		ClearColor:   func(r, g, b, a float32) {},
		ClearDepth:   func(depth float64) {},
		ClearStencil: func(s int32) {},
		Viewport:     func(x, y, w, h int32) {},
		Scissor:      func(x, y, w, h int32) {},
		Enable:       func(cap uint32) {},
		Disable:      func(cap uint32) {},
		Flush:        func() {},
		GetError:     func() uint32 { return gl.NoError },
		GetString: func(name uint32) *byte {
			if name == gl.Version {
				return &version[0]
			}
			return nil
		},
	}
}

// newTestBackend builds a Backend as BuildBackend would, but with GL
// functions injected instead of resolved, since no real context exists.
func newTestBackend(f *fakeSDL) *Backend {
	win := f.nextWindow
	f.nextWindow++
	f.titles[win] = "test window"
	ctx := f.nextContext
	f.nextContext++
	return &Backend{
		windowRaw:    win,
		glContextRaw: ctx,
		glFuncs:      testGLFuncs(),
	}
}
