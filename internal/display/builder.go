package display

import (
	"github.com/spearman/sdlsplit/internal/gl"
	"github.com/spearman/sdlsplit/internal/sdl"
)

// BuildBackend builds the window described by the builder together with a
// GL context and returns them as a transferable Backend. The OpenGL window
// flag is forced regardless of what the builder was configured with.
//
// On success the GL context has been released from the calling thread, so
// the Backend can be handed to the thread that will render.
//
// On failure nothing is leaked: a window whose context creation failed is
// destroyed before the error is returned.
//
// BuildBackend panics if the impostor layout checks fail, since building
// any window would eventually alias memory incorrectly.
func BuildBackend(b *sdl.WindowBuilder) (*Backend, error) {
	checkLayout()

	b.OpenGL()
	windowRaw, subsystem, err := b.BuildRaw()
	if err != nil {
		return nil, &WindowBuildError{Err: err}
	}

	// Creating the context also makes it current on this thread, which is
	// exactly what resolving GL symbols below requires.
	glContextRaw := sdl.GLCreateContext(windowRaw)
	if glContextRaw == 0 {
		detail := sdl.GetError()
		sdl.DestroyWindow(windowRaw)
		return nil, &ContextCreationError{Detail: detail}
	}

	backend := &Backend{windowRaw: windowRaw, glContextRaw: glContextRaw}
	backend.glFuncs = gl.Load(backend.GetProcAddress)

	if err := subsystem.GLReleaseCurrentContext(); err != nil {
		// A context that cannot be released would stay bound to the main
		// thread, breaking the handoff contract for every later call.
		panic("display: release GL context: " + err.Error())
	}
	return backend, nil
}
