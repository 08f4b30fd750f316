package display

import (
	"github.com/spearman/sdlsplit/internal/render"
	"github.com/spearman/sdlsplit/internal/sdl"
)

// Display is the steady-state rendering handle: a rendering context, the
// backend it draws through and the window impostor, all shared. It is
// confined to the thread that promoted the Backend and must not be sent
// elsewhere.
type Display struct {
	context  *render.Context
	backend  *Backend
	impostor *windowImpostor
}

// BuildDisplay promotes the backend into a Display, re-acquiring the GL
// context on the calling thread and validating the resolved GL functions.
// Frame operations re-check that the context is still current.
//
// Promotion consumes the backend's GL function set; promoting a backend
// twice panics. A failed promotion leaves the backend intact for another
// attempt.
func (b *Backend) BuildDisplay() (*Display, error) {
	return b.buildDisplay(true)
}

// BuildDisplayUnchecked is BuildDisplay without per-operation
// current-context checks. The caller guarantees no other context is ever
// made current on the rendering thread.
func (b *Backend) BuildDisplayUnchecked() (*Display, error) {
	return b.buildDisplay(false)
}

func (b *Backend) buildDisplay(checkCurrent bool) (*Display, error) {
	if b.glFuncs == nil {
		panic("display: backend already promoted")
	}
	funcs := b.glFuncs
	b.glFuncs = nil

	ctx, err := render.NewContext(b, funcs, checkCurrent)
	if err != nil {
		b.glFuncs = funcs
		return nil, err
	}
	return &Display{
		context:  ctx,
		backend:  b,
		impostor: newWindowImpostor(b.windowRaw),
	}, nil
}

// Window returns a reference to the window via the impostor alias.
//
// The reference is valid only until Close and only on the thread owning
// the display, and it does not contain a real video subsystem: methods
// that reach through the subsystem — Subsystem(), and through it anything
// that would build a new window — must not be called. Methods touching
// only the window itself (Title, SetTitle, Size, DrawableSize) are safe.
func (d *Display) Window() *sdl.Window {
	return d.impostor.asWindow()
}

// Draw starts a frame sized to the backend's current framebuffer
// dimensions. Finishing the frame swaps immediately.
func (d *Display) Draw() *render.Frame {
	width, height := d.backend.FramebufferDimensions()
	return render.NewFrame(d.context, width, height)
}

// Context returns the shared rendering context.
func (d *Display) Context() *render.Context { return d.context }

// Clone returns a display sharing this display's context, backend and
// impostor. Clones are views of one window, not new windows; Close on any
// of them tears the shared resources down for all.
func (d *Display) Clone() *Display {
	return &Display{context: d.context, backend: d.backend, impostor: d.impostor}
}

// Close destroys the window and then deletes the GL context, in that
// order. It is idempotent across clones. Any *sdl.Window reference
// obtained from Window is invalid afterwards.
func (d *Display) Close() {
	d.backend.destroy()
}
