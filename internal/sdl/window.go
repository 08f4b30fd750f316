package sdl

import (
	"errors"
	"math"
	"strings"
)

// Window flags.
const (
	WindowFullscreen = 0x00000001
	WindowOpenGL     = 0x00000002
	WindowHidden     = 0x00000008
	WindowBorderless = 0x00000010
	WindowResizable  = 0x00000020
)

// Special window positions.
const (
	windowPosUndefined int32 = 0x1FFF0000
	windowPosCentered  int32 = 0x2FFF0000
)

// WindowContext ties a raw window handle to the subsystem that created it.
// It is the record a Window dereferences on every call; the field order and
// count are relied upon by code that aliases this type, so they must not be
// rearranged without updating the corresponding layout checks.
type WindowContext struct {
	subsystem *VideoSubsystem
	raw       RawWindow
}

// Window is an SDL window. Windows are created through WindowBuilder and
// are valid only on the thread that owns the video subsystem, except where
// a caller has arranged otherwise for the raw handle.
type Window struct {
	context *WindowContext
}

// Subsystem returns the video subsystem this window belongs to.
func (w *Window) Subsystem() *VideoSubsystem { return w.context.subsystem }

// Raw returns the raw window handle.
func (w *Window) Raw() RawWindow { return w.context.raw }

// Title returns the window title.
func (w *Window) Title() string { return lib.GetWindowTitle(w.context.raw) }

// SetTitle sets the window title. The title must not contain a NUL byte.
func (w *Window) SetTitle(title string) error {
	if strings.ContainsRune(title, 0) {
		return ErrTitleNul
	}
	lib.SetWindowTitle(w.context.raw, title)
	return nil
}

// Size reports the window size in screen coordinates.
func (w *Window) Size() (width, height int32) {
	lib.GetWindowSize(w.context.raw, &width, &height)
	return width, height
}

// DrawableSize reports the window's GL drawable size in pixels.
func (w *Window) DrawableSize() (width, height int32) {
	lib.GLGetDrawableSize(w.context.raw, &width, &height)
	return width, height
}

// Builder validation errors.
var (
	ErrTitleNul       = errors.New("sdl: window title contains NUL byte")
	ErrWidthOverflow  = errors.New("sdl: window width overflows int32")
	ErrHeightOverflow = errors.New("sdl: window height overflows int32")
)

// WindowBuilder accumulates window creation parameters.
type WindowBuilder struct {
	subsystem *VideoSubsystem
	title     string
	width     uint
	height    uint
	x, y      int32
	flags     uint32
}

// Window starts building a window with the given title and size. Dimensions
// are taken as uint so out-of-range values reach Build's validation instead
// of being truncated at the call site.
func (v *VideoSubsystem) Window(title string, width, height uint) *WindowBuilder {
	return &WindowBuilder{
		subsystem: v,
		title:     title,
		width:     width,
		height:    height,
		x:         windowPosUndefined,
		y:         windowPosUndefined,
	}
}

// PositionCentered centers the window on the screen.
func (b *WindowBuilder) PositionCentered() *WindowBuilder {
	b.x, b.y = windowPosCentered, windowPosCentered
	return b
}

// Position places the window at the given screen coordinates.
func (b *WindowBuilder) Position(x, y int32) *WindowBuilder {
	b.x, b.y = x, y
	return b
}

// OpenGL requests a window usable with an OpenGL context.
func (b *WindowBuilder) OpenGL() *WindowBuilder {
	b.flags |= WindowOpenGL
	return b
}

// Resizable requests a resizable window.
func (b *WindowBuilder) Resizable() *WindowBuilder {
	b.flags |= WindowResizable
	return b
}

// Hidden requests a window that is not initially shown.
func (b *WindowBuilder) Hidden() *WindowBuilder {
	b.flags |= WindowHidden
	return b
}

// Flags returns the accumulated window flags.
func (b *WindowBuilder) Flags() uint32 { return b.flags }

// Build creates the window.
func (b *WindowBuilder) Build() (*Window, error) {
	raw, err := b.buildRaw()
	if err != nil {
		return nil, err
	}
	return &Window{context: &WindowContext{subsystem: b.subsystem, raw: raw}}, nil
}

// BuildRaw creates the window and hands back the raw handle and the
// subsystem instead of wrapping them. The caller takes ownership of the
// handle and must destroy it with DestroyWindow.
func (b *WindowBuilder) BuildRaw() (RawWindow, *VideoSubsystem, error) {
	raw, err := b.buildRaw()
	if err != nil {
		return 0, nil, err
	}
	return raw, b.subsystem, nil
}

func (b *WindowBuilder) buildRaw() (RawWindow, error) {
	if strings.ContainsRune(b.title, 0) {
		return 0, ErrTitleNul
	}
	if b.width > math.MaxInt32 {
		return 0, ErrWidthOverflow
	}
	if b.height > math.MaxInt32 {
		return 0, ErrHeightOverflow
	}
	raw := lib.CreateWindow(b.title, b.x, b.y, int32(b.width), int32(b.height), b.flags)
	if raw == 0 {
		return 0, &Error{Call: "SDL_CreateWindow", Detail: lib.GetError()}
	}
	return raw, nil
}
