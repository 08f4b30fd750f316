package display

import (
	"fmt"
	"unsafe"

	"github.com/spearman/sdlsplit/internal/sdl"
)

// windowContextImpostor mirrors sdl.WindowContext field for field. The
// subsystem slot is filled with a drop token — a pointer that occupies the
// layout position of a *sdl.VideoSubsystem but never refers to one — and
// the raw slot holds the real window handle.
//
// A reference obtained by reinterpreting this memory as an sdl.Window
// supports every method that only touches the window's own fields, such
// as Title, SetTitle and Size. Methods that reach through the subsystem,
// above all Subsystem() and anything that would create a new window, must
// not be called: the subsystem slot does not hold a real subsystem.
type windowContextImpostor struct {
	subsystem *struct{}
	raw       sdl.RawWindow
}

// windowImpostor mirrors sdl.Window.
type windowImpostor struct {
	context *windowContextImpostor
}

var dropToken = &struct{}{}

func newWindowImpostor(raw sdl.RawWindow) *windowImpostor {
	return &windowImpostor{
		context: &windowContextImpostor{
			subsystem: dropToken,
			raw:       raw,
		},
	}
}

// asWindow reinterprets the impostor in place as an sdl.Window. Only valid
// after checkLayout has passed.
func (imp *windowImpostor) asWindow() *sdl.Window {
	return (*sdl.Window)(unsafe.Pointer(imp))
}

// checkLayout verifies that the impostor types occupy exactly the memory
// of the sdl types they alias. The sdl package owns those layouts, so an
// upgrade can silently invalidate the reinterpretation; a mismatch must
// abort before any window is built rather than corrupt memory later.
func checkLayout() {
	if s, i := unsafe.Sizeof(sdl.Window{}), unsafe.Sizeof(windowImpostor{}); s != i {
		panic(fmt.Sprintf("display: sdl.Window size %d != impostor size %d", s, i))
	}
	if s, i := unsafe.Alignof(sdl.Window{}), unsafe.Alignof(windowImpostor{}); s != i {
		panic(fmt.Sprintf("display: sdl.Window align %d != impostor align %d", s, i))
	}
	if s, i := unsafe.Sizeof(sdl.WindowContext{}), unsafe.Sizeof(windowContextImpostor{}); s != i {
		panic(fmt.Sprintf("display: sdl.WindowContext size %d != impostor size %d", s, i))
	}
	if s, i := unsafe.Alignof(sdl.WindowContext{}), unsafe.Alignof(windowContextImpostor{}); s != i {
		panic(fmt.Sprintf("display: sdl.WindowContext align %d != impostor align %d", s, i))
	}
}
