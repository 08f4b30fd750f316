package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spearman/sdlsplit/internal/gl"
)

// Context is a rendering context bound to a backend. It is shared by every
// frame drawn from it, so it must outlive them all.
type Context struct {
	backend      Backend
	funcs        *gl.Functions
	checkCurrent bool
	version      string
	vendor       string
	renderer     string
}

// Error flags can pile up from whoever used the context before us; drain
// at most this many before giving up on a driver that never clears.
const maxStaleErrors = 64

// NewContext validates the resolved GL function set against the backend's
// context and returns a rendering context.
//
// The backend's context is made current on the calling thread if it is not
// already. When checkCurrent is set, every subsequent frame operation
// re-checks the binding and re-acquires the context if another one has
// been made current in between.
func NewContext(backend Backend, funcs *gl.Functions, checkCurrent bool) (*Context, error) {
	if funcs == nil || !funcs.Complete() {
		return nil, &IncompatibleGLError{Reason: "required entry points missing"}
	}
	if !backend.IsCurrent() {
		backend.MakeCurrent()
	}
	for i := 0; i < maxStaleErrors; i++ {
		if funcs.GetError() == gl.NoError {
			break
		}
	}
	version := gl.String(funcs.GetString(gl.Version))
	major, minor, ok := parseVersion(version)
	if !ok {
		return nil, &IncompatibleGLError{Reason: fmt.Sprintf("unparseable version %q", version)}
	}
	if major < 1 || (major == 1 && minor < 1) {
		return nil, &IncompatibleGLError{Reason: "OpenGL 1.1 or later required, got " + version}
	}
	return &Context{
		backend:      backend,
		funcs:        funcs,
		checkCurrent: checkCurrent,
		version:      version,
		vendor:       gl.String(funcs.GetString(gl.Vendor)),
		renderer:     gl.String(funcs.GetString(gl.Renderer)),
	}, nil
}

// Version returns the GL version string reported by the context.
func (c *Context) Version() string { return c.version }

// Vendor returns the GL vendor string, or "" if the driver reports none.
func (c *Context) Vendor() string { return c.vendor }

// Renderer returns the GL renderer string, or "" if the driver reports
// none.
func (c *Context) Renderer() string { return c.renderer }

// ensureCurrent re-binds the context if current-context checking is
// enabled and another context has been made current on this thread.
func (c *Context) ensureCurrent() {
	if c.checkCurrent && !c.backend.IsCurrent() {
		c.backend.MakeCurrent()
	}
}

// parseVersion extracts major.minor from a GL version string such as
// "2.1 Mesa 23.0.4" or "OpenGL ES 3.0".
func parseVersion(s string) (major, minor int, ok bool) {
	s = strings.TrimPrefix(s, "OpenGL ES ")
	dot := strings.IndexByte(s, '.')
	if dot < 1 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(s[:dot])
	if err != nil {
		return 0, 0, false
	}
	rest := s[dot+1:]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	minor, err = strconv.Atoi(rest[:end])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
