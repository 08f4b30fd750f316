package display

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spearman/sdlsplit/internal/gl"
	"github.com/spearman/sdlsplit/internal/render"
	"github.com/spearman/sdlsplit/internal/sdl"
)

func TestBuildDisplayPromotesOnce(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplay()
	require.NoError(t, err)
	require.NotNil(t, d)

	// Promotion consumed the function set; the backend cannot be promoted
	// again.
	require.Nil(t, backend.glFuncs)
	require.Panics(t, func() { backend.BuildDisplay() })
}

func TestBuildDisplayAcquiresContext(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	require.False(t, backend.IsCurrent())

	_, err := backend.BuildDisplay()
	require.NoError(t, err)
	require.True(t, backend.IsCurrent())
}

func TestBuildDisplayIncompatibleGLLeavesBackendIntact(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	// An empty resolution, as when every proc address came back 0.
	backend.glFuncs = &gl.Functions{}

	_, err := backend.BuildDisplay()
	var glErr *render.IncompatibleGLError
	require.ErrorAs(t, err, &glErr)

	// The backend keeps its resources and function set for a retry.
	require.NotNil(t, backend.glFuncs)
	require.Zero(t, f.count("DestroyWindow"))
	require.Zero(t, f.count("GLDeleteContext"))
	require.NotPanics(t, func() { backend.BuildDisplay() })
}

func TestBuildDisplayUncheckedSkipsRebinding(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplayUnchecked()
	require.NoError(t, err)

	// Displace the context; unchecked frames must not re-acquire it.
	f.current = 0
	before := len(f.calls)
	frame := d.Draw()
	frame.ClearColor(0, 0, 0, 1)
	for _, call := range f.calls[before:] {
		require.NotContains(t, call, "GLMakeCurrent")
	}
}

func TestDrawRebindsDisplacedContext(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplay()
	require.NoError(t, err)

	f.current = 0
	_ = d.Draw()
	require.True(t, backend.IsCurrent())
}

func TestWindowTitleRoundTripThroughImpostor(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplay()
	require.NoError(t, err)

	window := d.Window()
	require.Equal(t, "test window", window.Title())

	require.NoError(t, window.SetTitle("renamed"))
	require.Equal(t, "renamed", window.Title())

	// The alias reads and writes the real window record.
	require.Equal(t, "renamed", f.titles[backend.windowRaw])
}

func TestWindowSizeThroughImpostor(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplay()
	require.NoError(t, err)

	w, h := d.Window().Size()
	require.Equal(t, int32(320), w)
	require.Equal(t, int32(240), h)
}

func TestDrawFinishSwapsOnce(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplay()
	require.NoError(t, err)

	frame := d.Draw()
	w, h := frame.Dimensions()
	require.Equal(t, uint32(320), w)
	require.Equal(t, uint32(240), h)

	frame.ClearAll(0, 1, 0, 1, 0, 0)
	require.NoError(t, frame.Finish())
	require.Equal(t, 1, f.count("GLSwapWindow"))

	require.ErrorIs(t, frame.Finish(), render.ErrFrameFinished)
	require.Equal(t, 1, f.count("GLSwapWindow"))
}

func TestCloneSharesResources(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplay()
	require.NoError(t, err)

	clone := d.Clone()
	require.NoError(t, clone.Window().SetTitle("shared"))
	require.Equal(t, "shared", d.Window().Title())
	require.Same(t, d.Context(), clone.Context())
}

func TestCloseDestroysWindowBeforeContext(t *testing.T) {
	f := newFakeSDL()
	restore := sdl.Use(f.funcs())
	t.Cleanup(restore)

	backend := newTestBackend(f)
	d, err := backend.BuildDisplay()
	require.NoError(t, err)
	clone := d.Clone()

	d.Close()
	require.Equal(t, []string{"DestroyWindow", "GLDeleteContext"}, tail(f.calls, 2))

	// Closing again, on any clone, is a no-op.
	clone.Close()
	d.Close()
	require.Equal(t, 1, f.count("DestroyWindow"))
	require.Equal(t, 1, f.count("GLDeleteContext"))
}

func tail(calls []string, n int) []string {
	if len(calls) < n {
		return calls
	}
	return calls[len(calls)-n:]
}
