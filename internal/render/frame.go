package render

import (
	"errors"

	"github.com/spearman/sdlsplit/internal/gl"
)

// ErrFrameFinished is returned when a frame is finished more than once.
var ErrFrameFinished = errors.New("render: frame already finished")

// Frame is one frame of drawing against the backbuffer. It captures the
// framebuffer dimensions at creation; Finish presents the buffer.
type Frame struct {
	ctx      *Context
	width    uint32
	height   uint32
	finished bool
}

// NewFrame starts a frame with the given framebuffer dimensions and sets
// the viewport to cover it.
func NewFrame(ctx *Context, width, height uint32) *Frame {
	ctx.ensureCurrent()
	ctx.funcs.Viewport(0, 0, int32(width), int32(height))
	return &Frame{ctx: ctx, width: width, height: height}
}

// Dimensions returns the framebuffer dimensions the frame was created with.
func (f *Frame) Dimensions() (width, height uint32) {
	return f.width, f.height
}

// ClearColor clears the color buffer to the given color.
func (f *Frame) ClearColor(r, g, b, a float32) {
	f.ctx.ensureCurrent()
	f.ctx.funcs.ClearColor(r, g, b, a)
	f.ctx.funcs.Clear(gl.ColorBufferBit)
}

// ClearColorRect clears only the given rectangle of the color buffer.
// Coordinates are framebuffer pixels with the origin at the bottom left,
// as the GL scissor box expects.
func (f *Frame) ClearColorRect(x, y, width, height int32, r, g, b, a float32) {
	f.ctx.ensureCurrent()
	funcs := f.ctx.funcs
	funcs.Enable(gl.ScissorTest)
	funcs.Scissor(x, y, width, height)
	funcs.ClearColor(r, g, b, a)
	funcs.Clear(gl.ColorBufferBit)
	funcs.Disable(gl.ScissorTest)
}

// ClearAll clears the color, depth and stencil buffers.
func (f *Frame) ClearAll(r, g, b, a float32, depth float64, stencil int32) {
	f.ctx.ensureCurrent()
	f.ctx.funcs.ClearColor(r, g, b, a)
	f.ctx.funcs.ClearDepth(depth)
	f.ctx.funcs.ClearStencil(stencil)
	f.ctx.funcs.Clear(gl.ColorBufferBit | gl.DepthBufferBit | gl.StencilBufferBit)
}

// Finish presents the backbuffer. The swap happens immediately, regardless
// of vsync configuration; with vsync enabled the call blocks until the
// swap completes. A frame can be finished only once.
func (f *Frame) Finish() error {
	if f.finished {
		return ErrFrameFinished
	}
	f.finished = true
	f.ctx.ensureCurrent()
	f.ctx.funcs.Flush()
	return f.ctx.backend.SwapBuffers()
}
