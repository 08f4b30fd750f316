package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/spearman/sdlsplit/internal/display"
	"github.com/spearman/sdlsplit/internal/sdl"
)

// Demo: the main thread initializes SDL and pumps input events while a
// worker thread owns the GL context and renders, cycling the clear color
// between green and red every 50 frames. 'q' or Escape quits.

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	title := fs.String("title", "sdlsplit demo", "window title")
	width := fs.Uint("width", 320, "window width")
	height := fs.Uint("height", 240, "window height")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	ctx, err := sdl.Init()
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer ctx.Quit()

	video, err := ctx.Video()
	if err != nil {
		log.Fatalf("video: %v", err)
	}

	backend, err := display.BuildBackend(
		video.Window(*title, *width, *height).PositionCentered())
	if err != nil {
		log.Fatalf("build backend: %v", err)
	}

	// running is handed to the render loop as a value; the main thread
	// flips it on quit and then joins.
	running := &atomic.Bool{}
	running.Store(true)

	ready := make(chan struct{})
	done := make(chan struct{})

	go renderLoop(backend, running, ready, done)

	// The worker has not built the display yet; wait so no window state is
	// read before it exists.
	<-ready

	pump, err := ctx.EventPump()
	if err != nil {
		log.Fatalf("event pump: %v", err)
	}
	for {
		ev, err := pump.WaitEvent()
		if err != nil {
			log.Fatalf("wait event: %v", err)
		}
		if quitRequested(ev) {
			running.Store(false)
			break
		}
	}

	<-done
	slog.Info("shut down")
}

func quitRequested(ev sdl.Event) bool {
	switch ev.Type {
	case sdl.EventQuit:
		return true
	case sdl.EventKeyDown:
		return ev.Keycode == sdl.KeycodeQ || ev.Keycode == sdl.KeycodeEscape
	}
	return false
}

// renderLoop runs on its own OS thread: it promotes the backend, owns the
// resulting display for its whole life and tears it down before exiting.
func renderLoop(backend *display.Backend, running *atomic.Bool, ready, done chan struct{}) {
	runtime.LockOSThread()
	defer close(done)

	d, err := backend.BuildDisplay()
	if err != nil {
		log.Fatalf("build display: %v", err)
	}
	defer d.Close()

	slog.Info("display built",
		"gl", d.Context().Version(), "renderer", d.Context().Renderer())

	// Window access through the impostor alias, off the main thread.
	window := d.Window()
	slog.Info("window", "title", window.Title())
	if err := window.SetTitle("sdlsplit demo (rendering)"); err != nil {
		log.Fatalf("set title: %v", err)
	}
	slog.Info("window", "title", window.Title())

	close(ready)

	frame := 0
	for running.Load() {
		var r, g float32
		if frame%100 < 50 {
			g = 1.0
		} else {
			r = 1.0
		}

		f := d.Draw()
		f.ClearAll(r, g, 0.0, 1.0, 0.0, 0)
		if err := f.Finish(); err != nil {
			log.Fatalf("finish frame: %v", err)
		}

		if frame%60 == 0 {
			slog.Info("rendering", "frame", frame)
		}
		frame++
	}
}
