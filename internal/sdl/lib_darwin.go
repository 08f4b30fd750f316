//go:build darwin

package sdl

import "github.com/ebitengine/purego"

// Homebrew installs SDL2 outside the default search path, so try known
// locations before giving up.
var libNames = []string{
	"libSDL2-2.0.0.dylib",
	"/usr/local/lib/libSDL2-2.0.0.dylib",
	"/opt/homebrew/lib/libSDL2-2.0.0.dylib",
}

func load() error {
	var err error
	for _, name := range libNames {
		var handle uintptr
		handle, err = purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			register(handle)
			return nil
		}
	}
	return err
}
