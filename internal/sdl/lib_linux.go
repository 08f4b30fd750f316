//go:build linux

package sdl

import "github.com/ebitengine/purego"

func load() error {
	handle, err := purego.Dlopen("libSDL2-2.0.so.0", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}
	register(handle)
	return nil
}
