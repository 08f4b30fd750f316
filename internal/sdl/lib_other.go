//go:build !linux && !darwin

package sdl

import "errors"

func load() error {
	return errors.New("sdl: platform not supported")
}
