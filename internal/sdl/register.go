//go:build linux || darwin

package sdl

import "github.com/ebitengine/purego"

func register(handle uintptr) {
	purego.RegisterLibFunc(&lib.Init, handle, "SDL_Init")
	purego.RegisterLibFunc(&lib.Quit, handle, "SDL_Quit")
	purego.RegisterLibFunc(&lib.GetError, handle, "SDL_GetError")
	purego.RegisterLibFunc(&lib.ClearError, handle, "SDL_ClearError")
	purego.RegisterLibFunc(&lib.CreateWindow, handle, "SDL_CreateWindow")
	purego.RegisterLibFunc(&lib.DestroyWindow, handle, "SDL_DestroyWindow")
	purego.RegisterLibFunc(&lib.GetWindowTitle, handle, "SDL_GetWindowTitle")
	purego.RegisterLibFunc(&lib.SetWindowTitle, handle, "SDL_SetWindowTitle")
	purego.RegisterLibFunc(&lib.GetWindowSize, handle, "SDL_GetWindowSize")
	purego.RegisterLibFunc(&lib.GLCreateContext, handle, "SDL_GL_CreateContext")
	purego.RegisterLibFunc(&lib.GLDeleteContext, handle, "SDL_GL_DeleteContext")
	purego.RegisterLibFunc(&lib.GLMakeCurrent, handle, "SDL_GL_MakeCurrent")
	purego.RegisterLibFunc(&lib.GLGetCurrentContext, handle, "SDL_GL_GetCurrentContext")
	purego.RegisterLibFunc(&lib.GLSwapWindow, handle, "SDL_GL_SwapWindow")
	purego.RegisterLibFunc(&lib.GLGetProcAddress, handle, "SDL_GL_GetProcAddress")
	purego.RegisterLibFunc(&lib.GLGetDrawableSize, handle, "SDL_GL_GetDrawableSize")
	purego.RegisterLibFunc(&lib.WaitEvent, handle, "SDL_WaitEvent")
	purego.RegisterLibFunc(&lib.PollEvent, handle, "SDL_PollEvent")
}
