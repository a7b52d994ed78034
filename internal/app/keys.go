package app

import "github.com/veandco/go-sdl2/sdl"

// Key bindings.
const (
	keyEscape     = sdl.SCANCODE_ESCAPE
	keyFullscreen = sdl.SCANCODE_F11
	keyScreenshot = sdl.SCANCODE_F12
	keyMute       = sdl.SCANCODE_M
	keyHome       = sdl.SCANCODE_HOME
	keyEnd        = sdl.SCANCODE_END
)
