// SPDX-License-Identifier: GPL-2.0-or-later

// Package window owns the SDL window and GL context. Every function must run
// on the main thread.
package window

import (
	"unsafe"

	"gxview/conlog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	window  *sdl.Window
	context sdl.GLContext
)

func Get() *sdl.Window {
	return window
}

func Size() (int, int) {
	w, h := window.GetSize()
	return int(w), int(h)
}

// OpenHidden creates an invisible window with a GL 4.6 core context. The
// context is enough to compile programs and render into the back buffer.
func OpenHidden(width, height int32) error {
	if window != nil {
		return nil
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "init sdl video")
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 6)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_DEBUG_FLAG)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_HIDDEN)
	w, err := sdl.CreateWindow("gxview", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err != nil {
		// retry without the stencil buffer
		sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 0)
		w, err = sdl.CreateWindow("gxview", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
		if err != nil {
			sdl.Quit()
			return errors.Wrap(err, "create window")
		}
	}
	c, err := w.GLCreateContext()
	if err != nil {
		w.Destroy()
		sdl.Quit()
		return errors.Wrap(err, "create GL context")
	}
	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(c)
		w.Destroy()
		sdl.Quit()
		return errors.Wrap(err, "init gl")
	}
	window, context = w, c
	gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	conlog.Logger().Info("GL context",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

func Shutdown() {
	if window == nil {
		return
	}
	sdl.GLDeleteContext(context)
	context = nil
	window.Destroy()
	window = nil
	sdl.Quit()
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	l := conlog.Logger()
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		l.Error("GL debug", "source", source, "type", gltype, "id", id, "message", message)
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		l.Debug("GL debug", "source", source, "type", gltype, "id", id, "message", message)
	default:
		l.Warn("GL debug", "source", source, "type", gltype, "id", id, "message", message)
	}
}

func EndRendering() {
	window.GLSwap()
}
