package main

import (
	"fmt"

	"synthwave/internal/config"
	"synthwave/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func setupWindow(vsync bool) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)

	window, err := glfw.CreateWindow(config.WinWidth, config.WinHeight, config.WinTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if vsync {
		glfw.SwapInterval(1)
	} else {
		// FPS limiter paces the loop instead
		glfw.SwapInterval(0)
	}

	logger.Log.Info("opengl",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Bool("vsync", vsync))

	gl.ClearColor(0, 0, 0, 0)
	return window, nil
}
