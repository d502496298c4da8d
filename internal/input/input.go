package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical command, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionToggleStats
	ActionScreenshot
	ActionToggleGlitch
	ActionCount // sentinel for array sizing
)

// Bindings maps keys to actions
type Bindings map[glfw.Key][]Action

// DefaultBindings: Esc quits, V toggles the stats log, F12 saves a
// screenshot, G toggles continuous glitching.
func DefaultBindings() Bindings {
	return Bindings{
		glfw.KeyEscape: {ActionQuit},
		glfw.KeyV:      {ActionToggleStats},
		glfw.KeyF12:    {ActionScreenshot},
		glfw.KeyG:      {ActionToggleGlitch},
	}
}

// Manager tracks key state per action with edge detection. Events arrive from
// glfw.PollEvents; PostUpdate clears the edges at the end of each frame.
type Manager struct {
	mu sync.RWMutex

	keyToActions Bindings

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager creates a manager with the default bindings
func NewManager() *Manager {
	return &Manager{keyToActions: DefaultBindings()}
}

// BindKey adds an action to a key
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// HandleKeyEvent processes one key event
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}
	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if pressed && !m.current[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.current[act] {
			m.justReleased[act] = true
		}
		m.current[act] = pressed
	}
}

// Attach installs the GLFW key callback
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate resets edge flags; call once per frame after all checks
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive reports whether the action is held
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[action]
}

// JustPressed reports a press during the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}
