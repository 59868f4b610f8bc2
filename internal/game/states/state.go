// Package states implements scene state management.
package states

import (
	"github.com/Faultbox/orbitfall/internal/engine/scene"
)

// State is one scene: its simulation and how it draws itself.
type State interface {
	// Name identifies the scene in logs and the window title.
	Name() string

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update advances the simulation by dt seconds. It is only called while
	// the animation runs.
	Update(dt float64) error

	// Render draws one frame through the painter.
	Render(p *scene.Painter) error

	// Resize is called with the drawable size on entry and on every
	// window resize.
	Resize(width, height int)

	// Status is a short description of the scene's progress.
	Status() string
}

// Manager manages scene transitions.
type Manager struct {
	current State
	next    State

	width, height int
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change. It takes effect before the next update
// or render.
func (m *Manager) Change(next State) {
	m.next = next
}

// Pending reports whether a change is scheduled.
func (m *Manager) Pending() bool {
	return m.next != nil
}

func (m *Manager) transition() error {
	if m.next == nil {
		return nil
	}
	if m.current != nil {
		if err := m.current.Exit(); err != nil {
			return err
		}
	}
	m.current = m.next
	m.next = nil
	if err := m.current.Enter(); err != nil {
		return err
	}
	if m.width > 0 && m.height > 0 {
		m.current.Resize(m.width, m.height)
	}
	return nil
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	if err := m.transition(); err != nil {
		return err
	}
	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render(p *scene.Painter) error {
	if err := m.transition(); err != nil {
		return err
	}
	if m.current != nil {
		return m.current.Render(p)
	}
	return nil
}

// Resize records the drawable size and forwards it to the current state.
func (m *Manager) Resize(width, height int) {
	m.width, m.height = width, height
	if m.current != nil {
		m.current.Resize(width, height)
	}
}

// Status returns the current state's name and status.
func (m *Manager) Status() string {
	if m.current == nil {
		return ""
	}
	if s := m.current.Status(); s != "" {
		return m.current.Name() + " - " + s
	}
	return m.current.Name()
}

// Close exits the current state.
func (m *Manager) Close() error {
	m.next = nil
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
