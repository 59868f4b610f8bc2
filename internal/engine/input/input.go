// Package input handles SDL2 input events.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies the events the frame driver reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventWindowExposed
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Convert maps an SDL event to an Event. Events the driver ignores report
// false.
func Convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return Event{Type: EventWindowExposed}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
		switch e.Type {
		case sdl.KEYDOWN:
			ev.Type = EventKeyDown
			return ev, true
		case sdl.KEYUP:
			ev.Type = EventKeyUp
			return ev, true
		}
	}
	return Event{}, false
}

// Update polls pending SDL events without blocking.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		quit = i.push(event) || quit
	}
	return quit
}

// Wait blocks until an event arrives or timeout passes, then drains the
// queue like Update. Used while nothing animates.
func (i *Input) Wait(timeout time.Duration) bool {
	i.events = i.events[:0]
	event := sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	if event == nil {
		return false
	}
	quit := i.push(event)
	for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		quit = i.push(event) || quit
	}
	return quit
}

func (i *Input) push(event sdl.Event) bool {
	ev, ok := Convert(event)
	if !ok {
		return false
	}
	i.events = append(i.events, ev)
	return ev.Type == EventQuit
}

// Events returns the events from the last Update or Wait.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a key went down this frame. Auto-repeat does not
// count.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}
