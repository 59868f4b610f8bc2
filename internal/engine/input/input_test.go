package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{
			"exposed",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_EXPOSED},
			Event{Type: EventWindowExposed},
			true,
		},
		{
			"space down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE},
			true,
		},
		{
			"repeat",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE, Repeat: true},
			true,
		},
		{
			"key up",
			&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			Event{Type: EventKeyUp, Key: sdl.SCANCODE_ESCAPE},
			true,
		},
		{"mouse ignored", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}, Event{}, false},
		{
			"focus ignored",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
			Event{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Convert(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsKeyPressedIgnoresRepeat(t *testing.T) {
	in := New()
	in.push(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}})
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_SPACE))

	in.push(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}})
	assert.True(t, in.IsKeyPressed(sdl.SCANCODE_SPACE))
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_ESCAPE))
}

func TestPushReportsQuit(t *testing.T) {
	in := New()
	assert.False(t, in.push(&sdl.MouseMotionEvent{}))
	assert.True(t, in.push(&sdl.QuitEvent{Type: sdl.QUIT}))
	assert.Len(t, in.Events(), 1)
}
