package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestScrollDelta(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   float64
	}{
		{"none", nil, 0},
		{"wheel down", []Event{{Type: EventMouseWheel, WheelY: -2}}, 200},
		{"wheel up", []Event{{Type: EventMouseWheel, WheelY: 1}}, -100},
		{"arrow", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_DOWN}}, 100},
		{"page down", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_PAGEDOWN}}, 720},
		{"space", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE}}, 720},
		{"page up and wheel", []Event{
			{Type: EventKeyDown, Key: sdl.SCANCODE_PAGEUP},
			{Type: EventMouseWheel, WheelY: -1},
		}, -620},
		{"key up ignored", []Event{{Type: EventKeyUp, Key: sdl.SCANCODE_DOWN}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollDelta(tt.events, 720); got != tt.want {
				t.Errorf("ScrollDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12})
	if !in.IsKeyPressed(sdl.SCANCODE_F12) {
		t.Error("F12 should be pressed")
	}
	if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("Escape should not be pressed")
	}
}
