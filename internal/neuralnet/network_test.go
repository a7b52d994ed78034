package neuralnet

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNewNeurons(t *testing.T) {
	nw := New(rand.New(rand.NewSource(1)), DefaultNeurons, 400, 300)
	if len(nw.Neurons) != 50 {
		t.Fatalf("neurons = %d", len(nw.Neurons))
	}
	for i, n := range nw.Neurons {
		if n.X < 0 || n.X > 400 || n.Y < 0 || n.Y > 300 {
			t.Errorf("neuron %d at (%v, %v)", i, n.X, n.Y)
		}
		if n.VX < -MaxSpeed || n.VX > MaxSpeed || n.VY < -MaxSpeed || n.VY > MaxSpeed {
			t.Errorf("neuron %d velocity (%v, %v)", i, n.VX, n.VY)
		}
		if n.Radius < 2 || n.Radius > 5 {
			t.Errorf("neuron %d radius %v", i, n.Radius)
		}
		if !strings.HasPrefix(n.Color, "#") {
			t.Errorf("neuron %d color %q", i, n.Color)
		}
	}
}

func TestStepBounces(t *testing.T) {
	nw := &Network{Width: 10, Height: 10, Neurons: []Neuron{
		{X: 9.9, Y: 5, VX: 0.25},
		{X: 5, Y: 0.1, VY: -0.25},
	}}
	nw.Step()
	if nw.Neurons[0].VX >= 0 {
		t.Errorf("right edge: VX = %v, want reversed", nw.Neurons[0].VX)
	}
	if nw.Neurons[1].VY <= 0 {
		t.Errorf("top edge: VY = %v, want reversed", nw.Neurons[1].VY)
	}
}

func TestLinks(t *testing.T) {
	nw := &Network{Width: 500, Height: 500, Neurons: []Neuron{
		{X: 0, Y: 0},
		{X: 50, Y: 0},
		{X: 300, Y: 300},
	}}
	links := nw.Links()
	if len(links) != 1 {
		t.Fatalf("links = %+v, want one", links)
	}
	if l := links[0]; l.A != 0 || l.B != 1 || l.Alpha != 0.5 {
		t.Errorf("link = %+v", l)
	}
}

func TestSurfaceFrame(t *testing.T) {
	nw := New(rand.New(rand.NewSource(2)), 10, 64, 48)
	s := NewSurface(nw, 64, 48)
	img := s.Frame()
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("frame bounds = %v", b)
	}
	if s.Frame() != img {
		t.Error("frame image should be reused")
	}
}

func TestSurfaceFrameDrawsNeurons(t *testing.T) {
	nw := &Network{Width: 32, Height: 32, Neurons: []Neuron{
		{X: 10, Y: 10, Radius: 4, Color: "#ff0000"},
		{X: 20, Y: 20, Radius: 4, Color: "#00ff00"},
	}}
	img := NewSurface(nw, 32, 32).Frame()
	if c := img.RGBAAt(10, 13); c.R < 200 || c.A < 200 {
		t.Errorf("neuron pixel = %v, want red", c)
	}
	if c := img.RGBAAt(30, 2); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("background pixel = %v, want black", c)
	}
}
