// Package neuralnet animates the drifting neuron graph shown behind the
// research section.
package neuralnet

import (
	"image"
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/Faultbox/neurosummit/internal/procgen"
)

// Defaults for a network.
const (
	DefaultNeurons = 50
	LinkDistance   = 100.0
	MaxSpeed       = 0.25
)

// Neuron is one drifting node.
type Neuron struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  string
}

// Network is a set of neurons bouncing inside a rectangle.
type Network struct {
	Width   float64
	Height  float64
	Neurons []Neuron
}

// New scatters n neurons over a width x height area.
func New(r procgen.Rand, n int, width, height float64) *Network {
	nw := &Network{Width: width, Height: height, Neurons: make([]Neuron, n)}
	for i := range nw.Neurons {
		hue := r.Float64()*60 + 180
		nw.Neurons[i] = Neuron{
			X:      r.Float64() * width,
			Y:      r.Float64() * height,
			VX:     (r.Float64() - 0.5) * 2 * MaxSpeed,
			VY:     (r.Float64() - 0.5) * 2 * MaxSpeed,
			Radius: r.Float64()*3 + 2,
			Color:  colorful.Hsl(hue, 0.7, 0.6).Hex(),
		}
	}
	return nw
}

// Resize changes the bounds. Neurons outside the new bounds bounce back
// on their next steps.
func (nw *Network) Resize(width, height float64) {
	nw.Width, nw.Height = width, height
}

// Step moves every neuron and reverses velocity components at the edges.
func (nw *Network) Step() {
	for i := range nw.Neurons {
		n := &nw.Neurons[i]
		n.X += n.VX
		n.Y += n.VY
		if n.X < 0 || n.X > nw.Width {
			n.VX = -n.VX
		}
		if n.Y < 0 || n.Y > nw.Height {
			n.VY = -n.VY
		}
	}
}

// Link connects two neurons closer than LinkDistance.
type Link struct {
	A, B  int
	Alpha float64
}

// Links returns every pair within LinkDistance, fading with distance.
func (nw *Network) Links() []Link {
	var links []Link
	for i := range nw.Neurons {
		for j := i + 1; j < len(nw.Neurons); j++ {
			a, b := nw.Neurons[i], nw.Neurons[j]
			d := gomath.Hypot(a.X-b.X, a.Y-b.Y)
			if d < LinkDistance {
				links = append(links, Link{A: i, B: j, Alpha: 1 - d/LinkDistance})
			}
		}
	}
	return links
}

// Surface renders a network into an offscreen image. Each frame darkens the
// previous one slightly so moving neurons leave trails.
type Surface struct {
	Net *Network

	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
}

// NewSurface creates a width x height surface for nw.
func NewSurface(nw *Network, width, height int) *Surface {
	backend := softwarebackend.New(width, height)
	return &Surface{Net: nw, backend: backend, cv: canvas.New(backend)}
}

// Frame steps the network, draws it and returns the image. The image is
// reused between frames.
func (s *Surface) Frame() *image.RGBA {
	s.Net.Step()
	cv := s.cv
	w, h := float64(s.backend.Image.Bounds().Dx()), float64(s.backend.Image.Bounds().Dy())

	cv.SetFillStyle(procgen.RGBA(0, 0, 0, 0.1))
	cv.FillRect(0, 0, w, h)

	for _, n := range s.Net.Neurons {
		cv.SetFillStyle(n.Color)
		cv.BeginPath()
		cv.Arc(n.X, n.Y, n.Radius, 0, 2*gomath.Pi, false)
		cv.Fill()
	}

	cv.SetLineWidth(1)
	for _, l := range s.Net.Links() {
		a, b := s.Net.Neurons[l.A], s.Net.Neurons[l.B]
		cv.SetStrokeStyle(procgen.RGBA(111, 169, 154, l.Alpha))
		cv.BeginPath()
		cv.MoveTo(a.X, a.Y)
		cv.LineTo(b.X, b.Y)
		cv.Stroke()
	}
	return s.backend.Image
}
