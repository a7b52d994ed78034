package picking

import (
	"testing"

	"github.com/Faultbox/neurosummit/internal/engine/camera"
	"github.com/Faultbox/neurosummit/pkg/math"
)

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		x, y         float32
		wantX, wantY float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
	}
	for _, tt := range tests {
		x, y := ScreenToNDC(tt.x, tt.y, 800, 600)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ScreenToNDC(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
	if x, y := ScreenToNDC(10, 10, 0, 0); x != 0 || y != 0 {
		t.Errorf("empty viewport = (%v, %v)", x, y)
	}
}

func TestFromCameraCenter(t *testing.T) {
	cam := camera.NewHero(1.5, 5)
	ray := FromCamera(cam.Position, 0, 0, cam.ViewProjection().Inverse())

	if ray.Origin != cam.Position {
		t.Errorf("Origin = %v, want camera position", ray.Origin)
	}
	target := ray.At(10)
	if target.Distance(math.Vec3{Z: -5}) > 1e-3 {
		t.Errorf("At(10) = %v, want (0, 0, -5)", target)
	}
}

func TestFromCameraOffCenter(t *testing.T) {
	cam := camera.NewHero(1, 5)
	ray := FromCamera(cam.Position, 1, 0, cam.ViewProjection().Inverse())
	if ray.Direction.X <= 0 {
		t.Errorf("Direction = %v, want a rightward component", ray.Direction)
	}
	if l := ray.Direction.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("|Direction| = %v", l)
	}
}
