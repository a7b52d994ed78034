package assets

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	gomath "math"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestManagerRootPriority(t *testing.T) {
	low := fstest.MapFS{
		"a.txt": {Data: []byte("low")},
		"b.txt": {Data: []byte("only-low")},
	}
	high := fstest.MapFS{
		"a.txt": {Data: []byte("high")},
	}
	m := NewManager(low)
	m.AddRoot(high)

	tests := []struct {
		path string
		want string
	}{
		{"a.txt", "high"},
		{"b.txt", "only-low"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := m.Load(tt.path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := m.Load("missing.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
	}
	if !m.Exists("b.txt") || m.Exists("missing.txt") {
		t.Error("Exists() mismatch")
	}
}

func TestManagerCaches(t *testing.T) {
	m := NewManager(fstest.MapFS{"x": {Data: []byte("1")}})
	for i := 0; i < 3; i++ {
		if _, err := m.Load("x"); err != nil {
			t.Fatal(err)
		}
	}
	hits, misses := m.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 1", hits, misses)
	}

	m.Close()
	if _, err := m.Load("x"); err == nil {
		t.Error("Load() after Close should fail")
	}
}

func TestManagerAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "track.wav"), []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir() error = %v", err)
	}
	if got, err := m.Load("track.wav"); err != nil || string(got) != "RIFF" {
		t.Errorf("Load() = %q, %v", got, err)
	}
	if err := m.AddDir(filepath.Join(dir, "track.wav")); err == nil {
		t.Error("AddDir(file) should fail")
	}
	if err := m.AddDir(filepath.Join(dir, "nope")); err == nil {
		t.Error("AddDir(missing) should fail")
	}
}

// buildGLB packs one indexed triangle primitive into a binary glTF container.
func buildGLB(t *testing.T, positions [][3]float32, indices []uint32, node map[string]any) []byte {
	t.Helper()

	var bin bytes.Buffer
	for _, p := range positions {
		binary.Write(&bin, binary.LittleEndian, p)
	}
	posLen := bin.Len()
	binary.Write(&bin, binary.LittleEndian, indices)
	idxLen := bin.Len() - posLen

	lo, hi := positions[0], positions[0]
	for _, p := range positions {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}

	node["mesh"] = 0
	doc := map[string]any{
		"asset":   map[string]any{"version": "2.0"},
		"buffers": []any{map[string]any{"byteLength": bin.Len()}},
		"bufferViews": []any{
			map[string]any{"buffer": 0, "byteOffset": 0, "byteLength": posLen},
			map[string]any{"buffer": 0, "byteOffset": posLen, "byteLength": idxLen},
		},
		"accessors": []any{
			map[string]any{"bufferView": 0, "componentType": 5126, "count": len(positions), "type": "VEC3", "min": lo, "max": hi},
			map[string]any{"bufferView": 1, "componentType": 5125, "count": len(indices), "type": "SCALAR"},
		},
		"meshes": []any{map[string]any{
			"primitives": []any{map[string]any{"attributes": map[string]any{"POSITION": 0}, "indices": 1}},
		}},
		"nodes":  []any{node},
		"scenes": []any{map[string]any{"nodes": []int{0}}},
		"scene":  0,
	}
	js, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	for len(js)%4 != 0 {
		js = append(js, ' ')
	}
	for bin.Len()%4 != 0 {
		bin.WriteByte(0)
	}

	var out bytes.Buffer
	total := 12 + 8 + len(js) + 8 + bin.Len()
	binary.Write(&out, binary.LittleEndian, []uint32{0x46546C67, 2, uint32(total)})
	binary.Write(&out, binary.LittleEndian, []uint32{uint32(len(js)), 0x4E4F534A})
	out.Write(js)
	binary.Write(&out, binary.LittleEndian, []uint32{uint32(bin.Len()), 0x004E4942})
	out.Write(bin.Bytes())
	return out.Bytes()
}

func TestDecodeGLB(t *testing.T) {
	tri := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	data := buildGLB(t, tri, []uint32{0, 1, 2}, map[string]any{"translation": []float32{0, 2, 0}})

	meshes, err := DecodeGLB(data)
	if err != nil {
		t.Fatalf("DecodeGLB() error = %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	m := meshes[0]
	if m.VertexCount() != 3 || len(m.Indices) != 3 {
		t.Fatalf("vertices = %d, indices = %d", m.VertexCount(), len(m.Indices))
	}
	if y := m.Vertices[0].Position.Y; gomath.Abs(float64(y)-2) > 1e-5 {
		t.Errorf("translated y = %v, want 2", y)
	}
	// Normals are computed when the file has none; the triangle faces +Z.
	if n := m.Vertices[0].Normal; gomath.Abs(float64(n.Z)-1) > 1e-5 {
		t.Errorf("normal = %v, want +Z", n)
	}
	if c := m.Vertices[1].Color; c.X != 1 || c.Y != 1 || c.Z != 1 {
		t.Errorf("color = %v, want white", c)
	}
}

func TestDecodeGLBScaledNode(t *testing.T) {
	tri := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	data := buildGLB(t, tri, []uint32{0, 1, 2}, map[string]any{"scale": []float32{3, 3, 3}})
	meshes, err := DecodeGLB(data)
	if err != nil {
		t.Fatalf("DecodeGLB() error = %v", err)
	}
	if x := meshes[0].Vertices[1].Position.X; gomath.Abs(float64(x)-3) > 1e-5 {
		t.Errorf("scaled x = %v, want 3", x)
	}
}

func TestDecodeGLBRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("not a model")},
		{"truncated", []byte{0x67, 0x6C, 0x54, 0x46, 2, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeGLB(tt.data); err == nil {
				t.Error("DecodeGLB() error = nil")
			}
		})
	}
}

func TestLoadModel(t *testing.T) {
	tri := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	m := NewManager(fstest.MapFS{
		"models/brain.glb": {Data: buildGLB(t, tri, []uint32{0, 1, 2}, map[string]any{})},
		"models/bad.glb":   {Data: []byte("junk")},
	})

	if meshes, err := m.LoadModel("models/brain.glb"); err != nil || len(meshes) != 1 {
		t.Errorf("LoadModel() = %d meshes, %v", len(meshes), err)
	}
	if _, err := m.LoadModel("models/bad.glb"); err == nil {
		t.Error("LoadModel(bad) error = nil")
	}
	if _, err := m.LoadModel("models/none.glb"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadModel(missing) error = %v", err)
	}
}
