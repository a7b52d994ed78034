// Package debug provides developer tooling such as frame captures.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Screenshots writes captured frames to a directory with timestamped names.
type Screenshots struct {
	dir    string
	prefix string
	format string
	now    func() time.Time
}

// NewScreenshots creates a capture writer. format is "png" or "bmp"; an
// empty format means png.
func NewScreenshots(dir, prefix, format string) *Screenshots {
	if format == "" {
		format = "png"
	}
	return &Screenshots{
		dir:    dir,
		prefix: prefix,
		format: format,
		now:    time.Now,
	}
}

// Filename returns the path the next capture would be written to.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s.%s", s.prefix, s.now().Format("2006-01-02_15-04-05.000"), s.format)
	if s.dir != "" {
		name = filepath.Join(s.dir, name)
	}
	return name
}

// Save encodes img under a timestamped name and returns the written path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	return s.write(s.Filename(), img)
}

// SaveAs encodes img as name plus the configured extension inside the
// output directory.
func (s *Screenshots) SaveAs(name string, img image.Image) (string, error) {
	filename := name + "." + s.format
	if s.dir != "" {
		filename = filepath.Join(s.dir, filename)
	}
	return s.write(filename, img)
}

func (s *Screenshots) write(filename string, img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("no image to save")
	}
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := s.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", s.format, err)
	}
	return filename, nil
}

func (s *Screenshots) encode(w io.Writer, img image.Image) error {
	switch s.format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %q", s.format)
	}
}
