package display

import (
	"fmt"
	"os"
	"path/filepath"
)

// PNGSink saves each Frame as a numbered PNG file in a directory
type PNGSink struct {
	dir   string
	scale int
	count map[string]int
}

// NewPNGSink returns a PNGSink saving to dir, creating the directory
// if needed. Each pixel is saved as a scale x scale square.
func NewPNGSink(dir string, scale int) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("newPNGSink: %v", err)
	}
	return &PNGSink{dir: dir, scale: scale, count: make(map[string]int)}, nil
}

// Show implements the Sink interface
func (p *PNGSink) Show(f Frame) error {
	n := p.count[f.Name]
	p.count[f.Name]++

	filename := filepath.Join(p.dir, fmt.Sprintf("%v-%06d.png", f.Name, n))
	if err := draw(f.Image, p.scale).SavePNG(filename); err != nil {
		return fmt.Errorf("show: %v", err)
	}
	return nil
}
