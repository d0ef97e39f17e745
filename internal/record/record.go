// Package record saves rendered frames to disk as PNG files or as pages
// of a single PDF document.
package record

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"simcanvas/internal/canvas"
	"simcanvas/internal/event"
	"simcanvas/internal/shape"
	"simcanvas/pkg/render/pdfsurface"
	"simcanvas/pkg/render/raster"
)

// Recorder re-renders frames on its own offscreen canvas. It listens for
// event.FrameRendered and keeps one frame out of every Every.
type Recorder struct {
	module *canvas.Module
	every  int

	dir    string
	png    *raster.Surface
	path   string
	pdf    *pdfsurface.Surface
	closed bool

	received int
	written  int
	err      error
}

// NewPNG writes frame_000000.png, frame_000001.png, ... into dir.
func NewPNG(dir string, width, height, every int, opts ...canvas.Option) (*Recorder, error) {
	if every <= 0 {
		return nil, fmt.Errorf("record: every must be positive, got %d", every)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("record: create %s: %w", dir, err)
	}
	m, s, err := raster.NewModule(width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	return &Recorder{module: m, every: every, dir: dir, png: s}, nil
}

// NewPDF collects frames as pages and writes them to path on Close.
func NewPDF(path string, width, height, every int, opts ...canvas.Option) (*Recorder, error) {
	if every <= 0 {
		return nil, fmt.Errorf("record: every must be positive, got %d", every)
	}
	m, err := canvas.New(pdfsurface.Host{}, width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	return &Recorder{module: m, every: every, path: path, pdf: m.Surface().(*pdfsurface.Surface)}, nil
}

// Record renders shapes and saves the result unconditionally.
func (r *Recorder) Record(shapes []shape.Descriptor) error {
	if r.closed {
		return fmt.Errorf("record: recorder is closed")
	}
	r.module.Render(shapes)
	if r.png != nil {
		name := filepath.Join(r.dir, fmt.Sprintf("frame_%06d.png", r.written))
		if err := r.png.SavePNG(name); err != nil {
			return fmt.Errorf("record: %w", err)
		}
	} else if err := r.pdf.Err(); err != nil {
		return fmt.Errorf("record: pdf page %d: %w", r.written, err)
	}
	r.written++
	return nil
}

// OnEvent implements event.Listener. Failures are logged and the first one
// is kept for Err.
func (r *Recorder) OnEvent(e event.Event) {
	if e.Type != event.FrameRendered {
		return
	}
	data, ok := e.Data.(event.FrameData)
	if !ok {
		return
	}
	n := r.received
	r.received++
	if n%r.every != 0 {
		return
	}
	if err := r.Record(data.Shapes); err != nil {
		log.Printf("WARNING: %v", err)
		if r.err == nil {
			r.err = err
		}
	}
}

// Written reports how many frames were saved.
func (r *Recorder) Written() int { return r.written }

// Err returns the first error hit while handling events.
func (r *Recorder) Err() error { return r.err }

// Close flushes the PDF document, if any. It is safe to call twice.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.pdf == nil {
		return nil
	}
	if err := r.pdf.Save(r.path); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return nil
}
