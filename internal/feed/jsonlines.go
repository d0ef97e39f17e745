// internal/feed/jsonlines.go
package feed

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"simcanvas/internal/shape"
)

const maxLineSize = 4 << 20

// JSONLines reads one JSON frame per line. Blank lines are skipped.
//
// Lines are read on a separate goroutine so Next can give up on a stalled
// pipe when its context expires.
type JSONLines struct {
	name   string
	closer io.Closer
	items  chan item
	done   chan struct{}

	// err is written by the reader before it closes items.
	err error

	closeOnce sync.Once
}

// NewJSONLines reads frames from r. If r is an io.Closer it is closed by
// Close.
func NewJSONLines(name string, r io.Reader) *JSONLines {
	j := &JSONLines{
		name:  name,
		items: make(chan item, frameBuffer),
		done:  make(chan struct{}),
	}
	if c, ok := r.(io.Closer); ok {
		j.closer = c
	}
	go j.readLoop(r)
	return j
}

// OpenFile opens path as a JSON-lines feed. "-" reads standard input.
func OpenFile(path string) (*JSONLines, error) {
	if path == "-" {
		return NewJSONLines("stdin", io.NopCloser(os.Stdin)), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("feed: open %s: %w", path, err)
	}
	return NewJSONLines(path, f), nil
}

func (j *JSONLines) readLoop(r io.Reader) {
	defer close(j.items)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		if len(bytes.TrimSpace(sc.Bytes())) == 0 {
			continue
		}
		frame, err := shape.DecodeFrame(sc.Bytes())
		if err != nil {
			err = fmt.Errorf("feed: %s line %d: %w", j.name, line, err)
		}
		select {
		case j.items <- item{frame: frame, err: err}:
		case <-j.done:
			j.err = ErrClosed
			return
		}
	}
	select {
	case <-j.done:
		j.err = ErrClosed
		return
	default:
	}
	if err := sc.Err(); err != nil {
		j.err = fmt.Errorf("feed: %s: %w", j.name, err)
		return
	}
	j.err = io.EOF
}

func (j *JSONLines) Next(ctx context.Context) ([]shape.Descriptor, error) {
	return next(ctx, j.items, j.done, &j.err)
}

// Close stops reading and closes the underlying reader. Standard input is
// left open, so its reader goroutine lingers until the next line or EOF.
func (j *JSONLines) Close() error {
	var err error
	j.closeOnce.Do(func() {
		close(j.done)
		if j.closer != nil {
			err = j.closer.Close()
		}
	})
	return err
}

func (j *JSONLines) Name() string { return j.name }
