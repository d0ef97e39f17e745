// internal/feed/websocket.go
package feed

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"simcanvas/internal/shape"
)

const (
	frameBuffer  = 16
	closeTimeout = time.Second
)

// WebSocket reads frames from a websocket server. Every text message is
// one JSON frame; binary messages are ignored.
type WebSocket struct {
	url   string
	conn  *websocket.Conn
	items chan item
	done  chan struct{}

	// err is written by the reader before it closes items.
	err error

	closeOnce sync.Once
}

// DialWebSocket connects to url and starts reading. A non-empty request is
// sent as a text message right after the handshake, for servers that wait
// to be asked.
func DialWebSocket(ctx context.Context, url string, request []byte) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: dial %s: %w", url, err)
	}
	if len(request) > 0 {
		if err := conn.WriteMessage(websocket.TextMessage, request); err != nil {
			conn.Close()
			return nil, fmt.Errorf("feed: send request to %s: %w", url, err)
		}
	}
	ws := &WebSocket{
		url:   url,
		conn:  conn,
		items: make(chan item, frameBuffer),
		done:  make(chan struct{}),
	}
	go ws.readLoop()
	return ws, nil
}

func (ws *WebSocket) readLoop() {
	defer close(ws.items)
	for {
		typ, msg, err := ws.conn.ReadMessage()
		if err != nil {
			ws.err = ws.terminalError(err)
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		frame, err := shape.DecodeFrame(msg)
		if err != nil {
			err = fmt.Errorf("feed: %s: %w", ws.url, err)
		}
		select {
		case ws.items <- item{frame: frame, err: err}:
		case <-ws.done:
			ws.err = ErrClosed
			return
		}
	}
}

func (ws *WebSocket) terminalError(err error) error {
	select {
	case <-ws.done:
		return ErrClosed
	default:
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return io.EOF
	}
	return fmt.Errorf("feed: read %s: %w", ws.url, err)
}

func (ws *WebSocket) Next(ctx context.Context) ([]shape.Descriptor, error) {
	return next(ctx, ws.items, ws.done, &ws.err)
}

// Close sends a close frame and drops the connection. The reader
// goroutine exits once the connection is gone.
func (ws *WebSocket) Close() error {
	var err error
	ws.closeOnce.Do(func() {
		close(ws.done)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		// Best effort: the server may already be gone.
		_ = ws.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
		if cerr := ws.conn.Close(); cerr != nil {
			err = fmt.Errorf("feed: close %s: %w", ws.url, cerr)
		}
	})
	return err
}

func (ws *WebSocket) Name() string { return ws.url }
