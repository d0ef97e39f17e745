// internal/event/types.go
package event

import "simcanvas/internal/shape"

const (
	FrameRendered EventType = "FrameRendered" // Data: FrameData
	CanvasReset   EventType = "CanvasReset"   // Data: nil
	FeedClosed    EventType = "FeedClosed"    // Data: error, nil on a clean end
)

// FrameData accompanies FrameRendered. Index counts rendered frames from 0
// and restarts after a reset.
type FrameData struct {
	Index  int
	Shapes []shape.Descriptor
}
