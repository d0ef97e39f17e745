// internal/shape/decode.go
package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// wireDescriptor accepts both the lower-case keys and the portrayal keys
// ("Shape", "Color", "Filled") emitted by the simulation server.
// encoding/json prefers exact key matches, so each pair stays separate.
type wireDescriptor struct {
	Kind  string `json:"kind"`
	Shape string `json:"Shape"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
	R float64 `json:"r"`

	Color          string          `json:"color"`
	PortrayalColor string          `json:"Color"`
	Filled         json.RawMessage `json:"filled"`
	PortrayalFill  json.RawMessage `json:"Filled"`

	Text      string `json:"text"`
	TextColor string `json:"text_color"`
}

// DecodeFrame decodes a JSON array of descriptors.
func DecodeFrame(data []byte) ([]Descriptor, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	shapes := make([]Descriptor, 0, len(raw))
	for i, item := range raw {
		d, err := decodeDescriptor(item)
		if err != nil {
			return nil, fmt.Errorf("decode frame: shape %d: %w", i, err)
		}
		shapes = append(shapes, d)
	}
	return shapes, nil
}

func decodeDescriptor(data []byte) (Descriptor, error) {
	var w wireDescriptor
	if err := json.Unmarshal(data, &w); err != nil {
		return Descriptor{}, err
	}
	kind := firstNonEmpty(w.Kind, w.Shape)
	color := firstNonEmpty(w.Color, w.PortrayalColor)
	fill := w.Filled
	if len(fill) == 0 {
		fill = w.PortrayalFill
	}
	filled, err := parseFilled(fill)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Kind:      ParseKind(kind),
		RawKind:   kind,
		X:         w.X,
		Y:         w.Y,
		W:         w.W,
		H:         w.H,
		R:         w.R,
		Color:     color,
		Filled:    filled,
		Text:      w.Text,
		TextColor: w.TextColor,
	}, nil
}

// parseFilled accepts a JSON bool, a quoted bool ("true") or nothing.
func parseFilled(raw json.RawMessage) (bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, fmt.Errorf("filled: want bool or string, got %s", raw)
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("filled: %w", err)
	}
	return b, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// EncodeFrame encodes descriptors with the lower-case keys understood by
// DecodeFrame.
func EncodeFrame(shapes []Descriptor) ([]byte, error) {
	type wire struct {
		Kind      string  `json:"kind"`
		X         float64 `json:"x"`
		Y         float64 `json:"y"`
		W         float64 `json:"w,omitempty"`
		H         float64 `json:"h,omitempty"`
		R         float64 `json:"r,omitempty"`
		Color     string  `json:"color"`
		Filled    bool    `json:"filled"`
		Text      string  `json:"text,omitempty"`
		TextColor string  `json:"text_color,omitempty"`
	}
	out := make([]wire, len(shapes))
	for i, d := range shapes {
		kind := d.RawKind
		if kind == "" {
			kind = d.Kind.String()
		}
		out[i] = wire{
			Kind: kind, X: d.X, Y: d.Y, W: d.W, H: d.H, R: d.R,
			Color: d.Color, Filled: d.Filled, Text: d.Text, TextColor: d.TextColor,
		}
	}
	return json.Marshal(out)
}
