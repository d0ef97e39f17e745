package shape

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindRect, ParseKind("rect"))
	assert.Equal(t, KindRect, ParseKind(" Rect "))
	assert.Equal(t, KindCircle, ParseKind("circle"))
	assert.Equal(t, KindUnknown, ParseKind("triangle"))
	assert.Equal(t, KindUnknown, ParseKind(""))
	assert.Equal(t, "circle", KindCircle.String())
}

func TestDecodeFrameLowerCaseKeys(t *testing.T) {
	data := []byte(`[
		{"kind":"rect","x":0.5,"y":0.5,"w":0.2,"h":0.1,"color":"#ff0000","filled":true},
		{"kind":"circle","x":0.1,"y":0.9,"r":0.05,"color":"blue","filled":false,"text":"D","text_color":"white"}
	]`)
	shapes, err := DecodeFrame(data)
	require.NoError(t, err)
	require.Len(t, shapes, 2)

	assert.Equal(t, KindRect, shapes[0].Kind)
	assert.Equal(t, 0.2, shapes[0].W)
	assert.Equal(t, 0.1, shapes[0].H)
	assert.Equal(t, "#ff0000", shapes[0].Color)
	assert.True(t, shapes[0].Filled)

	assert.Equal(t, KindCircle, shapes[1].Kind)
	assert.Equal(t, 0.05, shapes[1].R)
	assert.False(t, shapes[1].Filled)
	assert.Equal(t, "D", shapes[1].Text)
	assert.Equal(t, "white", shapes[1].TextColor)
}

func TestDecodeFramePortrayalKeys(t *testing.T) {
	data := []byte(`[{"Shape":"circle","r":1,"Filled":"true","Layer":0,"Color":"Red","text":"F","heading_x":1,"heading_y":0}]`)
	shapes, err := DecodeFrame(data)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, KindCircle, shapes[0].Kind)
	assert.Equal(t, "Red", shapes[0].Color)
	assert.True(t, shapes[0].Filled)
	assert.Equal(t, "F", shapes[0].Text)
}

func TestDecodeFrameKeepsUnknownKinds(t *testing.T) {
	shapes, err := DecodeFrame([]byte(`[{"kind":"triangle","x":0.5,"y":0.5},{"kind":"rect","x":0.1,"y":0.1,"w":0.1,"h":0.1}]`))
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	assert.Equal(t, KindUnknown, shapes[0].Kind)
	assert.Equal(t, "triangle", shapes[0].RawKind)
	assert.Equal(t, KindRect, shapes[1].Kind)
}

func TestDecodeFrameErrors(t *testing.T) {
	for name, data := range map[string]string{
		"not an array":   `{"kind":"rect"}`,
		"bad coordinate": `[{"kind":"rect","x":"left"}]`,
		"bad filled":     `[{"kind":"rect","filled":"maybe"}]`,
		"filled number":  `[{"kind":"rect","filled":3}]`,
		"truncated":      `[{"kind":"rect"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeFrame([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestEncodeFrameDecodes(t *testing.T) {
	in := []Descriptor{
		Rect(0.5, 0.5, 0.2, 0.1, "#ff0000", true),
		Circle(0.25, 0.75, 0.05, "black", false).WithText("P", "white"),
	}
	data, err := EncodeFrame(in)
	require.NoError(t, err)
	out, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{0xff, 0, 0, 0xff}},
		{"#F00", color.RGBA{0xff, 0, 0, 0xff}},
		{"#00ff0080", color.RGBA{0, 0x80, 0, 0x80}},
		{"Red", color.RGBA{0xff, 0, 0, 0xff}},
		{"black", color.RGBA{0, 0, 0, 0xff}},
		{"  Blue ", color.RGBA{0, 0, 0xff, 0xff}},
		{"rgb(10, 20, 30)", color.RGBA{10, 20, 30, 0xff}},
		{"rgba(255,255,255,0)", color.RGBA{}},
		{"transparent", color.RGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "rgb(300,0,0)", "rgba(1,2,3,2)", "notacolor"} {
		_, err := ParseColor(in)
		assert.True(t, errors.Is(err, ErrUnknownColor), "%q: %v", in, err)
	}
}
