package imaging

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestDetectPNG(t *testing.T) {
	format, err := Detect(bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestDetectRejectsGarbage(t *testing.T) {
	_, err := Detect(bytes.NewReader([]byte("definitely not an image")))
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestDetectRejectsEmpty(t *testing.T) {
	_, err := Detect(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrNotAnImage)
}
