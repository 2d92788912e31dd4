// Package imaging validates uploaded image payloads. The standard
// library decoders are enough here: a payload either parses as a
// png/jpeg/gif header or the upload is rejected.
package imaging

import (
	"errors"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrNotAnImage is returned when a payload does not decode as a
// supported image format.
var ErrNotAnImage = errors.New("payload is not a decodable image")

// Detect reads the payload header and returns the detected format
// ("png", "jpeg" or "gif"). It consumes the reader.
func Detect(r io.Reader) (string, error) {
	_, format, err := image.DecodeConfig(r)
	if err != nil {
		return "", ErrNotAnImage
	}
	return format, nil
}
