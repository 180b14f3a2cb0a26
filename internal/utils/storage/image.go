package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"slices"

	_ "golang.org/x/image/webp"
)

var AllowImage = []string{"jpeg", "png", "gif", "webp"}

var ErrNotImage = errors.New("payload is not a decodable image")

// DetectImage fully decodes data and returns the file extension and content
// type for it.
func DetectImage(data []byte) (ext string, contentType string, err error) {
	if len(data) == 0 {
		return "", "", ErrNotImage
	}
	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil || !slices.Contains(AllowImage, format) {
		return "", "", ErrNotImage
	}
	ext = "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	return ext, "image/" + format, nil
}
