package services

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

// thumbWidth is the target width for gallery thumbnails; height keeps
// the aspect ratio.
const thumbWidth = 400

// GenerateThumbnail decodes an uploaded image and returns a JPEG
// thumbnail scaled to the gallery width. Images already narrower than
// the target are re-encoded without scaling.
func GenerateThumbnail(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > thumbWidth {
		img = resize.Resize(thumbWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 82}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
