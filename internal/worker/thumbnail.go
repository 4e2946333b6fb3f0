package worker

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"
)

// Thumbnail scales the decoded image down to the given width, keeping the
// aspect ratio, and re-encodes it (JPEG stays JPEG, everything else
// becomes PNG). Nearest-neighbour is good enough for preview sizes.
func Thumbnail(data []byte, width int) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= width {
		return data, nil
	}
	height := srcH * width / srcW
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		sy := b.Min.Y + y*srcH/height
		for x := 0; x < width; x++ {
			sx := b.Min.X + x*srcW/width
			dst.Set(x, y, src.At(sx, sy))
		}
	}

	var out bytes.Buffer
	if format == "jpeg" {
		err = jpeg.Encode(&out, dst, nil)
	} else {
		err = png.Encode(&out, dst)
	}
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
