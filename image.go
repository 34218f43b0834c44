package render

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes png, jpeg, gif, bmp, tiff or webp data.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// OpenImage decodes the image file at path.
func OpenImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// toRGBA applies the requested flips and returns an RGBA copy of img.
func toRGBA(img image.Image, flipH, flipV bool) *image.RGBA {
	var out *image.RGBA
	if flipH {
		out = transform.FlipH(img)
		img = out
	}
	if flipV {
		out = transform.FlipV(img)
	}
	if out == nil {
		out = clone.AsRGBA(img)
	}
	return out
}

// pixelData packs the first format.Channels() channels of every pixel,
// rows top to bottom, with no row padding.
func pixelData(img *image.RGBA, format PixelFormat) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	channels := format.Channels()
	out := make([]byte, 0, w*h*channels)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		if channels == 4 {
			out = append(out, row...)
			continue
		}
		for x := 0; x < w; x++ {
			out = append(out, row[x*4:x*4+channels]...)
		}
	}
	return out
}
