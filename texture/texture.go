// Package texture loads BMP images into GL texture objects.
package texture

import (
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

type Texture struct {
	ID     uint32
	Width  int // uploaded size, padded when a power of two was required
	Height int

	// left, top, right, bottom texture coordinates of the image inside the
	// uploaded texture
	Coords [4]float32
}

func NearestPowerOfTwo(n int) int {
	v := 1
	for v < n {
		v <<= 1
	}
	return v
}

// NeedsPowerOfTwo reports whether a context of the given GL version string
// only takes power of two texture sizes.
func NeedsPowerOfTwo(glVersion string) bool {
	return strings.HasPrefix(glVersion, "1.")
}

func Decode(r io.Reader) (image.Image, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode bmp")
	}
	return img, nil
}

// Prepare converts img to RGBA pixels for upload. With pot set the image is
// placed in the top left corner of a transparent power of two canvas.
func Prepare(img image.Image, pot bool) (*image.NRGBA, [4]float32) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if !pot {
		return imaging.Clone(img), [4]float32{0, 0, 1, 1}
	}

	tw, th := NearestPowerOfTwo(w), NearestPowerOfTwo(h)
	canvas := imaging.New(tw, th, color.NRGBA{})
	canvas = imaging.Paste(canvas, img, image.Pt(0, 0))

	return canvas, [4]float32{0, 0, float32(w) / float32(tw), float32(h) / float32(th)}
}

// Load reads a BMP file and uploads it as a 2D texture with nearest filtering
// and clamped edges. The GL context must be current.
func Load(path string, pot bool) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load texture %q", path)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load texture %q", path)
	}

	pixels, coords := Prepare(img, pot)
	t := &Texture{
		Width:  pixels.Rect.Dx(),
		Height: pixels.Rect.Dy(),
		Coords: coords,
	}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.Width), int32(t.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels.Pix))

	return t, nil
}

func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
