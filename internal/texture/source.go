package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnreadableSource reports an input image that cannot be decoded or
// has zero dimensions.
var ErrUnreadableSource = errors.New("unreadable source")

// Source is one decoded input image as normalized channel fields.
// Gray inputs replicate into R, G and B; sources without an alpha
// channel read as fully opaque.
type Source struct {
	W, H       int
	R, G, B, A *Field
}

// Load decodes the image file at path.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w: %s: %v", ErrUnreadableSource, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: %w: %s: %v", ErrUnreadableSource, path, err)
	}
	return FromImage(img)
}

// Decode reads any registered raster format from r.
func Decode(r io.Reader) (*Source, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: %w: %v", ErrUnreadableSource, err)
	}
	return FromImage(img)
}

// FromImage converts a decoded image into channel fields. 8- and
// 16-bit depths are read at full precision.
func FromImage(img image.Image) (*Source, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("texture: %w: zero dimensions", ErrUnreadableSource)
	}

	s := &Source{
		W: w, H: h,
		R: NewField(w, h), G: NewField(w, h),
		B: NewField(w, h), A: NewField(w, h),
	}

	switch im := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			o := im.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				i := y*w + x
				s.R.Pix[i] = float32(im.Pix[o]) / 255
				s.G.Pix[i] = float32(im.Pix[o+1]) / 255
				s.B.Pix[i] = float32(im.Pix[o+2]) / 255
				s.A.Pix[i] = float32(im.Pix[o+3]) / 255
				o += 4
			}
		}
	case *image.NRGBA64:
		for y := 0; y < h; y++ {
			o := im.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				i := y*w + x
				s.R.Pix[i] = float32(uint16(im.Pix[o])<<8|uint16(im.Pix[o+1])) / 65535
				s.G.Pix[i] = float32(uint16(im.Pix[o+2])<<8|uint16(im.Pix[o+3])) / 65535
				s.B.Pix[i] = float32(uint16(im.Pix[o+4])<<8|uint16(im.Pix[o+5])) / 65535
				s.A.Pix[i] = float32(uint16(im.Pix[o+6])<<8|uint16(im.Pix[o+7])) / 65535
				o += 8
			}
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			o := im.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				i := y*w + x
				v := float32(im.Pix[o]) / 255
				s.R.Pix[i] = v
				s.G.Pix[i] = v
				s.B.Pix[i] = v
				s.A.Pix[i] = 1
				o++
			}
		}
	case *image.Gray16:
		for y := 0; y < h; y++ {
			o := im.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				i := y*w + x
				v := float32(uint16(im.Pix[o])<<8|uint16(im.Pix[o+1])) / 65535
				s.R.Pix[i] = v
				s.G.Pix[i] = v
				s.B.Pix[i] = v
				s.A.Pix[i] = 1
				o += 2
			}
		}
	default:
		// YCbCr, paletted, premultiplied and everything else go through
		// the 16-bit color model.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
				i := y*w + x
				s.R.Pix[i] = float32(c.R) / 65535
				s.G.Pix[i] = float32(c.G) / 65535
				s.B.Pix[i] = float32(c.B) / 65535
				s.A.Pix[i] = float32(c.A) / 65535
			}
		}
	}
	return s, nil
}

// Luminance returns the Rec.709 weighted sum of the color channels,
// computed on the stored channel values.
func (s *Source) Luminance() *Field {
	l := NewField(s.W, s.H)
	for i := range l.Pix {
		l.Pix[i] = 0.2126*s.R.Pix[i] + 0.7152*s.G.Pix[i] + 0.0722*s.B.Pix[i]
	}
	return l
}

// Opaque reports whether every alpha sample is fully opaque.
func (s *Source) Opaque() bool {
	for _, a := range s.A.Pix {
		if a < 1 {
			return false
		}
	}
	return true
}

// NRGBA renders the source back into an 8-bit image.
func (s *Source) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.W, s.H))
	for i := 0; i < s.W*s.H; i++ {
		o := i * 4
		img.Pix[o] = U8(s.R.Pix[i])
		img.Pix[o+1] = U8(s.G.Pix[i])
		img.Pix[o+2] = U8(s.B.Pix[i])
		img.Pix[o+3] = U8(s.A.Pix[i])
	}
	return img
}

// SupportedExt reports whether path has a decodable raster extension.
func SupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".tga", ".bmp", ".gif", ".webp", ".tif", ".tiff":
		return true
	}
	return false
}
