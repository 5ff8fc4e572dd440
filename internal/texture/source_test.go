package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestFromImageNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 128, B: 255, A: 64})

	s, err := FromImage(img)
	if err != nil {
		t.Fatalf("from image: %v", err)
	}
	if s.W != 2 || s.H != 1 {
		t.Fatalf("size mismatch: %dx%d", s.W, s.H)
	}
	if s.R.At(0, 0) != 1 || s.G.At(0, 0) != 0 {
		t.Fatalf("pixel 0 mismatch: r=%g g=%g", s.R.At(0, 0), s.G.At(0, 0))
	}
	if got := s.A.At(1, 0); math.Abs(float64(got)-64.0/255) > 1e-6 {
		t.Fatalf("alpha mismatch: %g", got)
	}
}

func TestFromImageGrayReplicates(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 100})

	s, err := FromImage(img)
	if err != nil {
		t.Fatalf("from image: %v", err)
	}
	want := float32(100) / 255
	if s.R.At(0, 0) != want || s.G.At(0, 0) != want || s.B.At(0, 0) != want {
		t.Fatalf("gray not replicated: %g %g %g", s.R.At(0, 0), s.G.At(0, 0), s.B.At(0, 0))
	}
	if s.A.At(0, 0) != 1 {
		t.Fatalf("gray alpha not opaque: %g", s.A.At(0, 0))
	}
}

func TestFromImage16Bit(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	img.SetNRGBA64(0, 0, color.NRGBA64{R: 65535, G: 32768, B: 0, A: 65535})

	s, err := FromImage(img)
	if err != nil {
		t.Fatalf("from image: %v", err)
	}
	if s.R.At(0, 0) != 1 {
		t.Fatalf("16-bit red mismatch: %g", s.R.At(0, 0))
	}
	if got := s.G.At(0, 0); math.Abs(float64(got)-32768.0/65535) > 1e-6 {
		t.Fatalf("16-bit green mismatch: %g", got)
	}
}

func TestFromImageZeroDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := FromImage(img); !errors.Is(err, ErrUnreadableSource) {
		t.Fatalf("expected unreadable source, got %v", err)
	}
}

func TestLuminanceWeights(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 255})

	s, err := FromImage(img)
	if err != nil {
		t.Fatalf("from image: %v", err)
	}
	l := s.Luminance()
	for i, want := range []float32{0.2126, 0.7152, 0.0722} {
		if got := l.At(i, 0); math.Abs(float64(got-want)) > 1e-6 {
			t.Fatalf("weight %d mismatch: got %g want %g", i, got, want)
		}
	}
}

func TestLoadPNGRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 7)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	path := filepath.Join(t.TempDir(), "src.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := s.NRGBA()
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Fatalf("round trip mismatch")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, ErrUnreadableSource) {
		t.Fatalf("missing file: expected unreadable source, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnreadableSource) {
		t.Fatalf("garbage file: expected unreadable source, got %v", err)
	}
}

func TestU8Quantization(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := U8(c.in); got != c.want {
			t.Fatalf("u8(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestOpaque(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	s, _ := FromImage(img)
	if !s.Opaque() {
		t.Fatalf("expected opaque")
	}
	img.Pix[3] = 254
	s, _ = FromImage(img)
	if s.Opaque() {
		t.Fatalf("expected transparency detected")
	}
}
