package dds

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/InfinityTools/go-squish"
	"github.com/nfnt/resize"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Format selects the block compression codec.
type Format int

const (
	// FormatAuto picks BC1 for opaque images and BC3 when any pixel
	// carries partial alpha.
	FormatAuto Format = iota
	FormatBC1
	FormatBC3
)

// ParseFormat maps config and flag spellings onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "bc1", "dxt1":
		return FormatBC1, nil
	case "bc3", "dxt5":
		return FormatBC3, nil
	}
	return 0, fmt.Errorf("dds: %w: %q", ErrUnsupportedFormat, s)
}

// Service encodes NRGBA images into BC-compressed DDS containers.
type Service struct {
	Format Format
	Mips   bool
}

func (s *Service) Ext() string { return ".dds" }

// Encode compresses img and all requested mip levels into a complete
// DDS byte stream. Mip levels are regenerated from level 0 each time
// rather than chained, which avoids accumulating filter loss.
func (s *Service) Encode(ctx context.Context, img *image.NRGBA) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("dds: empty image %dx%d", w, h)
	}

	format := s.Format
	if format == FormatAuto {
		if hasAlpha(img) {
			format = FormatBC3
		} else {
			format = FormatBC1
		}
	}

	var dxtFlags int
	var fourCC string
	switch format {
	case FormatBC1:
		dxtFlags = squish.FLAGS_DXT1
		fourCC = "DXT1"
	case FormatBC3:
		dxtFlags = squish.FLAGS_DXT5
		fourCC = "DXT5"
	default:
		return nil, fmt.Errorf("dds: %w: %d", ErrUnsupportedFormat, format)
	}

	levels := 1
	if s.Mips {
		levels = mipLevels(w, h)
	}

	var data []byte
	linearSize := 0
	mw, mh := w, h
	for level := 0; level < levels; level++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mip := img
		if level > 0 {
			mip = toNRGBA(resize.Resize(uint(mw), uint(mh), img, resize.Lanczos3))
		}
		block := squish.CompressImage(padTo4(mip), dxtFlags|squish.FLAGS_CLUSTER_FIT, squish.METRIC_PERCEPTUAL)
		if len(block) == 0 {
			return nil, fmt.Errorf("dds: compress level %d of %dx%d image failed", level, w, h)
		}
		if level == 0 {
			linearSize = len(block)
		}
		data = append(data, block...)
		mw, mh = halve(mw), halve(mh)
	}

	out := make([]byte, 0, headerSize+len(data))
	out = append(out, headerBytes(w, h, levels, fourCC, linearSize)...)
	return append(out, data...), nil
}

func hasAlpha(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			return true
		}
	}
	return false
}

// mipLevels counts the full chain down to 1x1.
func mipLevels(w, h int) int {
	n := 1
	for w > 1 || h > 1 {
		w, h = halve(w), halve(h)
		n++
	}
	return n
}

func halve(v int) int {
	if v <= 1 {
		return 1
	}
	return v / 2
}

// padTo4 extends the canvas to block-aligned dimensions. Pad pixels
// stay zero; the header still reports the original size, so readers
// never sample them.
func padTo4(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pw, ph := (w+3)&^3, (h+3)&^3
	if pw == w && ph == h && b.Min == (image.Point{}) {
		return img
	}
	out := image.NewNRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(out, image.Rect(0, 0, w, h), img, b.Min, draw.Src)
	return out
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
