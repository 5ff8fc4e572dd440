package postprocess

import (
	"image"

	"skyrim-pbrgen/internal/texture"
)

// DefaultBleedIterations bounds the dilation distance in pixels.
const DefaultBleedIterations = 12

// EdgeBleed dilates color from covered pixels into uncovered ones so
// that mipmapping and compression do not pull black fringes across
// cutout borders. Coverage comes from the mask when one is supplied,
// otherwise from the image's own alpha; the alpha channel itself is
// never modified. A fully covered image passes through untouched.
func EdgeBleed(img *image.NRGBA, coverage *texture.Field, iterations int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || iterations <= 0 {
		return img
	}

	covered := make([]bool, w*h)
	holes := false
	for i := range covered {
		if coverage != nil {
			covered[i] = coverage.Pix[i] > 0
		} else {
			covered[i] = img.Pix[i*4+3] > 0
		}
		if !covered[i] {
			holes = true
		}
	}
	if !holes {
		return img
	}

	src := append([]uint8(nil), img.Pix...)
	dst := make([]uint8, len(src))
	next := make([]bool, len(covered))

	for it := 0; it < iterations; it++ {
		copy(dst, src)
		copy(next, covered)
		changed := false
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				if covered[i] {
					continue
				}
				var rs, gs, bs, n int
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						j := ny*w + nx
						if !covered[j] {
							continue
						}
						rs += int(src[j*4])
						gs += int(src[j*4+1])
						bs += int(src[j*4+2])
						n++
					}
				}
				if n == 0 {
					continue
				}
				dst[i*4] = uint8((rs + n/2) / n)
				dst[i*4+1] = uint8((gs + n/2) / n)
				dst[i*4+2] = uint8((bs + n/2) / n)
				next[i] = true
				changed = true
			}
		}
		src, dst = dst, src
		covered, next = next, covered
		if !changed {
			break
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(out.Pix, src)
	for i := 0; i < w*h; i++ {
		out.Pix[i*4+3] = img.Pix[i*4+3]
	}
	return out
}
