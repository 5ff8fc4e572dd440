package derive

import (
	"sort"

	"skyrim-pbrgen/internal/texture"
)

// BoxMean computes the mean of each pixel's (2*radius+1)² neighborhood
// using a summed-area table, so cost does not grow with the radius.
// Windows shrink at the image edges.
func BoxMean(f *texture.Field, radius int) *texture.Field {
	if radius < 1 {
		return f.Clone()
	}
	w, h := f.W, f.H

	// integral[(y+1)*(w+1)+(x+1)] holds the sum over [0..x, 0..y].
	stride := w + 1
	integral := make([]float64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		rowSum := 0.0
		for x := 0; x < w; x++ {
			rowSum += float64(f.Pix[y*w+x])
			integral[(y+1)*stride+(x+1)] = integral[y*stride+(x+1)] + rowSum
		}
	}

	out := texture.NewField(w, h)
	for y := 0; y < h; y++ {
		y0, y1 := y-radius, y+radius+1
		if y0 < 0 {
			y0 = 0
		}
		if y1 > h {
			y1 = h
		}
		for x := 0; x < w; x++ {
			x0, x1 := x-radius, x+radius+1
			if x0 < 0 {
				x0 = 0
			}
			if x1 > w {
				x1 = w
			}
			sum := integral[y1*stride+x1] - integral[y0*stride+x1] -
				integral[y1*stride+x0] + integral[y0*stride+x0]
			out.Pix[y*w+x] = float32(sum / float64((y1-y0)*(x1-x0)))
		}
	}
	return out
}

// normalizePercentile rescales f so the lo-th percentile maps to 0 and
// the hi-th to 1, clamping outliers. The denominator is floored so a
// flat input normalizes to zero instead of dividing by zero, while
// sparse peaks above the hi percentile still saturate.
func normalizePercentile(f *texture.Field, lo, hi float64) *texture.Field {
	sorted := append([]float32(nil), f.Pix...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	pick := func(p float64) float32 {
		idx := int(p/100*float64(len(sorted)-1) + 0.5)
		return sorted[idx]
	}
	a, b := pick(lo), pick(hi)
	if b < a+1e-6 {
		b = a + 1e-6
	}

	out := texture.NewField(f.W, f.H)
	for i, v := range f.Pix {
		out.Pix[i] = texture.Clamp01((v - a) / (b - a))
	}
	return out
}
