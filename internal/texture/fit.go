package texture

import "github.com/nfnt/resize"

// Fit resizes the source to w by h with bilinear filtering, so
// companion maps authored at a different resolution line up with the
// base color. Sources already at the requested size pass through.
func Fit(s *Source, w, h int) (*Source, error) {
	if s.W == w && s.H == h {
		return s, nil
	}
	return FromImage(resize.Resize(uint(w), uint(h), s.NRGBA(), resize.Bilinear))
}
