package postprocess

import (
	"image"

	"skyrim-pbrgen/internal/texture"
)

// Preview renders a derived mask as a grayscale image sized for quick
// inspection. The mask keeps its aspect ratio inside maxEdge.
func Preview(mask *texture.Field, maxEdge int) *image.NRGBA {
	return Downsample(mask.NRGBA(), maxEdge)
}
