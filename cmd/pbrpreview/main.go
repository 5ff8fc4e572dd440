package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skyrim-pbrgen/internal/config"
	"skyrim-pbrgen/internal/derive"
	"skyrim-pbrgen/internal/fileio"
	"skyrim-pbrgen/internal/postprocess"
	"skyrim-pbrgen/internal/texture"
)

// pbrpreview renders the emissive mask a source would produce, as a
// small thumbnail for tuning the glow threshold before a full run.
func main() {
	defaults := config.Default()

	inPath := flag.String("in", "", "Source image")
	outPath := flag.String("out", "", "Output path (default: <in>_glow_preview.webp)")
	threshold := flag.Float64("threshold", float64(defaults.GlowThreshold), "Glow luminance threshold in 0..1")
	binary := flag.Bool("binary", false, "Hard on/off mask instead of smooth falloff")
	intensity := flag.Float64("intensity", float64(defaults.GlowIntensity), "Smooth mask intensity")
	size := flag.Int("size", 256, "Longest edge of the preview")
	asPNG := flag.Bool("png", false, "Write PNG instead of WebP")

	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		flag.Usage()
		os.Exit(1)
	}

	src, err := texture.Load(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	l := src.Luminance()
	alpha := src.A
	if src.Opaque() {
		alpha = nil
	}

	var mask *texture.Field
	if *binary {
		mask = derive.GlowBinary(l, alpha, float32(*threshold))
	} else {
		mask = derive.GlowSmooth(l, alpha, float32(*threshold), float32(*intensity))
	}

	img := postprocess.Preview(mask, *size)

	out := *outPath
	if out == "" {
		stem := strings.TrimSuffix(*inPath, filepath.Ext(*inPath))
		if *asPNG {
			out = stem + "_glow_preview.png"
		} else {
			out = stem + "_glow_preview.webp"
		}
	}

	if *asPNG || strings.EqualFold(filepath.Ext(out), ".png") {
		err = fileio.WritePNG(out, img)
	} else {
		err = fileio.WriteWebP(out, img)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("Wrote %s (%dx%d)\n", out, b.Dx(), b.Dy())
}
