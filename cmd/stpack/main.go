package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"skyrim-pbrgen/internal/batch"
	"skyrim-pbrgen/internal/dds"
	"skyrim-pbrgen/internal/ingest"
)

// stpack repacks authored PBR map sets, typically SpeedTree or
// Substance exports, into Skyrim texture sets without deriving
// anything.
func main() {
	srcDir := flag.String("src", ".", "Directory holding authored map sets")
	outputDir := flag.String("out", "", "Output directory (default: <src>-skyrim)")
	format := flag.String("format", "auto", "DDS codec: auto, bc1 or bc3")
	skipMips := flag.Bool("skipmips", false, "Write only the top mip level")
	testN := flag.Int("test", 0, "Pack only first N sets for testing")

	flag.Parse()

	ddsFormat, err := dds.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sets, err := ingest.Scan(*srcDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *testN > 0 && *testN < len(sets) {
		sets = sets[:*testN]
	}
	if len(sets) == 0 {
		fmt.Println("No map sets found.")
		os.Exit(0)
	}

	outDir := *outputDir
	if outDir == "" {
		outDir = filepath.Clean(*srcDir) + "-skyrim"
	}

	fmt.Printf("Skyrim texture set packer\n")
	fmt.Printf("Sets: %d\n", len(sets))
	fmt.Printf("Output: %s\n", outDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	packer := &ingest.Packer{
		Enc: &dds.Service{Format: ddsFormat, Mips: !*skipMips},
	}

	failed := 0
	entries := make([]batch.ManifestEntry, 0, len(sets))
	for _, set := range sets {
		res := packer.PackSet(ctx, set, outDir)
		entry := batch.ManifestEntry{
			Source:   res.Source,
			Target:   "skyrim",
			Mode:     "pack",
			State:    res.State.String(),
			Outputs:  res.Outputs,
			Warnings: res.Warnings,
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
			failed++
			fmt.Printf("  %s: FAILED: %v\n", set.Stem, res.Err)
		} else {
			fmt.Printf("  %s: %d files\n", set.Stem, len(res.Outputs))
			for _, w := range res.Warnings {
				fmt.Printf("    warning: %s\n", w)
			}
		}
		entries = append(entries, entry)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Packed: %d/%d\n", len(sets)-failed, len(sets))

	manifestPath := filepath.Join(outDir, "manifest.json")
	os.MkdirAll(outDir, 0755)
	if err := batch.WriteEntries(manifestPath, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
