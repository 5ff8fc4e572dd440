package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"skyrim-pbrgen/internal/batch"
	"skyrim-pbrgen/internal/config"
	"skyrim-pbrgen/internal/dds"
	"skyrim-pbrgen/internal/export"
	"skyrim-pbrgen/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	srcPath := flag.String("src", "", "Source image or directory (default: current directory)")
	outputDir := flag.String("out", "", "Output directory (default: next to the source)")
	target := flag.String("target", "", "Output target: skyrim, authoring or speedtree (default: skyrim)")
	mode := flag.String("mode", "", "Output mode: full, both or separates (default: full)")
	preset := flag.String("preset", "", "Material preset: "+strings.Join(config.PresetNames(), ", "))
	format := flag.String("format", "", "DDS codec: auto, bc1 or bc3 (default: auto)")
	skipMips := flag.Bool("skipmips", false, "Write only the top mip level")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Process only first N sources for testing")
	normalPath := flag.String("normal", "", "Authored normal map for a single source")
	glowPath := flag.String("glow", "", "Emissive source for a single source")
	subPath := flag.String("subsurface", "", "Subsurface source for a single source")
	stem := flag.String("stem", "", "Output name stem for a single source")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	if err := cfg.Resolve(config.Flags{
		SourceDir: *srcPath,
		OutputDir: *outputDir,
		Target:    *target,
		Mode:      *mode,
		Preset:    *preset,
		Format:    *format,
		Workers:   *workers,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *skipMips {
		cfg.SkipMips = true
	}

	tgt, err := export.ParseTarget(cfg.Target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	md, err := export.ParseMode(cfg.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ddsFormat, err := dds.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	info, err := os.Stat(cfg.SourceDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: source %s: %v\n", cfg.SourceDir, err)
		os.Exit(1)
	}

	// Build the job list: one explicit job for a single file, or a
	// directory walk that pairs sources with their companion maps.
	var jobs []export.Job
	outDir := cfg.OutputDir
	if info.IsDir() {
		if outDir == "" {
			outDir = cfg.SourceDir + "-pbr"
		}
		jobs, err = discoverJobs(cfg.SourceDir, outDir, tgt, md, cfg.Params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if outDir == "" {
			outDir = filepath.Dir(cfg.SourceDir)
		}
		jobs = []export.Job{{
			Source:     cfg.SourceDir,
			Normal:     *normalPath,
			Glow:       *glowPath,
			Subsurface: *subPath,
			Stem:       *stem,
			OutDir:     outDir,
			Target:     tgt,
			Mode:       md,
			Params:     cfg.Params,
		}}
	}

	// Limit for testing
	if *testN > 0 && *testN < len(jobs) {
		jobs = jobs[:*testN]
	}

	if len(jobs) == 0 {
		fmt.Println("No sources to process.")
		os.Exit(0)
	}

	// Print summary
	note := ""
	if cfg.Preset != "" {
		note = fmt.Sprintf(" (preset %s)", cfg.Preset)
	} else if *testN > 0 {
		note = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Skyrim PBR map generator%s\n", note)
	fmt.Printf("Sources: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Target: %s, Mode: %s\n", tgt, md)
	fmt.Printf("Output: %s\n", outDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	planner := &export.Planner{
		Encoder: &dds.Service{Format: ddsFormat, Mips: !cfg.SkipMips},
	}
	results := batch.Run(ctx, batch.Config{Planner: planner, Workers: cfg.Workers}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var failures []export.Result
	warnings := 0
	for _, r := range results {
		if r.State == export.StateDone {
			success++
		} else {
			failed++
			failures = append(failures, r)
		}
		warnings += len(r.Warnings)
	}

	fmt.Printf("Processed: %d/%d\n", success, len(jobs))
	if warnings > 0 {
		fmt.Printf("Warnings: %d (see manifest)\n", warnings)
	}

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(failures) < limit {
			limit = len(failures)
		}
		for _, r := range failures[:limit] {
			fmt.Printf("  %s: %v\n", r.Source, r.Err)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(outDir, "manifest.json")
	os.MkdirAll(outDir, 0755)
	if err := batch.WriteManifest(manifestPath, jobs, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// companionRoles maps a filename suffix (before the extension) to the
// job field it fills. Files matching these never become jobs of their
// own.
var companionRoles = []string{"_normal", "_glow", "_subsurface"}

// discoverJobs pairs every source image in dir with its companion
// maps by naming convention: rock.png picks up rock_normal.png,
// rock_glow.png and rock_subsurface.png when present. Matching is
// case-insensitive, output names keep the source's casing.
func discoverJobs(dir, outDir string, tgt export.Target, md export.Mode, params config.Params) ([]export.Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var sources []string
	companions := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !texture.SupportedExt(e.Name()) {
			continue
		}
		name := e.Name()
		lower := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		role := ""
		for _, r := range companionRoles {
			if strings.HasSuffix(lower, r) {
				role = r
				break
			}
		}
		if role != "" {
			companions[lower] = filepath.Join(dir, name)
			continue
		}
		sources = append(sources, name)
	}
	sort.Strings(sources)

	jobs := make([]export.Job, 0, len(sources))
	for _, name := range sources {
		lower := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		jobs = append(jobs, export.Job{
			Source:     filepath.Join(dir, name),
			Normal:     companions[lower+"_normal"],
			Glow:       companions[lower+"_glow"],
			Subsurface: companions[lower+"_subsurface"],
			OutDir:     outDir,
			Target:     tgt,
			Mode:       md,
			Params:     params,
		})
	}
	return jobs, nil
}
