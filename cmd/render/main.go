package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"raycast-renderer/internal/config"
	"raycast-renderer/internal/output"
	"raycast-renderer/internal/render"
	"raycast-renderer/internal/scene"
	"raycast-renderer/internal/scenes"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "", fmt.Sprintf("Preset scene %v (default: default)", scenes.Names()))
	modelDir := flag.String("models", "", "Directory with .obj models (default: resources/models)")
	out := flag.String("output", "", "Output image path (default: render.png)")
	format := flag.String("format", "", "Image format png, webp or tga (default: from -output)")
	width := flag.Int("width", 0, "Image width (default: 1280)")
	height := flag.Int("height", 0, "Image height (default: 720)")
	threads := flag.Int("threads", 0, "Number of stripes/workers, must divide width (default: 16)")
	samples := flag.Int("samples", 0, "Rays per pixel; 1 disables jitter (default: 16)")
	supersample := flag.Int("supersample", 0, "Render at N× size and downsample (default: 1)")
	seed := flag.Uint64("seed", 0, "Jitter seed for reproducible output (default: random)")
	manifest := flag.Bool("manifest", false, "Write <output>.json with render stats")
	quiet := flag.Bool("quiet", false, "Disable progress output")

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
	cfg.Resolve(config.Flags{
		Scene:       *sceneName,
		ModelDir:    *modelDir,
		Output:      *out,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Threads:     *threads,
		Samples:     *samples,
		Supersample: *supersample,
		Seed:        *seed,
	})

	if *manifest {
		cfg.Manifest = true
	}

	imgFormat, err := cfg.OutputFormat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := cfg.RenderOptions()
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		opts.Logger = log.New(os.Stdout, "", 0)
	}

	root, err := scenes.Build(cfg.Scene, scenes.Options{ModelDir: cfg.ModelDir, Charset: cfg.Charset})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}
	counts := scene.Count(root)

	fmt.Printf("Ray tracer → %s\n", imgFormat)
	fmt.Printf("Scene: %s (%d shapes, %d triangles)\n", cfg.Scene, total(counts.Shapes), counts.Triangles)
	fmt.Printf("Size: %dx%d, Supersample: %d, Samples: %d, Threads: %d\n",
		cfg.Width, cfg.Height, cfg.Supersample, cfg.Samples, opts.Threads)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	fb, stats, err := render.Render(context.Background(), root, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	img := output.ToNRGBA(fb)
	if cfg.Supersample > 1 {
		img = output.Downsample(img, cfg.Width, cfg.Height)
	}
	if err := output.Save(cfg.Output, img, imgFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Rays: %d (%d hit), %.0f rays/ms\n", stats.Rays, stats.HitRays, stats.RaysPerMs)

	if cfg.Manifest {
		m := output.Manifest{
			Image:       cfg.Output,
			Scene:       cfg.Scene,
			Width:       cfg.Width,
			Height:      cfg.Height,
			Supersample: cfg.Supersample,
			Samples:     cfg.Samples,
			Threads:     opts.Threads,
			Seed:        cfg.Seed,
			Stats:       stats,
			CreatedAt:   time.Now().UTC(),
		}
		path := output.ManifestPath(cfg.Output)
		if err := output.WriteManifest(path, m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", path)
		}
	}
}

func total(m map[string]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}
