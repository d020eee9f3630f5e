package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/output"
	"raycast-renderer/internal/raster"
	"raycast-renderer/internal/render"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Scene
	Scene    string `json:"scene"`
	ModelDir string `json:"model_dir"`
	Charset  string `json:"charset"`

	// Output
	Output   string `json:"output"`
	Format   string `json:"format"`
	Manifest bool   `json:"manifest"`

	// Render settings
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Threads     int            `json:"threads"`
	Samples     int            `json:"samples"`
	Supersample int            `json:"supersample"`
	Seed        uint64         `json:"seed"`
	Eye         *mathutil.Vec3 `json:"eye"`
	Light       *mathutil.Vec3 `json:"light"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene       string
	ModelDir    string
	Output      string
	Format      string
	Width       int
	Height      int
	Threads     int
	Samples     int
	Supersample int
	Seed        uint64
}

// Resolve applies CLI flags and fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.ModelDir != "" {
		c.ModelDir = flags.ModelDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Threads > 0 {
		c.Threads = flags.Threads
	}
	if flags.Samples > 0 {
		c.Samples = flags.Samples
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	// Defaults
	if c.Scene == "" {
		c.Scene = "default"
	}
	if c.ModelDir == "" {
		c.ModelDir = detectModelDir()
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Samples <= 0 {
		c.Samples = 16
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Threads <= 0 {
		c.Threads = defaultThreads(c.Width * c.Supersample)
	}
	if c.Eye == nil {
		c.Eye = &mathutil.Vec3{0, 0, 1}
	}
	if c.Light == nil {
		l := raster.DefaultLightConfig().ToLight
		c.Light = &l
	}

	// Output name and format follow each other when only one is given
	switch {
	case c.Output == "" && c.Format == "":
		c.Format = string(output.PNG)
		c.Output = "render.png"
	case c.Output == "":
		c.Output = "render." + strings.ToLower(strings.TrimPrefix(c.Format, "."))
	case c.Format == "":
		c.Format = strings.TrimPrefix(filepath.Ext(c.Output), ".")
	}
}

// defaultThreads prefers 16 stripes. When 16 does not divide width it takes
// the largest divisor of width not above NumCPU.
func defaultThreads(width int) int {
	if width%16 == 0 {
		return 16
	}
	n := runtime.NumCPU()
	if n > width {
		n = width
	}
	for ; n > 1; n-- {
		if width%n == 0 {
			return n
		}
	}
	return 1
}

// OutputFormat parses the resolved format.
func (c *Config) OutputFormat() (output.Format, error) {
	return output.ParseFormat(c.Format)
}

// RenderOptions converts the resolved config to the renderer's options.
// Dimensions are multiplied by the supersample factor; callers downsample
// the frame back to Width×Height.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	ss := max(c.Supersample, 1)
	opts.Width = c.Width * ss
	opts.Height = c.Height * ss
	opts.Threads = c.Threads
	opts.Samples = c.Samples
	opts.Seed = c.Seed
	if c.Eye != nil {
		opts.Eye = *c.Eye
	}
	if c.Light != nil {
		opts.Light.ToLight = *c.Light
	}
	return opts
}

func detectModelDir() string {
	rel := filepath.Join("resources", "models")

	// Try current working directory
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, rel)); err == nil {
		return filepath.Join(cwd, rel)
	}

	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir), filepath.Join(dir, "..", "..")} {
			if _, err := os.Stat(filepath.Join(base, rel)); err == nil {
				return filepath.Join(base, rel)
			}
		}
	}

	return rel
}
