package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ftrvxmtrx/tga"

	"raycast-renderer/internal/raster"
	"raycast-renderer/internal/render"
	"raycast-renderer/internal/scene"
)

func testFrame() *raster.FrameBuffer {
	fb := raster.NewFrameBuffer(4, 2)
	fb.Set(0, 0, scene.RGB{255, 0, 0})
	fb.Set(3, 1, scene.RGB{10, 20, 30})
	return fb
}

func TestToNRGBA(t *testing.T) {
	img := ToNRGBA(testFrame())
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{255, 0, 0, 255}},
		{3, 1, color.NRGBA{10, 20, 30, 255}},
		{1, 0, color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []uint8{40, 80, 120, 255})
	}
	dst := Downsample(src, 4, 3)
	if b := dst.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 4x3", b)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got := dst.NRGBAAt(x, y)
			if !near(got.R, 40) || !near(got.G, 80) || !near(got.B, 120) || !near(got.A, 255) {
				t.Fatalf("(%d,%d) = %v, flat color not preserved", x, y, got)
			}
		}
	}
	if same := Downsample(src, 8, 6); same != src {
		t.Error("image at target size should be returned unchanged")
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".WEBP", WebP, false},
		{"tga", TGA, false},
		{"jpeg", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseFormat(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
	if f, err := FormatFromPath("out/frame.tga"); err != nil || f != TGA {
		t.Errorf("FormatFromPath = %q, %v", f, err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	img := ToNRGBA(testFrame())
	tests := []struct {
		format Format
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{PNG, func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{TGA, func(b *bytes.Buffer) (image.Image, error) { return tga.Decode(b) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, tt.format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := got.At(3, 1).RGBA()
			if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
				t.Errorf("pixel (3,1) = %d,%d,%d, want 10,20,30", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncode_WebPHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, ToNRGBA(testFrame()), WebP); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("not a RIFF/WEBP stream: % x", data[:min(len(data), 12)])
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "frame.png")
	if err := Save(path, ToNRGBA(testFrame()), PNG); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file does not decode: %v", err)
	}
}

func TestWriteManifest(t *testing.T) {
	path := ManifestPath(filepath.Join(t.TempDir(), "frame.png"))
	m := Manifest{
		Image:   "frame.png",
		Scene:   "default",
		Width:   64,
		Height:  48,
		Samples: 4,
		Threads: 4,
		Stats:   render.Stats{Pixels: 3072, Rays: 12288, Elapsed: 2 * time.Millisecond},
	}
	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if got.Scene != "default" || got.Stats.Rays != 12288 || got.Stats.Elapsed != 2*time.Millisecond {
		t.Errorf("manifest = %+v", got)
	}
}
