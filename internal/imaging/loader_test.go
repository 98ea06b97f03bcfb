package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// newTestImage builds a small NRGBA image filled with one color.
func newTestImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writeTempPNG encodes an image to a PNG file in the test's temp dir.
func writeTempPNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode temp image: %v", err)
	}
	return path
}

func TestImageCache_LoadAndCache(t *testing.T) {
	path := writeTempPNG(t, "square.png", newTestImage(16, 12, color.NRGBA{R: 255, A: 255}))

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Errorf("dimensions: got %v", img.Bounds())
	}

	// A second Load must come from the cache: remove the file first.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove temp file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed after file removal: %v", err)
	}

	// After eviction the disk read happens again and fails.
	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error loading evicted entry with file gone")
	}
}

func TestImageCache_Clear(t *testing.T) {
	path := writeTempPNG(t, "x.png", newTestImage(4, 4, color.NRGBA{A: 255}))
	cache := NewImageCache()
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	os.Remove(path)
	cache.Clear()
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error after Clear with file gone")
	}
}

func TestImageCache_LoadErrors(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(bad, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write bad file: %v", err)
	}
	if _, err := cache.Load(bad); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestLoadImageInfo(t *testing.T) {
	path := writeTempPNG(t, "info.png", newTestImage(20, 10, color.NRGBA{G: 200, A: 255}))

	info, err := LoadImageInfo(NewImageCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Width != 20 || info.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %q, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %q, want 8-bit", info.ColorDepth)
	}
	if !info.HasAlpha {
		t.Error("NRGBA image should report an alpha channel")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d", info.FileSizeBytes)
	}
}

func TestGetDimensions(t *testing.T) {
	path := writeTempPNG(t, "dims.png", newTestImage(33, 7, color.NRGBA{B: 80, A: 255}))

	dims, err := GetDimensions(NewImageCache(), path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 33 || dims.Height != 7 {
		t.Errorf("got %dx%d, want 33x7", dims.Width, dims.Height)
	}
}
