package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/blit"
)

func TestSavePNG(t *testing.T) {
	s, err := blit.NewManagedSurfaceSize(3, 2, blit.ABGR8888)
	if err != nil {
		t.Fatal(err)
	}
	s.Clear(s.Format().RGBToColor(255, 0, 0))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := savePNG(s, path); err != nil {
		t.Fatalf("savePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 3 || got.Y != 2 {
		t.Errorf("decoded size = %v, want 3x2", got)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	s, err := blit.NewManagedSurfaceSize(1, 1, blit.ABGR8888)
	if err != nil {
		t.Fatal(err)
	}
	if err := savePNG(s, filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("savePNG() into a missing directory error = nil")
	}
}
