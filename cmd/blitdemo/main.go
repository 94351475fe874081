// Command blitdemo composes a frame with every blit package and saves it
// as a PNG.
package main

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/font"
	"github.com/gogpu/blit/screen"
	"github.com/gogpu/blit/sprite"
	"github.com/gogpu/blit/tile"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		width   = flag.Int("width", 640, "frame width")
		height  = flag.Int("height", 400, "frame height")
		output  = flag.String("output", "blitdemo.png", "output file")
		bmpPath = flag.String("bmp", "", "optional 8-bit BMP to show in the corner")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scr, err := screen.New(*width, *height, blit.ABGR8888)
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	surf := scr.Surface()
	pf := surf.Format()

	drawBackground(surf)
	drawSprites(surf)
	if err := drawTiles(surf); err != nil {
		log.Fatalf("Failed to build tiles: %v", err)
	}
	if err := drawText(surf); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := drawBitmap(surf, *bmpPath); err != nil {
		log.Fatalf("Failed to load bitmap: %v", err)
	}

	// Damage on a sub-surface reaches the screen through its owner.
	status := blit.NewSubSurface(surf, image.Rect(0, *height-4, *width, *height))
	status.Clear(pf.RGBToColor(240, 200, 40))

	var p uploadCounter
	if err := scr.Update(&p); err != nil {
		log.Fatalf("Failed to present: %v", err)
	}
	log.Printf("Presented %d region(s), %d pixels\n", p.regions, p.pixels)

	if err := savePNG(surf, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func savePNG(s *blit.ManagedSurface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// uploadCounter stands in for a display and tallies what it is asked to
// upload.
type uploadCounter struct {
	regions int
	pixels  int
}

func (u *uploadCounter) Present(_ []byte, uploads []screen.Upload) error {
	for _, up := range uploads {
		u.regions++
		u.pixels += int(up.Size.Width * up.Size.Height)
	}
	return nil
}

func drawBackground(s *blit.ManagedSurface) {
	pf := s.Format()
	steps := 50
	for i := range steps {
		t := float64(i) / float64(steps)
		c := pf.RGBToColor(uint8(20+t*60), uint8(30+t*50), uint8(70+t*90))
		y0 := s.Height() * i / steps
		y1 := s.Height() * (i + 1) / steps
		s.FillRect(image.Rect(0, y0, s.Width(), y1), c)
	}
	s.FrameRect(s.Bounds(), pf.RGBToColor(255, 255, 255))
}

// ball returns a round sprite with a soft edge in inverted alpha.
func ball(size int, r, g, b uint8) *sprite.Image {
	im := sprite.NewImage(size, size, sprite.FormatRGBA)
	c := float64(size-1) / 2
	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			if d > 1 {
				continue
			}
			a := uint8(0)
			if d > 0.8 {
				a = uint8((d - 0.8) / 0.2 * 255)
			}
			im.SetPixel(x, y, r, g, b, a)
		}
	}
	return im
}

func drawSprites(s *blit.ManagedSurface) {
	pf := s.Format()
	d := sprite.New(s.Surface(), sprite.WithClip(image.Rect(10, 10, 330, 190)))

	red := ball(24, 230, 60, 60)
	d.PutSpr(20, 20, red, 0)
	d.PutSprScaled(60, 20, 48, 32, red, sprite.FlipHorizontal)
	d.PutSprScale(120, 20, red, 2.5, 0)

	arrow := sprite.NewImage(20, 8, sprite.Format565)
	for y := range 8 {
		for x := range 20 {
			arrow.SetPixel(x, y, 60, 200, 90, 0)
		}
	}
	for i, a := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi} {
		d.PutSprRot(200+i*30, 40, arrow, a, 0)
	}
	d.PutSprRotScaled(200, 100, arrow, math.Pi/6, 2, 1, sprite.FlipVertical)

	tint := sprite.Mask{R: 255, G: 255, B: 0, A: 128}
	d.PutSprMask(20, 100, red, tint, 0)
	d.PutSprMaskScaled(60, 100, 40, 40, red, tint, 0)
	d.PutSprMaskRot(120, 100, arrow, -math.Pi/3, tint, 0)

	d.PutRLE(300, 150, sprite.NewRLEImage(red), 0)

	d.Rectangle(image.Rect(12, 12, 328, 188), pf.RGBToColor(200, 200, 255))
	d.Line(-40, 200, 400, -20, pf.RGBToColor(255, 128, 0))
	s.AddDirtyRect(d.Clip())
}

func drawTiles(s *blit.ManagedSurface) error {
	pf := s.Format()
	src, err := blit.NewManagedSurfaceSize(64, 32, pf)
	if err != nil {
		return err
	}
	for ty := range 2 {
		for tx := range 4 {
			c := pf.RGBToColor(40, 40, 40)
			if (tx+ty)%2 == 0 {
				c = pf.RGBToColor(200, 120, 40)
			}
			src.FillRect(image.Rect(tx*tile.Size, ty*tile.Size, (tx+1)*tile.Size, (ty+1)*tile.Size), c)
		}
	}

	set := tile.NewSet(tile.WithTolerance(4))
	m, err := tile.Split(src.Surface(), set)
	if err != nil {
		return err
	}
	log.Printf("Tile map %dx%d uses %d unique tile(s)\n", m.Cols, m.Rows, set.Len())

	d := sprite.New(s.Surface())
	d.PutTileMap(360, 20, m)
	s.AddDirtyRect(image.Rect(360, 20, 360+m.Cols*tile.Size, 20+m.Rows*tile.Size))
	return nil
}

func drawText(s *blit.ManagedSurface) error {
	pf := s.Format()
	mgr := font.NewManager(font.WithForeColor(pf.RGBToColor(255, 255, 255)))

	basic := font.NewBasicFont(basicfont.Face7x13)
	mgr.AddFont(basic)

	outline, err := font.LoadOutline(goregular.TTF, 20)
	if err != nil {
		return err
	}
	outlineIdx := mgr.AddFont(outline)

	// Round-trip the basic font through the CRYOFONT format.
	var buf bytes.Buffer
	if err := font.WriteCryo(&buf, basic); err != nil {
		return err
	}
	cryo, err := font.LoadCryo(&buf, font.WithName("cryo7x13"))
	if err != nil {
		return err
	}
	cryoIdx := mgr.AddFont(cryo)

	mgr.DrawString(s, "basicfont 7x13: Hello, blit!", 20, 210)

	if err := mgr.SetCurrentFont(outlineIdx); err != nil {
		return err
	}
	mgr.SetForeColor(pf.RGBToColor(255, 230, 120))
	y := 230
	for _, line := range mgr.WordWrap("Outline glyphs rasterized from Go Regular and wrapped to fit.", 300) {
		mgr.DrawString(s, line, 20, y)
		y += mgr.FontHeight()
	}

	if err := mgr.SetCurrentFont(cryoIdx); err != nil {
		return err
	}
	mgr.SetForeColor(pf.RGBToColor(120, 255, 200))
	mgr.DrawString(s, "CRYOFONT: café, naïve, 世界", 20, y+4)
	return nil
}

// drawBitmap shows the BMP at path, or a generated 8-bit one when path is
// empty, through the palette conversion path.
func drawBitmap(s *blit.ManagedSurface, path string) error {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		data = b
	} else {
		pal := make(color.Palette, 16)
		for i := range pal {
			pal[i] = color.RGBA{uint8(i * 16), uint8(255 - i*16), 128, 255}
		}
		img := image.NewPaletted(image.Rect(0, 0, 64, 64), pal)
		for y := range 64 {
			for x := range 64 {
				img.SetColorIndex(x, y, uint8((x/8+y/8)%16))
			}
		}
		var buf bytes.Buffer
		if err := bmp.Encode(&buf, img); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	src, err := blit.LoadBMP(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer src.Free()
	s.BlitFrom(src, image.Pt(s.Width()-src.Width()-20, s.Height()-src.Height()-20))
	return nil
}
