package blit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// ToImage converts the surface to a standard image: *image.Paletted for
// indexed surfaces (grayscale when no palette is set), *image.NRGBA
// otherwise.
func (s *ManagedSurface) ToImage() image.Image {
	src := s.Surface()
	bounds := image.Rect(0, 0, src.W, src.H)
	if src.Format.IsCLUT8() {
		pal := s.Palette()
		if pal == nil {
			pal = make(color.Palette, 256)
			for i := range pal {
				pal[i] = color.Gray{Y: uint8(i)}
			}
		}
		img := image.NewPaletted(bounds, pal)
		for y := 0; y < src.H; y++ {
			copy(img.Pix[y*img.Stride:], src.row(y, 0, src.W))
		}
		return img
	}

	img := image.NewNRGBA(bounds)
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			a, r, g, b := src.Format.ColorToARGB(src.GetPixel(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
		}
	}
	return img
}

// NewManagedSurfaceFromImage creates an owning surface in format holding a
// copy of img. An indexed format requires an *image.Paletted source, whose
// palette becomes the surface palette.
func NewManagedSurfaceFromImage(img image.Image, format PixelFormat) (*ManagedSurface, error) {
	b := img.Bounds()
	s, err := NewManagedSurfaceSize(b.Dx(), b.Dy(), format)
	if err != nil {
		return nil, err
	}

	if format.IsCLUT8() {
		p, ok := img.(*image.Paletted)
		if !ok {
			return nil, fmt.Errorf("%w: %T to %v", ErrFormatMismatch, img, format)
		}
		for y := 0; y < b.Dy(); y++ {
			off := p.PixOffset(b.Min.X, b.Min.Y+y)
			copy(s.inner.row(y, 0, b.Dx()), p.Pix[off:off+b.Dx()])
		}
		rgb := make([]byte, 0, len(p.Palette)*3)
		for _, c := range p.Palette {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			rgb = append(rgb, n.R, n.G, n.B)
		}
		s.SetPalette(rgb, 0, len(p.Palette))
		return s, nil
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			n := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			s.inner.SetPixel(x, y, format.ARGBToColor(n.A, n.R, n.G, n.B))
		}
	}
	return s, nil
}

// LoadBMP decodes a Windows bitmap. 8-bit palettised files become CLUT8
// surfaces carrying the file palette; everything else becomes ARGB8888.
func LoadBMP(r io.Reader) (*ManagedSurface, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("blit: decode bmp: %w", err)
	}
	format := ARGB8888
	if _, ok := img.(*image.Paletted); ok {
		format = CLUT8
	}
	return NewManagedSurfaceFromImage(img, format)
}

// EncodePNG writes the surface as a PNG image.
func (s *ManagedSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.ToImage())
}
