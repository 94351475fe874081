package blit

import (
	"errors"
	"slices"
	"testing"
)

var directFormats = []PixelFormat{RGB555, RGB565, RGB888, ARGB8888, RGBA8888, ABGR8888}

func TestPredefinedFormatsValidate(t *testing.T) {
	for _, f := range append([]PixelFormat{CLUT8}, directFormats...) {
		if err := f.Validate(); err != nil {
			t.Errorf("%v.Validate() = %v, want nil", f, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		f    PixelFormat
	}{
		{"zero bytes", PixelFormat{}},
		{"five bytes", PixelFormat{BytesPerPixel: 5}},
		{"overlapping masks", PixelFormat{BytesPerPixel: 2, RLoss: 3, GLoss: 3, BLoss: 3, ALoss: 8, RShift: 10, GShift: 10}},
		{"masks narrower than pixel", PixelFormat{BytesPerPixel: 4, RLoss: 3, GLoss: 2, BLoss: 3, ALoss: 8, RShift: 11, GShift: 5}},
		{"channel past 32 bits", PixelFormat{BytesPerPixel: 4, RShift: 28, GShift: 8, BShift: 0, ALoss: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.f.Validate(); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Validate() = %v, want %v", err, ErrInvalidFormat)
			}
		})
	}
}

func TestPackedBytes(t *testing.T) {
	tests := []struct {
		f    PixelFormat
		want []byte
	}{
		{RGB565, []byte{0x00, 0xF8}},
		{RGB555, []byte{0x00, 0x7C}},
		{RGB888, []byte{0x03, 0x02, 0xFF}},
		{ARGB8888, []byte{0x03, 0x02, 0xFF, 0xFF}},
		{RGBA8888, []byte{0xFF, 0x03, 0x02, 0xFF}},
		{ABGR8888, []byte{0xFF, 0x02, 0x03, 0xFF}},
	}
	for _, tt := range tests {
		buf := make([]byte, tt.f.BytesPerPixel)
		tt.f.WritePixel(buf, tt.f.RGBToColor(0xFF, 0x02, 0x03))
		if !slices.Equal(buf, tt.want) {
			t.Errorf("%v bytes = % x, want % x", tt.f, buf, tt.want)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	values := []uint8{0, 1, 7, 8, 0x33, 0x7F, 0x80, 0xC4, 0xFE, 0xFF}
	for _, f := range directFormats {
		for _, v := range values {
			c := f.RGBToColor(v, 255-v, v/2)
			r, g, b := f.ColorToRGB(c)
			if got := f.RGBToColor(r, g, b); got != c {
				t.Errorf("%v: RGBToColor(ColorToRGB(%#x)) = %#x, want %#x", f, c, got, c)
			}
		}
		r, g, b := f.ColorToRGB(f.RGBToColor(255, 255, 255))
		if r != 255 || g != 255 || b != 255 {
			t.Errorf("%v: white = (%d, %d, %d), want (255, 255, 255)", f, r, g, b)
		}
		a, _, _, _ := f.ColorToARGB(f.RGBToColor(1, 2, 3))
		if a != 255 {
			t.Errorf("%v: RGBToColor alpha = %d, want 255", f, a)
		}
	}
}

func TestBitReplication(t *testing.T) {
	tests := []struct {
		f       PixelFormat
		c       uint32
		r, g, b uint8
	}{
		{RGB565, 0x1 << 11, 0x08, 0, 0},
		{RGB565, 0x10 << 11, 0x84, 0, 0},
		{RGB565, 0x20 << 5, 0, 0x82, 0},
		{RGB555, 0x1F, 0, 0, 0xFF},
		{RGB555, 0x0F << 10, 0x7B, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := tt.f.ColorToRGB(tt.c)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%v.ColorToRGB(%#x) = (%#x, %#x, %#x), want (%#x, %#x, %#x)", tt.f, tt.c, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestAlphaChannel(t *testing.T) {
	c := ARGB8888.ARGBToColor(0x80, 1, 2, 3)
	if c != 0x80010203 {
		t.Errorf("ARGBToColor() = %#x, want %#x", c, 0x80010203)
	}
	a, r, g, b := ARGB8888.ColorToARGB(c)
	if a != 0x80 || r != 1 || g != 2 || b != 3 {
		t.Errorf("ColorToARGB() = (%d, %d, %d, %d), want (128, 1, 2, 3)", a, r, g, b)
	}
	if a, _, _, _ := RGB565.ColorToARGB(0); a != 255 {
		t.Errorf("RGB565 alpha = %d, want 255", a)
	}
	if got := RGB565.ARGBToColor(0, 0xFF, 0xFF, 0xFF); got != 0xFFFF {
		t.Errorf("RGB565.ARGBToColor() = %#x, want 0xffff", got)
	}
}

func TestCLUT8Colors(t *testing.T) {
	if got := CLUT8.RGBToColor(10, 20, 30); got != 0 {
		t.Errorf("CLUT8.RGBToColor() = %d, want 0", got)
	}
	if !CLUT8.IsCLUT8() || RGB565.IsCLUT8() {
		t.Error("IsCLUT8() misclassifies formats")
	}
	if CLUT8.HasAlpha() || RGB888.HasAlpha() || !ARGB8888.HasAlpha() {
		t.Error("HasAlpha() misclassifies formats")
	}
}

func TestFormatString(t *testing.T) {
	if got := RGB565.String(); got != "RGB565" {
		t.Errorf("String() = %q, want %q", got, "RGB565")
	}
	custom := PixelFormat{BytesPerPixel: 2, RLoss: 4, GLoss: 4, BLoss: 4, ALoss: 4, RShift: 8, GShift: 4, AShift: 12}
	if got := custom.String(); got != "PixelFormat(2 bpp, R4<<8 G4<<4 B4<<0 A4<<12)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCheckConversion(t *testing.T) {
	tests := []struct {
		name       string
		src, dst   PixelFormat
		hasPalette bool
		ok         bool
	}{
		{"same", RGB565, RGB565, false, true},
		{"direct to direct", RGB565, ARGB8888, false, true},
		{"indexed to indexed", CLUT8, CLUT8, false, true},
		{"indexed with palette", CLUT8, RGB888, true, true},
		{"indexed without palette", CLUT8, RGB888, false, false},
		{"direct to indexed", ARGB8888, CLUT8, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConversion(tt.src, tt.dst, tt.hasPalette)
			if tt.ok && err != nil {
				t.Errorf("CheckConversion() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrFormatMismatch) {
				t.Errorf("CheckConversion() = %v, want %v", err, ErrFormatMismatch)
			}
		})
	}
}
