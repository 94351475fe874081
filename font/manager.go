package font

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/blit"
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithForeColor sets the initial text color, packed in the format of the
// surfaces the manager draws on.
func WithForeColor(c uint32) ManagerOption {
	return func(m *Manager) {
		m.fore = c
	}
}

// Manager holds a list of fonts, the current font and the text color, and
// draws strings onto managed surfaces.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	fonts   []*Font
	current int
	fore    uint32
}

// NewManager returns a manager with no fonts.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddFont appends f and returns its index. The first font added becomes
// current.
func (m *Manager) AddFont(f *Font) int {
	m.fonts = append(m.fonts, f)
	return len(m.fonts) - 1
}

// SetCurrentFont selects the font at index i.
func (m *Manager) SetCurrentFont(i int) error {
	if i < 0 || i >= len(m.fonts) {
		return fmt.Errorf("%w: index %d of %d", ErrNoFont, i, len(m.fonts))
	}
	m.current = i
	return nil
}

// Font returns the current font, or nil when none was added.
func (m *Manager) Font() *Font {
	if len(m.fonts) == 0 {
		return nil
	}
	return m.fonts[m.current]
}

// SetForeColor sets the text color.
func (m *Manager) SetForeColor(c uint32) { m.fore = c }

// ForeColor returns the text color.
func (m *Manager) ForeColor() uint32 { return m.fore }

// FontHeight returns the line height of the current font.
func (m *Manager) FontHeight() int {
	if f := m.Font(); f != nil {
		return f.Height()
	}
	return 0
}

// DrawChar draws r with the pen at (x, y) and marks the touched rectangle
// dirty.
func (m *Manager) DrawChar(dst *blit.ManagedSurface, r rune, x, y int) image.Rectangle {
	f := m.Font()
	if f == nil {
		return image.Rectangle{}
	}
	touched := f.DrawChar(dst.Surface(), r, x, y, m.fore)
	dst.AddDirtyRect(touched)
	return touched
}

// DrawString draws s starting with the pen at (x, y). A newline returns
// the pen to x one line lower. The union of touched rectangles is marked
// dirty once and returned.
func (m *Manager) DrawString(dst *blit.ManagedSurface, s string, x, y int) image.Rectangle {
	f := m.Font()
	if f == nil {
		return image.Rectangle{}
	}
	surf := dst.Surface()
	var touched image.Rectangle
	px, py := x, y
	for _, r := range s {
		if r == '\n' {
			px, py = x, py+f.Height()
			continue
		}
		g := f.resolve(r)
		if g == nil {
			continue
		}
		touched = touched.Union(DrawGlyph(surf, g, px, py, m.fore))
		px += g.Advance
	}
	dst.AddDirtyRect(touched)
	return touched
}

// StringWidth returns the advance of the widest line of s.
func (m *Manager) StringWidth(s string) int {
	f := m.Font()
	if f == nil {
		return 0
	}
	widest, w := 0, 0
	for _, r := range s {
		if r == '\n' {
			widest, w = max(widest, w), 0
			continue
		}
		w += f.CharWidth(r)
	}
	return max(widest, w)
}

// WordWrap breaks s into lines no wider than maxWidth, splitting at spaces
// and at newlines. A single word wider than maxWidth gets a line of its
// own.
func (m *Manager) WordWrap(s string, maxWidth int) []string {
	var lines []string
	space := m.StringWidth(" ")
	for _, para := range strings.Split(s, "\n") {
		var line strings.Builder
		width := 0
		for _, word := range strings.Fields(para) {
			ww := m.StringWidth(word)
			if line.Len() > 0 && width+space+ww > maxWidth {
				lines = append(lines, line.String())
				line.Reset()
				width = 0
			}
			if line.Len() > 0 {
				line.WriteByte(' ')
				width += space
			}
			line.WriteString(word)
			width += ww
		}
		lines = append(lines, line.String())
	}
	return lines
}
