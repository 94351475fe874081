package tile

import "github.com/gogpu/blit"

// Set is an indexed collection of distinct tiles. Tiles within the
// configured tolerance of an existing entry share its index.
//
// A Set is not safe for concurrent use.
type Set struct {
	cmp   Comparator
	tiles []*Sprite
	exact map[[Pixels]uint32]int
}

// NewSet returns an empty set.
func NewSet(opts ...Option) *Set {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Set{
		cmp:   Comparator{Tolerance: o.tolerance},
		exact: make(map[[Pixels]uint32]int),
	}
}

// Comparator returns the comparator the set deduplicates with.
func (s *Set) Comparator() Comparator {
	return s.cmp
}

// Add returns the index of t in the set, inserting a copy when no equal
// tile exists. dup reports whether an existing entry was reused.
func (s *Set) Add(t *Sprite) (index int, dup bool) {
	if i, ok := s.exact[t.pix]; ok {
		return i, true
	}
	if s.cmp.Tolerance > 0 {
		for i, u := range s.tiles {
			if s.cmp.Equal(t, u) {
				s.exact[t.pix] = i
				return i, true
			}
		}
	}
	c := *t
	s.tiles = append(s.tiles, &c)
	i := len(s.tiles) - 1
	s.exact[c.pix] = i
	return i, false
}

// Len returns the number of distinct tiles.
func (s *Set) Len() int {
	return len(s.tiles)
}

// Tile returns tile i.
func (s *Set) Tile(i int) *Sprite {
	return s.tiles[i]
}

// Map is a grid of tile indices covering an image.
type Map struct {
	Cols, Rows int
	// Index holds Cols*Rows entries in row-major order.
	Index []int
	Set   *Set
}

// At returns the tile at grid cell (col, row), or nil outside the grid.
func (m *Map) At(col, row int) *Sprite {
	if col < 0 || row < 0 || col >= m.Cols || row >= m.Rows {
		return nil
	}
	return m.Set.Tile(m.Index[row*m.Cols+col])
}

// Split cuts src into tiles, adds them to set and returns the grid. The
// last column and row are padded with transparent pixels when the surface
// size is not a multiple of Size. A nil set is replaced by a fresh one,
// reachable through the returned Map.
func Split(src blit.Surface, set *Set) (*Map, error) {
	if set == nil {
		set = NewSet()
	}
	if src.Empty() {
		return &Map{Set: set}, nil
	}
	m := &Map{
		Cols: (src.W + Size - 1) / Size,
		Rows: (src.H + Size - 1) / Size,
		Set:  set,
	}
	m.Index = make([]int, 0, m.Cols*m.Rows)
	dups := 0
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			t, err := FromSurface(src, col*Size, row*Size)
			if err != nil {
				return nil, err
			}
			i, dup := set.Add(t)
			if dup {
				dups++
			}
			m.Index = append(m.Index, i)
		}
	}
	blit.Logger().Debug("tile: split",
		"cols", m.Cols, "rows", m.Rows, "distinct", set.Len(), "reused", dups)
	return m, nil
}
