package tile

import "errors"

// ErrSize is returned when pixel data does not hold exactly one tile.
var ErrSize = errors.New("tile: wrong pixel count")
