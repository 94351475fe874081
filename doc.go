// Package blit provides managed 2D pixel surfaces for software compositing.
//
// # Overview
//
// blit is the pixel layer underneath sprite rendering, font rasterization,
// window chrome and video playback. It has three levels:
//
//   - PixelFormat: how channels are packed into 1, 2, 3 or 4 byte pixels
//   - Surface: an unowned view of pixel memory with raw drawing primitives
//   - ManagedSurface: owns or borrows a Surface and adds the blit API,
//     sub-surfaces and dirty-rectangle tracking
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	screen, _ := blit.NewManagedSurfaceSize(320, 200, blit.RGB565)
//	red := screen.Format().RGBToColor(255, 0, 0)
//	screen.FillRect(image.Rect(0, 0, 320, 200), red)
//
//	// A window aliasing part of the screen.
//	win := blit.NewSubSurface(screen, image.Rect(40, 40, 120, 100))
//	win.Clear(screen.Format().RGBToColor(0, 0, 255))
//
//	for _, r := range screen.DirtyRects() {
//	    // present r
//	}
//	screen.ClearDirtyRects()
//
// # Ownership
//
// A root surface owns its pixels (Create) or wraps caller memory
// (CreateFrom). Sub-surfaces (CreateSub) alias a window of their owner.
// When the owner frees or reallocates its pixels, existing sub-surfaces
// become stale: IsStale reports true and drawing on them does nothing.
//
// # Dirty Rectangles
//
// Every drawing method on ManagedSurface records the clipped rectangle it
// touched. Sub-surfaces translate the rectangle into owner coordinates and
// forward it; root surfaces record it and pass it to their DirtySink.
// Writes through Surface (or the sprite package) bypass this bookkeeping.
//
// # Alpha
//
// ManagedSurface uses conventional alpha (0 transparent, 255 opaque). The
// sprite, tile and rle packages use the inverted convention of their sprite
// assets (0 opaque, 255 transparent); each documents it at its API.
//
// # Coordinate System
//
// Origin (0, 0) at top-left, X right, Y down. Rectangles are
// image.Rectangle values with exclusive Max.
package blit
