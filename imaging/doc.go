// Package imaging applies the colorconv operators to in-memory images.
//
// It is the bridge between whole images and the per-color functions of the
// colorconv package: sampling a pixel into every color representation,
// extracting a web-safe dominant palette, and running the pixel operators
// (inversion, alpha compositing, web-safe snapping) over every pixel. It
// never reads or writes files; callers decode and encode images themselves.
//
// # Coordinate System
//
// Coordinates are those of the source image's Bounds(). For regions, (X1,Y1)
// is inclusive (top-left) and (X2,Y2) is exclusive (bottom-right). Images
// returned by Invert, Composite and WebSafe are *image.NRGBA values whose
// bounds start at (0,0).
//
// # Alpha
//
// Pixels are read non-premultiplied. The pixel operators change RGB channels
// only and always carry each pixel's alpha through unchanged.
//
// # Thread Safety
//
// Every function allocates its own result and may be called concurrently.
// WebSafe itself fans rows out across goroutines.
//
// # Logging
//
// Nothing is logged by default. Install a logger with SetLogger to receive
// debug records for each operation.
package imaging
