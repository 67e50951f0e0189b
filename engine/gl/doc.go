// Package gl is a small fixed-point software rasterizer.
//
// Pipeline per model, once per frame:
//
//	Project → Order faces → Rasterize → (caller) Present.
//
// Vertices are projected to screen points with an explicit validity flag;
// faces touching an invalid point are skipped rather than clipped. Faces are
// ordered back to front by average camera-space depth and filled with a
// scanline rasterizer doing affine texture mapping and per-face lighting.
// There is no depth buffer.
//
// All arithmetic is Q16.16 from package fix. Output goes to a Sink; the
// renderer never presents on its own.
package gl
