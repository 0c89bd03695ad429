// Package sobel implements the edge-detection pixel pipeline.
//
// An input raster passes through four stages, each a pure function of the
// previous stage's output:
//
//  1. Grayscale: every RGB pixel becomes floor((r+g+b)/3).
//  2. Convolve: the fixed 3x3 Sobel kernels are slid over the intensity
//     buffer in "valid" mode, producing two gradient buffers that are two
//     cells smaller than the input in each direction.
//  3. Magnitude: the gradients are merged pointwise as floor(sqrt(gx²+gy²)).
//  4. Quantize: each magnitude is mapped to black (0), grey (100) or
//     white (255) using the cut-offs 120 and 200.
//
// Apply runs the whole chain. The stages are also exported so callers can
// inspect intermediate buffers.
//
// # Arithmetic
//
// All intermediate values are plain Go ints. Averaging and the square root
// are truncated, never rounded, so outputs are bit-exact across runs and
// platforms.
//
// # Concurrency
//
// Each stage splits its rows across goroutines and returns only once every
// row has been written, so no stage ever reads a partially filled buffer.
// Nothing is shared between calls, which makes it safe to run Apply on many
// images at once.
package sobel
