// Package pipeline runs the edge filter end to end: decode a source file,
// apply the sobel stages, and persist the result.
//
// A Runner is fail-fast. A decode error stops the run before any buffer is
// built, an undersized image is rejected before convolution, and an encode
// error is reported after the computation with the destination path. No
// step is retried.
//
// RunBatch processes many jobs concurrently. Each job owns its buffers, so
// one image's failure never affects another.
package pipeline
