// Package imaging reads source images from disk and writes filtered images
// back.
//
// It is the I/O boundary around the edge filter: Decode and ImageCache turn
// a path into an image.Image, Save persists a result in the format implied
// by its file name. Failures are reported as *DecodeError and *EncodeError,
// both of which carry the offending path and unwrap to the underlying cause.
//
// # Formats
//
// Decoding handles PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding handles
// PNG, JPEG, GIF, BMP and TIFF.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Decode and Save hold no state.
package imaging
