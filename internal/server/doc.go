// Package server exposes the Sobel edge filter as an MCP (Model Context
// Protocol) tool server.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sobel_edges: Edge-detect one image, to a file or as base64 PNG
//   - image_sobel_batch: Edge-detect many images concurrently
//
// # Image Caching
//
// Source images are cached by path for the lifetime of the process, so
// repeated calls on the same file decode it once.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors with code -32000 and the Go
// error string as data. Batch jobs report failures per job instead.
package server
