// Package board implements the in-memory drawing surface used by goBoard.
//
// The package holds canvas state (ordered elements plus the recorded size)
// and the shared client display configuration. It is a pure in-memory data
// structure with no I/O.
//
// # Architecture boundaries
//
//   - board is a leaf package: it imports nothing from goBoard.
//   - All state is instance-scoped; there are no package-level registries.
//   - Consumers (the engine, HTTP handlers) decide when writes are allowed;
//     the canvas itself accepts every append.
//
// # What this package must NOT do
//
//   - Validate or interpret elements.
//   - Enforce a capacity from the recorded size.
//   - Access the network, databases, or the filesystem.
//   - Perform its own locking; coordination belongs to the caller.
//   - Import goBoard, middleware, or the exporters.
package board
