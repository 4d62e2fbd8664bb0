// Package internal contains helper utilities that are intentionally private to goBoard,
// currently secure random secret generation for the hardened config presets.
//
// # What this package must NOT do
//
//   - Export types that appear in the public goBoard API.
//   - Be imported by any package outside the goBoard module.
package internal
