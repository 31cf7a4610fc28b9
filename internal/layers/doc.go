// Package layers implements the domain layer for z-index resolution.
//
// This package follows the same rules as the rest of the domain code:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines the Layer value type and the Registry collection
//   - Implements domain logic (two-tier lookup, custom base allocation)
//   - Has no knowledge of infrastructure concerns (file I/O, config, output)
//
// # Core Types
//
// Layer pairs a semantic layer name ("modal", "tooltip") with its numeric
// stacking-order base value. The eight predefined layers span -1 (underworld,
// behind everything) to 9999 (god-mode, above everything).
//
// Registry resolves names to values. Resolution is two-tier: the immutable
// fixed table is consulted first, then the per-instance custom table; a name
// found in neither is allocated a custom base on first use. Lookup and
// Allocate are exposed as distinct steps so the allocation path can be
// tested and guarded on its own; Resolve composes them under the registry's
// lock, so concurrent first resolutions of the same novel name observe a
// single allocation.
//
// Custom allocations live only as long as the Registry instance. Nothing in
// this package persists.
package layers
