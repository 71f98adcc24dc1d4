// Package pkg provides the core libraries for squarely layout expansion.
//
// # Overview
//
// Squarely turns compact layout descriptors into explicit constraint
// records for a view hierarchy, so hosts can declare "flush with the
// container" once instead of writing four pinning constraints by hand.
// The pkg directory is organized into five main areas:
//
//  1. [layout] - The descriptor algebra (attributes, factories, combinators)
//  2. [layout/expand] - Expansion of descriptors into constraint records
//  3. [tree] - A reference view hierarchy implementing the node contracts
//  4. [manifest] - Declarative manifests (TOML/YAML/JSON) compiled to descriptors
//  5. [pipeline] - Orchestration (load → build → expand)
//
// # Architecture
//
// The typical data flow through squarely:
//
//	Layout Manifest / Host Code
//	         ↓
//	    [layout] package (descriptor algebra)
//	         ↓
//	    [layout/expand] package (pairing + record building)
//	         ↓
//	    [tree] package (registration with containers)
//	         ↓
//	    Constraint records for the host solver
//
// # Quick Start
//
// Build a hierarchy and expand descriptors against it:
//
//	import (
//	    "squarely/pkg/layout"
//	    "squarely/pkg/layout/expand"
//	    "squarely/pkg/tree"
//	)
//
//	// 1. Build the hierarchy
//	window := tree.NewRoot("window")
//	card := window.NewChild("card")
//
//	// 2. Describe the layout
//	descriptors := []layout.Descriptor{
//	    layout.Horizontal(),
//	    layout.Height().EqualToConstant(120),
//	}
//
//	// 3. Expand into records
//	records, err := expand.Apply(card, descriptors...)
//
// # Main Packages
//
// [layout] - Immutable layout descriptors. Factories ([layout.Flush],
// [layout.Size], [layout.Width], ...) seed a descriptor with attributes;
// combinators ([layout.Descriptor.EqualTo], [layout.Descriptor.ScaledBy],
// [layout.Descriptor.Plus], ...) refine relation, target, and adjustments.
// Every combinator returns a copy, so descriptors can be shared and reused
// freely.
//
// [layout/expand] - The expansion engine. Applies the pairing rules (plural
// zip with truncation, single-attribute replication, mirroring), registers
// records with the node's container, and disables autosizing on expanded
// nodes. Batch and chained forms cover row/column arrangements.
//
// [tree] - A minimal view hierarchy for hosts that do not bring their own:
// parent/child wiring, record registration, autosizing bookkeeping.
//
// [manifest] - Declarative layout documents. A manifest names views and
// rules; rules compile to descriptors through the same public algebra the
// host API uses, so both paths expand identically.
//
// [pipeline] - Complete manifest-to-records pipeline (load → build →
// expand) with per-stage timings, used by embedding hosts. Ensures
// consistent behavior across all entry points.
//
// [errors] - Structured error codes shared by manifest validation and the
// pipeline.
//
// [observability] - Hook interfaces for tracing expansion and manifest
// loading without coupling the core packages to a metrics stack.
//
// # Common Workflows
//
// Expand the same descriptors against several nodes:
//
//	records, _ := expand.Batch(tiles, []layout.Descriptor{
//	    layout.Size().EqualToConstant(64),
//	})
//
// Stack rows top to bottom:
//
//	records, _ := expand.Chained(rows, func(prev layout.Node) []layout.Descriptor {
//	    return []layout.Descriptor{layout.Top().EqualTo(layout.Bottom(prev)).Plus(8)}
//	})
//
// Run a manifest end to end:
//
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(pipeline.Options{ManifestPath: "layout.toml"})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example         # Examples only
//
// [layout]: https://pkg.go.dev/squarely/pkg/layout
// [layout/expand]: https://pkg.go.dev/squarely/pkg/layout/expand
// [tree]: https://pkg.go.dev/squarely/pkg/tree
// [manifest]: https://pkg.go.dev/squarely/pkg/manifest
// [pipeline]: https://pkg.go.dev/squarely/pkg/pipeline
// [errors]: https://pkg.go.dev/squarely/pkg/errors
// [observability]: https://pkg.go.dev/squarely/pkg/observability
package pkg
