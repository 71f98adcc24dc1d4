// Package pipeline provides the manifest-to-records pipeline for squarely.
//
// This package implements the complete load → build → expand pipeline that
// embedding hosts can use to turn a declarative layout manifest into
// constraint records. By centralizing this logic, we ensure consistent
// behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a layout manifest (TOML, YAML, or JSON)
//  2. Build: Construct the view hierarchy the manifest declares
//  3. Expand: Compile rules into descriptors and expand them into records
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(pipeline.Options{
//	    ManifestPath: "layout.toml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records := result.Records
//
// Run individual stages:
//
//	// Load only
//	doc, err := pipeline.Load(opts)
//
//	// Build the hierarchy from a loaded document
//	root, views, err := pipeline.BuildTree(doc)
//
//	// Expand with an existing hierarchy
//	records, err := pipeline.Expand(doc, views, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"squarely/pkg/layout"
	"squarely/pkg/manifest"
	"squarely/pkg/tree"
)

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for embedding hosts.
type Options struct {
	// ManifestPath is the manifest file to load. Mutually exclusive
	// with Document.
	ManifestPath string `json:"manifest_path,omitempty"`

	// Document is a pre-built manifest that bypasses file loading. It is
	// validated before use. Mutually exclusive with ManifestPath.
	Document *manifest.Document `json:"document,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ManifestPath == "" && o.Document == nil {
		return fmt.Errorf("manifest path or document is required")
	}
	if o.ManifestPath != "" && o.Document != nil {
		return fmt.Errorf("manifest path and document are mutually exclusive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the loaded manifest.
	Document *manifest.Document

	// Root is the root of the built view hierarchy.
	Root *tree.View

	// Views maps view ids to the built views, the root included.
	Views map[string]*tree.View

	// Records holds the expanded constraint records in expansion order:
	// views in declaration order, rules in manifest order within each view.
	Records []*layout.Record

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Views      int
	Rules      int
	Records    int
	LoadTime   time.Duration
	BuildTime  time.Duration
	ExpandTime time.Duration
}
