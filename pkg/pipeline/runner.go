package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → expand pipeline.
func (r *Runner) Execute(opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, err := Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Document = doc
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Views = len(doc.Views)
	result.Stats.Rules = len(doc.Rules)

	r.Logger.Info("loaded manifest",
		"views", len(doc.Views),
		"rules", len(doc.Rules),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	root, views, err := BuildTree(doc)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Root = root
	result.Views = views
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("built view hierarchy",
		"root", root.ID(),
		"views", len(views),
		"duration", result.Stats.BuildTime)

	// Stage 3: Expand
	expandStart := time.Now()
	records, err := Expand(doc, views, opts)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	result.Records = records
	result.Stats.Records = len(records)
	result.Stats.ExpandTime = time.Since(expandStart)

	r.Logger.Info("expanded layout rules",
		"records", len(records),
		"duration", result.Stats.ExpandTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
