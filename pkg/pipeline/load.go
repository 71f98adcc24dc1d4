package pipeline

import (
	"squarely/pkg/manifest"
)

// Load produces the pipeline's manifest document: the pre-built document
// when the options carry one, otherwise the decoded manifest file.
func Load(opts Options) (*manifest.Document, error) {
	if opts.Document != nil {
		if err := opts.Document.Validate(); err != nil {
			return nil, err
		}
		return opts.Document, nil
	}
	return manifest.Load(opts.ManifestPath)
}
