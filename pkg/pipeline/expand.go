package pipeline

import (
	"fmt"

	"squarely/pkg/layout"
	"squarely/pkg/layout/expand"
	"squarely/pkg/manifest"
	"squarely/pkg/tree"
)

// Expand compiles the document's rules and expands them into records,
// visiting views in declaration order. On failure the records committed
// for earlier views are returned with the error.
func Expand(doc *manifest.Document, views map[string]*tree.View, opts Options) ([]*layout.Record, error) {
	groups, err := doc.Descriptors(func(id string) (layout.Node, bool) {
		v, ok := views[id]
		if !ok {
			return nil, false
		}
		return v, true
	})
	if err != nil {
		return nil, err
	}

	engine := expand.New(expand.Options{Logger: opts.Logger})

	var records []*layout.Record
	for _, decl := range doc.Views {
		descs := groups[decl.ID]
		if len(descs) == 0 {
			continue
		}
		recs, err := engine.Apply(views[decl.ID], descs...)
		if err != nil {
			return records, fmt.Errorf("expand %s: %w", decl.ID, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}
