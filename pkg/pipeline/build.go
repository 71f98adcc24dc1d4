package pipeline

import (
	"squarely/pkg/errors"
	"squarely/pkg/manifest"
	"squarely/pkg/tree"
)

// BuildTree constructs the view hierarchy the manifest declares and
// returns the root along with an id lookup covering every view.
//
// Views are visited in declaration order, so a validated document always
// builds: the root comes first and containers precede their contents.
func BuildTree(doc *manifest.Document) (*tree.View, map[string]*tree.View, error) {
	views := make(map[string]*tree.View, len(doc.Views))
	var root *tree.View

	for _, decl := range doc.Views {
		if decl.Container == "" {
			if root != nil {
				return nil, nil, errors.New(errors.ErrCodeInvalidManifest, "view %q has no container but %q is already the root", decl.ID, root.ID())
			}
			root = tree.NewRoot(decl.ID)
			views[decl.ID] = root
			continue
		}
		parent, ok := views[decl.Container]
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeUnknownView, "view %q declares unknown container %q", decl.ID, decl.Container)
		}
		views[decl.ID] = parent.NewChild(decl.ID)
	}

	if root == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidManifest, "manifest declares no root view")
	}
	return root, views, nil
}
