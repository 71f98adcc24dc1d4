// Package tree provides an in-memory view hierarchy implementing the
// layout package's Node and Container interfaces.
//
// It is the reference host for the constraint algebra: embedders with a
// real view system implement [layout.Node] and [layout.Container] on
// their own types instead, and everything in layout and expand works the
// same. Views hold their children, their active constraint records, and
// the autosizing flag that expansion switches off.
//
// Views are not safe for concurrent use. All mutation of one hierarchy
// must happen on a single goroutine, mirroring the layout thread model of
// host view systems.
package tree

import (
	"slices"

	"github.com/google/uuid"

	"squarely/pkg/layout"
)

// View is a node in an in-memory view hierarchy.
// Use NewRoot and View.NewChild to build hierarchies; the zero value is
// not usable.
type View struct {
	id         string
	parent     *View
	children   []*View
	records    []*layout.Record
	autosizing bool
}

var _ layout.Container = (*View)(nil)

// NewRoot creates a detached view that can serve as the top of a
// hierarchy. An empty id is replaced with a generated UUID.
func NewRoot(id string) *View {
	if id == "" {
		id = uuid.NewString()
	}
	return &View{id: id, autosizing: true}
}

// NewChild creates a view parented under v and returns it.
// An empty id is replaced with a generated UUID.
func (v *View) NewChild(id string) *View {
	child := NewRoot(id)
	child.parent = v
	v.children = append(v.children, child)
	return child
}

// ID returns the view's identifier.
func (v *View) ID() string { return v.id }

// Parent returns the parent view, or nil for a root.
func (v *View) Parent() *View { return v.parent }

// Children returns the direct children in creation order.
// The returned slice is a copy.
func (v *View) Children() []*View { return slices.Clone(v.children) }

// Container returns the parent and true, or nil and false for a root.
func (v *View) Container() (layout.Container, bool) {
	if v.parent == nil {
		return nil, false
	}
	return v.parent, true
}

// DisableAutosizing switches off implicit autosizing for the view.
// Expansion calls this before registering records; calling it again is a
// no-op.
func (v *View) DisableAutosizing() { v.autosizing = false }

// Autosizing reports whether the view still relies on implicit sizing,
// i.e. no constraints have been expanded against it yet.
func (v *View) Autosizing() bool { return v.autosizing }

// AddRecord appends a record to the view's active constraint set.
func (v *View) AddRecord(r *layout.Record) { v.records = append(v.records, r) }

// Records returns a copy of the active constraint set in registration
// order. The records themselves are shared; use their Enable and Disable
// methods to change liveness.
func (v *View) Records() []*layout.Record { return slices.Clone(v.records) }

// RemoveRecord removes r from the active set, compared by identity.
// Removing a record that is not registered is a no-op.
func (v *View) RemoveRecord(r *layout.Record) {
	v.records = slices.DeleteFunc(v.records, func(x *layout.Record) bool { return x == r })
}
