package layout

import (
	"fmt"
	"strings"
)

// Record is one concrete constraint produced by expansion: a subject
// attribute related either to a scaled and offset target attribute or to
// a bare constant.
//
// Expansion registers each record with the subject's container, after
// which the host layout system owns it; the slice returned from an
// expansion call lets the caller enable, disable, or remove exactly that
// set later. Records are compared by identity, never by value.
type Record struct {
	Subject  Node
	Attr     Attr
	Relation Relation

	// Target is the node on the other side. It is nil exactly when
	// TargetAttr is AttrNone, making the record constant-only.
	Target     Node
	TargetAttr Attr

	Multiplier float64
	Constant   float64
	// Priority is zero when no explicit priority is set and the solver
	// default applies.
	Priority Priority

	disabled bool
}

// Enable marks the record as live input for the host solver.
// Records start enabled.
func (r *Record) Enable() { r.disabled = false }

// Disable withdraws the record from the host solver without removing it
// from its container's set.
func (r *Record) Disable() { r.disabled = true }

// Enabled reports whether the record is live.
func (r *Record) Enabled() bool { return !r.disabled }

// ConstantOnly reports whether the record fixes an absolute value with no
// target side.
func (r *Record) ConstantOnly() bool { return r.TargetAttr == AttrNone }

// String renders the record as an equation, e.g.
// "badge.width <= panel.width * 0.5 + 12 @750" or "toolbar.height == 44".
func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s %s", r.Subject.ID(), r.Attr, r.Relation)
	if r.Target == nil {
		fmt.Fprintf(&b, " %g", r.Constant)
	} else {
		fmt.Fprintf(&b, " %s.%s", r.Target.ID(), r.TargetAttr)
		if r.Multiplier != 1 {
			fmt.Fprintf(&b, " * %g", r.Multiplier)
		}
		switch {
		case r.Constant > 0:
			fmt.Fprintf(&b, " + %g", r.Constant)
		case r.Constant < 0:
			fmt.Fprintf(&b, " - %g", -r.Constant)
		}
	}
	if r.Priority != 0 {
		fmt.Fprintf(&b, " @%g", float64(r.Priority))
	}
	return b.String()
}
