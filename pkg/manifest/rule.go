package manifest

import (
	"fmt"

	"squarely/pkg/errors"
	"squarely/pkg/layout"
)

// Descriptor compiles the rule into a layout descriptor. The resolve
// function maps view ids to nodes; it is consulted only when the rule
// names a to view.
//
// A rule with a constant and neither to nor toAttr compiles to a
// constant-only descriptor. Otherwise the target side is assembled from
// whichever of to and toAttr are present: a missing to defaults to the
// expanded node's container, a missing toAttr mirrors the applied
// attributes.
func (r Rule) Descriptor(resolve func(id string) (layout.Node, bool)) (layout.Descriptor, error) {
	factory, ok := LookupFactory(r.Apply)
	if !ok {
		return layout.Descriptor{}, errors.New(errors.ErrCodeUnknownFactory, "unknown factory %q", r.Apply)
	}
	d := factory()

	rel := layout.RelationEqual
	if r.Relation != "" {
		parsed, ok := layout.ParseRelation(r.Relation)
		if !ok {
			return layout.Descriptor{}, errors.New(errors.ErrCodeInvalidRelation, "unknown relation %q", r.Relation)
		}
		rel = parsed
	}

	if r.To == "" && r.ToAttr == "" && r.Constant != nil {
		d = relateConstant(d, rel, *r.Constant)
	} else {
		var other layout.Descriptor
		if r.To != "" {
			node, ok := resolve(r.To)
			if !ok {
				return layout.Descriptor{}, errors.New(errors.ErrCodeUnknownView, "rule references unknown view %q", r.To)
			}
			other.From = node
		}
		if r.ToAttr != "" {
			attr, ok := layout.ParseAttr(r.ToAttr)
			if !ok || attr == layout.AttrNone {
				return layout.Descriptor{}, errors.New(errors.ErrCodeInvalidAttribute, "unknown attribute %q", r.ToAttr)
			}
			other.Attr = attr
		}
		d = relate(d, rel, other)
		if r.Constant != nil {
			d = d.Plus(*r.Constant)
		}
	}

	if r.Multiplier != nil {
		// Same check as validation: a zero multiplier would read back as
		// "unset" and silently expand as scale 1.
		if *r.Multiplier == 0 {
			return layout.Descriptor{}, errors.New(errors.ErrCodeInvalidRule, "multiplier cannot be zero")
		}
		d = d.ScaledBy(*r.Multiplier)
	}
	if r.Priority != nil {
		d = d.WithPriority(layout.Priority(*r.Priority))
	}
	return d, nil
}

func relate(d layout.Descriptor, rel layout.Relation, other layout.Descriptor) layout.Descriptor {
	switch rel {
	case layout.RelationLessOrEqual:
		return d.LessOrEqual(other)
	case layout.RelationGreaterOrEqual:
		return d.GreaterOrEqual(other)
	default:
		return d.EqualTo(other)
	}
}

func relateConstant(d layout.Descriptor, rel layout.Relation, c float64) layout.Descriptor {
	switch rel {
	case layout.RelationLessOrEqual:
		return d.LessOrEqualConstant(c)
	case layout.RelationGreaterOrEqual:
		return d.GreaterOrEqualConstant(c)
	default:
		return d.EqualToConstant(c)
	}
}

// Descriptors compiles every rule in the document and groups the results
// by target view, preserving rule order within each group. The resolve
// function maps view ids to nodes.
func (d *Document) Descriptors(resolve func(id string) (layout.Node, bool)) (map[string][]layout.Descriptor, error) {
	out := make(map[string][]layout.Descriptor, len(d.Views))
	for i, rule := range d.Rules {
		desc, err := rule.Descriptor(resolve)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		out[rule.Target] = append(out[rule.Target], desc)
	}
	return out, nil
}
