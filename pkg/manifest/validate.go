package manifest

import (
	"squarely/pkg/errors"
	"squarely/pkg/layout"
)

// Validate checks the document's internal consistency: view ids are unique
// and well formed, exactly one view is the root, containers are declared
// before the views they contain, and every rule resolves to declared views,
// a known factory and legal attribute, relation and priority values.
func (d *Document) Validate() error {
	if len(d.Views) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest declares no views")
	}

	declared := make(map[string]bool, len(d.Views))
	var root string
	for _, v := range d.Views {
		if err := errors.ValidateViewID(v.ID); err != nil {
			return err
		}
		if declared[v.ID] {
			return errors.New(errors.ErrCodeInvalidView, "duplicate view id %q", v.ID)
		}
		switch {
		case v.Container == "":
			if root != "" {
				return errors.New(errors.ErrCodeInvalidManifest, "view %q has no container but %q is already the root", v.ID, root)
			}
			root = v.ID
		case v.Container == v.ID:
			return errors.New(errors.ErrCodeInvalidView, "view %q cannot contain itself", v.ID)
		case !declared[v.Container]:
			return errors.New(errors.ErrCodeUnknownView, "view %q declares unknown container %q (containers must be declared first)", v.ID, v.Container)
		}
		declared[v.ID] = true
	}

	for i, r := range d.Rules {
		if err := validateRule(i, r, declared, root); err != nil {
			return err
		}
	}
	return nil
}

func validateRule(i int, r Rule, declared map[string]bool, root string) error {
	if r.Target == "" {
		return errors.New(errors.ErrCodeInvalidRule, "rule %d has no target", i)
	}
	if !declared[r.Target] {
		return errors.New(errors.ErrCodeUnknownView, "rule %d targets unknown view %q", i, r.Target)
	}
	if r.Target == root {
		return errors.New(errors.ErrCodeInvalidRule, "rule %d targets the root view %q, which has no container to expand against", i, r.Target)
	}

	if r.Apply == "" {
		return errors.New(errors.ErrCodeInvalidRule, "rule %d has no factory", i)
	}
	if err := errors.ValidateFactoryName(r.Apply); err != nil {
		return err
	}
	if _, ok := LookupFactory(r.Apply); !ok {
		return errors.New(errors.ErrCodeUnknownFactory, "rule %d applies unknown factory %q", i, r.Apply)
	}

	if r.To != "" && !declared[r.To] {
		return errors.New(errors.ErrCodeUnknownView, "rule %d references unknown view %q", i, r.To)
	}
	if r.ToAttr != "" {
		if err := errors.ValidateAttributeName(r.ToAttr); err != nil {
			return err
		}
		if attr, ok := layout.ParseAttr(r.ToAttr); !ok || attr == layout.AttrNone {
			return errors.New(errors.ErrCodeInvalidAttribute, "rule %d references unknown attribute %q", i, r.ToAttr)
		}
	}
	if r.Relation != "" {
		if err := errors.ValidateRelationName(r.Relation); err != nil {
			return err
		}
		if _, ok := layout.ParseRelation(r.Relation); !ok {
			return errors.New(errors.ErrCodeInvalidRelation, "rule %d uses unknown relation %q", i, r.Relation)
		}
	}

	// A zero multiplier would read back as "unset" and silently expand as
	// scale 1, so reject it outright.
	if r.Multiplier != nil && *r.Multiplier == 0 {
		return errors.New(errors.ErrCodeInvalidRule, "rule %d multiplier cannot be zero", i)
	}
	if r.Priority != nil && (*r.Priority <= 0 || *r.Priority > float64(layout.PriorityRequired)) {
		return errors.New(errors.ErrCodeInvalidRule, "rule %d priority %g out of range (0, %g]", i, *r.Priority, float64(layout.PriorityRequired))
	}
	return nil
}
