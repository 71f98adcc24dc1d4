package layout

// Descriptor is one declarative layout rule prior to expansion: which
// attributes of which subject relate to which attributes of which target,
// with what relation, multiplier, constant, and priority.
//
// Descriptors are plain values. Factory functions such as [Flush] and
// [Width] create them, and every combinator copies its receiver, adjusts
// the copy, and returns it, so a descriptor can be stored, reused, and
// extended without affecting earlier uses. The zero value carries no
// attributes and fails expansion.
//
// Numeric fields use zero for "not set": a zero Multiplier expands as 1
// and a zero Priority leaves the solver default in force. A consequence
// is that combining two descriptors never transfers an explicit zero
// constant or multiplier from the right-hand side.
type Descriptor struct {
	// Attrs holds the subject attributes of compound rules ([Flush],
	// [Size], ...). When non-empty it takes precedence over Attr.
	Attrs []Attr
	// Attr holds the subject attribute of single-attribute rules
	// ([Width], [Top], ...).
	Attr Attr

	// From overrides the subject. When nil, the subject is the node the
	// descriptor is expanded against.
	From Node
	// To is the target node. When nil, the target defaults to the
	// subject's container.
	To Node

	// OtherAttrs holds the target-side attributes, paired positionally
	// with the subject attributes and truncated to the shorter side.
	OtherAttrs []Attr
	// OtherAttr holds a single target-side attribute, paired with every
	// subject attribute. AttrNone makes the rule constant-only.
	OtherAttr Attr

	Relation   Relation
	Multiplier float64 // zero means unset (expands as 1)
	Constant   float64
	Priority   Priority // zero means the solver default
}

// AttrResolution classifies how one side of a descriptor resolved its
// attributes: from the plural field, from the single field, or not at all.
type AttrResolution int

const (
	// AttrsUndefined means neither attribute field is populated.
	AttrsUndefined AttrResolution = iota
	// AttrsSingle means only the single field is populated. During
	// expansion a single target attribute pairs with every subject
	// attribute.
	AttrsSingle
	// AttrsMany means the plural field is populated. During expansion
	// target attributes pair positionally with subject attributes,
	// truncating to the shorter side.
	AttrsMany
)

// resolveAttrs applies the precedence shared by both descriptor sides:
// the plural field when non-empty, else the single field when set.
func resolveAttrs(many []Attr, single Attr) ([]Attr, AttrResolution) {
	if len(many) > 0 {
		return many, AttrsMany
	}
	if single != attrUnset {
		return []Attr{single}, AttrsSingle
	}
	return nil, AttrsUndefined
}

// SubjectAttrs resolves the subject side of the descriptor. Expansion
// treats AttrsUndefined here as an error.
func (d Descriptor) SubjectAttrs() ([]Attr, AttrResolution) {
	return resolveAttrs(d.Attrs, d.Attr)
}

// TargetAttrs resolves the target side of the descriptor. AttrsUndefined
// here is valid: expansion then pairs each subject attribute with itself.
func (d Descriptor) TargetAttrs() ([]Attr, AttrResolution) {
	return resolveAttrs(d.OtherAttrs, d.OtherAttr)
}

// EffectiveMultiplier returns the multiplier expansion will emit: the
// stored value, or 1 when unset.
func (d Descriptor) EffectiveMultiplier() float64 {
	if d.Multiplier == 0 {
		return 1
	}
	return d.Multiplier
}

// EqualTo relates the receiver's attributes to those of other, anchoring
// the rule against other's subject:
//
//	layout.Width(badge).EqualTo(layout.Height(badge))       // aspect ratio
//	layout.Top(label).EqualTo(layout.Bottom(title)).Plus(8) // stack below
//
// The target node becomes other's subject (nil keeps the container
// default) and other's attributes become the target-side attributes,
// paired positionally. A nonzero constant or multiplier on other carries
// over; zero values count as unset and leave the receiver's own fields
// alone.
func (d Descriptor) EqualTo(other Descriptor) Descriptor {
	return d.relate(RelationEqual, other)
}

// LessOrEqual is [Descriptor.EqualTo] with a <= relation.
func (d Descriptor) LessOrEqual(other Descriptor) Descriptor {
	return d.relate(RelationLessOrEqual, other)
}

// GreaterOrEqual is [Descriptor.EqualTo] with a >= relation.
func (d Descriptor) GreaterOrEqual(other Descriptor) Descriptor {
	return d.relate(RelationGreaterOrEqual, other)
}

func (d Descriptor) relate(rel Relation, other Descriptor) Descriptor {
	d.Relation = rel
	d.To = other.From
	if attrs, res := other.SubjectAttrs(); res != AttrsUndefined {
		d.OtherAttrs = attrs
	}
	if other.Constant != 0 {
		d.Constant = other.Constant
	}
	if other.Multiplier != 0 {
		d.Multiplier = other.Multiplier
	}
	return d
}

// EqualToNode anchors the rule against a specific node. With no explicit
// target attributes each subject attribute pairs with the same attribute
// of n:
//
//	layout.Width(badge).EqualToNode(icon) // badge.width == icon.width
func (d Descriptor) EqualToNode(n Node) Descriptor {
	d.Relation = RelationEqual
	d.To = n
	return d
}

// LessOrEqualNode is [Descriptor.EqualToNode] with a <= relation.
func (d Descriptor) LessOrEqualNode(n Node) Descriptor {
	d.Relation = RelationLessOrEqual
	d.To = n
	return d
}

// GreaterOrEqualNode is [Descriptor.EqualToNode] with a >= relation.
func (d Descriptor) GreaterOrEqualNode(n Node) Descriptor {
	d.Relation = RelationGreaterOrEqual
	d.To = n
	return d
}

// EqualToConstant fixes the receiver's attributes at an absolute value,
// expanding to one constant-only record per subject attribute:
//
//	layout.Height(toolbar).EqualToConstant(44)
//
// Previously set target attributes are discarded, and a previously set
// target node is ignored during expansion.
func (d Descriptor) EqualToConstant(c float64) Descriptor {
	return d.constant(RelationEqual, c)
}

// LessOrEqualConstant is [Descriptor.EqualToConstant] with a <= relation.
func (d Descriptor) LessOrEqualConstant(c float64) Descriptor {
	return d.constant(RelationLessOrEqual, c)
}

// GreaterOrEqualConstant is [Descriptor.EqualToConstant] with a >= relation.
func (d Descriptor) GreaterOrEqualConstant(c float64) Descriptor {
	return d.constant(RelationGreaterOrEqual, c)
}

func (d Descriptor) constant(rel Relation, c float64) Descriptor {
	d.Relation = rel
	d.Constant = c
	d.OtherAttrs = nil
	d.OtherAttr = AttrNone
	return d
}

// Plus sets the constant offset. Despite the name the value replaces any
// previous constant rather than accumulating, so the last Plus or Minus
// in a chain wins.
func (d Descriptor) Plus(c float64) Descriptor {
	d.Constant = c
	return d
}

// Minus sets the constant offset to the negated value. Like
// [Descriptor.Plus] it replaces rather than accumulates.
func (d Descriptor) Minus(c float64) Descriptor {
	d.Constant = -c
	return d
}

// ScaledBy scales the target side. On a fresh descriptor the multiplier
// simply becomes f; chained scales compose, so ScaledBy(k) followed by
// DividedBy(k) restores the original multiplier.
func (d Descriptor) ScaledBy(f float64) Descriptor {
	d.Multiplier = d.EffectiveMultiplier() * f
	return d
}

// DividedBy divides the target side's scale. Division by zero is not
// guarded and yields an infinite multiplier.
func (d Descriptor) DividedBy(f float64) Descriptor {
	d.Multiplier = d.EffectiveMultiplier() / f
	return d
}

// WithPriority sets the constraint strength:
//
//	layout.Width(badge).EqualToConstant(20).WithPriority(layout.PriorityHigh)
func (d Descriptor) WithPriority(p Priority) Descriptor {
	d.Priority = p
	return d
}
