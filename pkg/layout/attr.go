package layout

import "fmt"

// Attr identifies a geometric attribute of a node: an edge, a center axis,
// a dimension, or a text baseline. The zero value is not a valid attribute,
// so a Descriptor's unfilled attribute fields read as "not set".
type Attr int

const (
	attrUnset Attr = iota

	// Edges.
	AttrLeft
	AttrRight
	AttrTop
	AttrBottom
	AttrLeading
	AttrTrailing

	// Center axes.
	AttrCenterX
	AttrCenterY

	// Dimensions.
	AttrWidth
	AttrHeight

	// Text baselines.
	AttrBaseline
	AttrFirstBaseline

	// Margin-relative variants of the edges and center axes.
	AttrLeftMargin
	AttrRightMargin
	AttrTopMargin
	AttrBottomMargin
	AttrLeadingMargin
	AttrTrailingMargin
	AttrCenterXWithinMargins
	AttrCenterYWithinMargins

	// AttrNone marks a constant-only pairing: the record carries no
	// attribute (and no node) on the target side, fixing an absolute
	// value such as a fixed width.
	AttrNone
)

// attrNames maps attributes to their canonical names, shared by String
// and ParseAttr.
var attrNames = map[Attr]string{
	AttrLeft:                 "left",
	AttrRight:                "right",
	AttrTop:                  "top",
	AttrBottom:               "bottom",
	AttrLeading:              "leading",
	AttrTrailing:             "trailing",
	AttrCenterX:              "centerX",
	AttrCenterY:              "centerY",
	AttrWidth:                "width",
	AttrHeight:               "height",
	AttrBaseline:             "baseline",
	AttrFirstBaseline:        "firstBaseline",
	AttrLeftMargin:           "leftMargin",
	AttrRightMargin:          "rightMargin",
	AttrTopMargin:            "topMargin",
	AttrBottomMargin:         "bottomMargin",
	AttrLeadingMargin:        "leadingMargin",
	AttrTrailingMargin:       "trailingMargin",
	AttrCenterXWithinMargins: "centerXWithinMargins",
	AttrCenterYWithinMargins: "centerYWithinMargins",
	AttrNone:                 "none",
}

var attrsByName = func() map[string]Attr {
	m := make(map[string]Attr, len(attrNames))
	for a, name := range attrNames {
		m[name] = a
	}
	return m
}()

// String returns the attribute's canonical name ("left", "centerX", ...).
func (a Attr) String() string {
	if name, ok := attrNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attr(%d)", int(a))
}

// ParseAttr returns the attribute with the given canonical name and true,
// or zero and false for an unknown name. Names are the String forms,
// e.g. "left", "width", "centerYWithinMargins".
func ParseAttr(name string) (Attr, bool) {
	a, ok := attrsByName[name]
	return a, ok
}

// Relation is the comparison between the two sides of a constraint.
// The zero value is RelationEqual, so descriptors that never set a
// relation produce equality constraints.
type Relation int

const (
	RelationEqual Relation = iota
	RelationLessOrEqual
	RelationGreaterOrEqual
)

// String returns the comparison operator ("==", "<=", ">=").
func (r Relation) String() string {
	switch r {
	case RelationEqual:
		return "=="
	case RelationLessOrEqual:
		return "<="
	case RelationGreaterOrEqual:
		return ">="
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// relationAliases maps accepted spellings to relations. Both the operator
// and the word forms are recognized.
var relationAliases = map[string]Relation{
	"==":             RelationEqual,
	"=":              RelationEqual,
	"equal":          RelationEqual,
	"<=":             RelationLessOrEqual,
	"lessOrEqual":    RelationLessOrEqual,
	">=":             RelationGreaterOrEqual,
	"greaterOrEqual": RelationGreaterOrEqual,
}

// ParseRelation returns the relation spelled by s and true, or the zero
// relation and false for an unknown spelling.
func ParseRelation(s string) (Relation, bool) {
	r, ok := relationAliases[s]
	return r, ok
}

// Priority expresses constraint strength on the conventional 0-1000 solver
// scale. The zero value means "no explicit priority": the record carries
// none and the host solver applies its default, which is required strength.
type Priority float64

// Common solver priorities.
const (
	PriorityRequired Priority = 1000
	PriorityHigh     Priority = 750
	PriorityLow      Priority = 250
)
