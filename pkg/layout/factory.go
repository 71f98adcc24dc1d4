package layout

// Factory functions build the starting descriptors of the algebra. Each
// takes an optional explicit subject; with none, the subject is the node
// the descriptor is eventually expanded against. Passing more than one
// node is not meaningful - only the first is used.

func subject(of []Node) Node {
	if len(of) > 0 {
		return of[0]
	}
	return nil
}

func compound(attrs []Attr, of []Node) Descriptor {
	return Descriptor{Attrs: attrs, From: subject(of)}
}

func single(attr Attr, of []Node) Descriptor {
	return Descriptor{Attr: attr, From: subject(of)}
}

// Flush pins all four edges, expanding to left, right, top, and bottom
// records. Applied on its own it makes a node hug its container exactly.
func Flush(of ...Node) Descriptor {
	return compound([]Attr{AttrLeft, AttrRight, AttrTop, AttrBottom}, of)
}

// FlushToMargins is [Flush] against the margin-relative edges.
func FlushToMargins(of ...Node) Descriptor {
	return compound([]Attr{AttrLeftMargin, AttrRightMargin, AttrTopMargin, AttrBottomMargin}, of)
}

// Horizontal pins the left and right edges.
func Horizontal(of ...Node) Descriptor {
	return compound([]Attr{AttrLeft, AttrRight}, of)
}

// Vertical pins the top and bottom edges.
func Vertical(of ...Node) Descriptor {
	return compound([]Attr{AttrTop, AttrBottom}, of)
}

// Center pins both center axes.
func Center(of ...Node) Descriptor {
	return compound([]Attr{AttrCenterX, AttrCenterY}, of)
}

// CenterWithinMargins is [Center] against the margin-relative axes.
func CenterWithinMargins(of ...Node) Descriptor {
	return compound([]Attr{AttrCenterXWithinMargins, AttrCenterYWithinMargins}, of)
}

// Size covers both dimensions, expanding to width and height records.
func Size(of ...Node) Descriptor {
	return compound([]Attr{AttrWidth, AttrHeight}, of)
}

// Left addresses the left edge.
func Left(of ...Node) Descriptor { return single(AttrLeft, of) }

// Right addresses the right edge.
func Right(of ...Node) Descriptor { return single(AttrRight, of) }

// Top addresses the top edge.
func Top(of ...Node) Descriptor { return single(AttrTop, of) }

// Bottom addresses the bottom edge.
func Bottom(of ...Node) Descriptor { return single(AttrBottom, of) }

// Leading addresses the leading edge (left in left-to-right scripts).
func Leading(of ...Node) Descriptor { return single(AttrLeading, of) }

// Trailing addresses the trailing edge.
func Trailing(of ...Node) Descriptor { return single(AttrTrailing, of) }

// CenterX addresses the horizontal center axis.
func CenterX(of ...Node) Descriptor { return single(AttrCenterX, of) }

// CenterY addresses the vertical center axis.
func CenterY(of ...Node) Descriptor { return single(AttrCenterY, of) }

// Width addresses the width dimension.
func Width(of ...Node) Descriptor { return single(AttrWidth, of) }

// Height addresses the height dimension.
func Height(of ...Node) Descriptor { return single(AttrHeight, of) }

// Baseline addresses the text baseline (the last line for multiline text).
func Baseline(of ...Node) Descriptor { return single(AttrBaseline, of) }

// FirstBaseline addresses the first text baseline.
func FirstBaseline(of ...Node) Descriptor { return single(AttrFirstBaseline, of) }

// LeftMargin addresses the left edge inset by the container margin.
func LeftMargin(of ...Node) Descriptor { return single(AttrLeftMargin, of) }

// RightMargin addresses the right edge inset by the container margin.
func RightMargin(of ...Node) Descriptor { return single(AttrRightMargin, of) }

// TopMargin addresses the top edge inset by the container margin.
func TopMargin(of ...Node) Descriptor { return single(AttrTopMargin, of) }

// BottomMargin addresses the bottom edge inset by the container margin.
func BottomMargin(of ...Node) Descriptor { return single(AttrBottomMargin, of) }

// LeadingMargin addresses the leading edge inset by the container margin.
func LeadingMargin(of ...Node) Descriptor { return single(AttrLeadingMargin, of) }

// TrailingMargin addresses the trailing edge inset by the container margin.
func TrailingMargin(of ...Node) Descriptor { return single(AttrTrailingMargin, of) }

// CenterXWithinMargins addresses the horizontal center of the margin box.
func CenterXWithinMargins(of ...Node) Descriptor { return single(AttrCenterXWithinMargins, of) }

// CenterYWithinMargins addresses the vertical center of the margin box.
func CenterYWithinMargins(of ...Node) Descriptor { return single(AttrCenterYWithinMargins, of) }
