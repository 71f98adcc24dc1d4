package manifest

import (
	"slices"

	"golang.org/x/exp/maps"

	"squarely/pkg/layout"
)

// Factory builds a descriptor, optionally naming an explicit subject node.
type Factory func(of ...layout.Node) layout.Descriptor

// factories maps manifest factory names to the layout factories they
// invoke. Single-attribute factories are registered under their
// attribute's name.
var factories = map[string]Factory{
	// Compound factories.
	"flush":               layout.Flush,
	"flushToMargins":      layout.FlushToMargins,
	"horizontal":          layout.Horizontal,
	"vertical":            layout.Vertical,
	"center":              layout.Center,
	"centerWithinMargins": layout.CenterWithinMargins,
	"size":                layout.Size,

	// Single-attribute factories.
	"left":                 layout.Left,
	"right":                layout.Right,
	"top":                  layout.Top,
	"bottom":               layout.Bottom,
	"leading":              layout.Leading,
	"trailing":             layout.Trailing,
	"centerX":              layout.CenterX,
	"centerY":              layout.CenterY,
	"width":                layout.Width,
	"height":               layout.Height,
	"baseline":             layout.Baseline,
	"firstBaseline":        layout.FirstBaseline,
	"leftMargin":           layout.LeftMargin,
	"rightMargin":          layout.RightMargin,
	"topMargin":            layout.TopMargin,
	"bottomMargin":         layout.BottomMargin,
	"leadingMargin":        layout.LeadingMargin,
	"trailingMargin":       layout.TrailingMargin,
	"centerXWithinMargins": layout.CenterXWithinMargins,
	"centerYWithinMargins": layout.CenterYWithinMargins,
}

// Factories returns all registered factory names in sorted order.
func Factories() []string {
	names := maps.Keys(factories)
	slices.Sort(names)
	return names
}

// LookupFactory returns the factory registered under name.
func LookupFactory(name string) (Factory, bool) {
	f, ok := factories[name]
	return f, ok
}
