// Package manifest loads declarative layout manifests and compiles their
// rules into layout descriptors.
//
// # Overview
//
// A manifest declares a view hierarchy and a list of layout rules in TOML,
// YAML or JSON. [Load] reads and validates a manifest file, detecting the
// format from the file extension; [Decode] works on raw bytes.
//
// A minimal TOML manifest:
//
//	[[view]]
//	id = "window"
//
//	[[view]]
//	id = "sidebar"
//	container = "window"
//
//	[[rule]]
//	target = "sidebar"
//	apply = "vertical"
//
//	[[rule]]
//	target = "sidebar"
//	apply = "width"
//	constant = 240.0
//
// # Views
//
// Every view has a unique id. Exactly one view, the root, has no container;
// every other view names its container, which must be declared earlier in
// the list. Declaration order therefore fixes the hierarchy and rules out
// containment cycles.
//
// # Rules
//
// Each rule targets a declared view and names a factory to apply:
//
//   - target: the view the resulting records constrain
//   - apply: a factory name ("flush", "horizontal", "width", ...)
//   - to: an optional view to pair against (default: the target's container)
//   - toAttr: an optional attribute to pair against ("left", "centerX", ...)
//   - relation: "==", "<=" or ">=" (default "==")
//   - constant, multiplier, priority: optional numeric adjustments
//
// A rule with a constant and no to/toAttr pins the applied attributes to an
// absolute value. [Rule.Descriptor] compiles one rule; [Document.Descriptors]
// compiles a whole document, grouping descriptors by target view.
//
// # Validation
//
// [Document.Validate] runs after decoding and rejects unknown view
// references, unknown factories, malformed attribute and relation names,
// and out-of-range priorities. Errors carry codes from the errors package,
// so callers can branch on the failure class.
package manifest
