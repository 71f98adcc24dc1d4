// Package expand resolves layout descriptors against concrete nodes into
// registered constraint records.
//
// # Overview
//
// The layout package builds inert [layout.Descriptor] values; this package
// turns them into [layout.Record] constraints. For each (node, descriptor)
// pair the engine resolves the subject and target attribute sets, pairs
// them, anchors every pair against the right target (explicit node,
// container default, or none for constant-only rules), and registers the
// records with the node's container.
//
//	card := root.NewChild("card")
//	records, err := expand.Apply(card,
//	    layout.Horizontal(),
//	    layout.Height().EqualToConstant(120),
//	)
//
// [Apply], [Batch], and [Chained] use a default engine; construct an
// [Engine] with [New] to attach a logger.
//
// # Pairing
//
// Subject attributes come from the descriptor's plural field, or else its
// single field; a descriptor with neither fails with
// [ErrUndefinedAttribute]. The target side pairs in one of three ways:
// plural target attributes pair positionally and silently truncate to the
// shorter side, a single target attribute repeats for every subject
// attribute, and an unset target side mirrors each subject attribute onto
// the target node. A pair whose target attribute is [layout.AttrNone]
// produces a constant-only record with no target node.
//
// # Registration
//
// Expansion requires the node to have a container; a root fails with
// [ErrMissingContainer]. All records for a node are built before any are
// registered, so a failing descriptor leaves the container untouched. On
// success the node's autosizing is switched off, and every record is
// appended to the container's active set as well as to the returned
// slice. Records register enabled.
//
// [Batch] expands nodes independently and stops at the first failure;
// earlier nodes keep their registrations, and the returned slice holds
// exactly the committed records. [Chained] walks an ordered sequence,
// asking a mapper for the descriptors of each node given its predecessor;
// the first node receives nothing.
//
// # Concurrency
//
// Expansion mutates the target container. Calls touching the same
// hierarchy must run on one goroutine, matching the single layout thread
// model of host view systems.
package expand
