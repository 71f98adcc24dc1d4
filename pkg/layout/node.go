package layout

// Node is the surface the algebra and the expansion engine consume from
// the host view system. Implementations identify themselves for
// diagnostics, expose their parent, and accept the autosizing opt-out
// that expansion applies before registering constraints.
//
// The tree package provides a ready in-memory implementation; hosts with
// their own hierarchy implement these two interfaces instead.
type Node interface {
	// ID returns a stable identifier used in diagnostics and record
	// strings.
	ID() string
	// Container returns the node's parent and true, or nil and false for
	// a root. Expansion requires a container.
	Container() (Container, bool)
	// DisableAutosizing switches off the host's implicit autosizing
	// constraints for the node. Expansion calls it before registering
	// records; implementations must tolerate repeated calls.
	DisableAutosizing()
}

// Container is a node that owns an active constraint set.
type Container interface {
	Node
	// AddRecord appends a record to the active constraint set, making it
	// live input for the host solver.
	AddRecord(*Record)
	// Records returns the active constraint set.
	Records() []*Record
}
