// Package layout provides a declarative algebra for building layout
// constraints as values instead of verbose imperative constraint
// construction.
//
// # Overview
//
// A [Descriptor] captures one layout rule: which attributes of a subject
// node relate to which attributes of a target node, with a relation,
// multiplier, constant, and priority. Factory functions create starting
// descriptors ([Flush], [Horizontal], [Size], [Width], ...), and pure
// combinators derive new ones ([Descriptor.EqualTo], [Descriptor.Plus],
// [Descriptor.ScaledBy], ...). Nothing here touches the node tree;
// descriptors stay inert values until the expand subpackage resolves them
// against a concrete node into [Record] constraints.
//
// # Basic Usage
//
// Build rules by chaining combinators onto a factory descriptor:
//
//	layout.Flush()                                    // hug the container
//	layout.Height().EqualToConstant(44)               // fixed height
//	layout.Width(a).EqualTo(layout.Width(b)).ScaledBy(0.5).Plus(12)
//
// Compound factories expand to several records at once: [Flush] covers
// all four edges, [Size] both dimensions. With no explicit target the
// records anchor against the subject's container.
//
// # Pairing Rules
//
// During expansion the subject attributes pair with the target side as
// follows: explicit plural target attributes pair positionally and
// truncate to the shorter side; a single target attribute pairs with
// every subject attribute; with no target attributes each subject
// attribute pairs with itself on the target node. [AttrNone] as the
// target attribute makes the pair constant-only, with no target node.
//
// # Unset Fields
//
// Descriptor fields use zero for "not set". The multiplier expands as 1
// when zero, a zero priority defers to the solver default, and combining
// two descriptors copies the right-hand constant and multiplier only when
// they are nonzero. An explicit zero on the right-hand side therefore
// never overrides the left-hand value.
//
// # Concurrency
//
// Descriptors are immutable values: building and combining them is safe
// from any number of goroutines. Expansion, by contrast, mutates the
// target container and follows the host's single layout thread model; see
// the expand subpackage.
package layout
