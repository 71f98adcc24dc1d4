package expand

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"squarely/pkg/layout"
	"squarely/pkg/observability"
)

var (
	// ErrMissingContainer is returned when expansion is attempted on a
	// node with no container. Constraints anchor against and register
	// with the container, so a root node cannot be expanded.
	ErrMissingContainer = errors.New("node has no container")

	// ErrUndefinedAttribute is returned when a descriptor reaches
	// expansion with neither its single nor its plural attribute field
	// set. Such a descriptor describes no rule at all; this is a
	// programming error at the call site.
	ErrUndefinedAttribute = errors.New("descriptor has no attributes")
)

// Options configures an Engine.
type Options struct {
	// Logger receives per-node debug output. Nil discards.
	Logger *log.Logger
}

// Engine expands descriptors into registered constraint records.
// The zero value is not usable; use New. An Engine holds no per-call
// state and may be shared, subject to the single layout thread rule for
// the hierarchies it touches.
type Engine struct {
	logger *log.Logger
}

// New creates an Engine. A nil Options.Logger disables logging.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Engine{logger: logger}
}

// defaultEngine serves the package-level entry points.
var defaultEngine = New(Options{})

// Apply expands every descriptor against node and registers the records
// with the node's container. See [Engine.Apply].
func Apply(node layout.Node, descs ...layout.Descriptor) ([]*layout.Record, error) {
	return defaultEngine.Apply(node, descs...)
}

// Batch expands the same descriptors against every node independently.
// See [Engine.Batch].
func Batch(nodes []layout.Node, descs []layout.Descriptor) ([]*layout.Record, error) {
	return defaultEngine.Batch(nodes, descs)
}

// Chained expands mapper-built descriptors along an ordered sequence.
// See [Engine.Chained].
func Chained(nodes []layout.Node, mapper func(prev layout.Node) []layout.Descriptor) ([]*layout.Record, error) {
	return defaultEngine.Chained(nodes, mapper)
}

// Apply expands every descriptor against node and registers the records
// with the node's container, returning them in descriptor order.
//
// All records are built before any is registered: on error (a root node,
// or a descriptor with no attributes) nothing is registered and nil
// records are returned. On success the node's autosizing is switched off
// before registration.
func (e *Engine) Apply(node layout.Node, descs ...layout.Descriptor) ([]*layout.Record, error) {
	start := time.Now()
	observability.Expand().OnExpandStart(node.ID(), len(descs))

	records, err := e.expand(node, descs)

	observability.Expand().OnExpandComplete(node.ID(), len(records), time.Since(start), err)
	return records, err
}

// Batch expands the same descriptors against every node independently and
// concatenates the results in node order.
//
// Batches are not transactional: expansion stops at the first failing
// node, but earlier nodes keep their registrations. The returned slice
// holds exactly the records committed before the failure, so a caller
// that wants all-or-nothing can remove them.
func (e *Engine) Batch(nodes []layout.Node, descs []layout.Descriptor) ([]*layout.Record, error) {
	var all []*layout.Record
	for _, node := range nodes {
		records, err := e.Apply(node, descs...)
		if err != nil {
			return all, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// Chained expands descriptors along an ordered sequence of nodes, asking
// mapper for each node's descriptors given the node's predecessor. The
// first node receives no records; for every later node the mapper is
// called exactly once with the preceding node, strictly left to right:
//
//	records, err := engine.Chained(rows, func(prev layout.Node) []layout.Descriptor {
//	    return []layout.Descriptor{layout.Top().EqualTo(layout.Bottom(prev)).Plus(8)}
//	})
//
// Like [Engine.Batch] this is not transactional: on failure the records
// committed for earlier nodes are returned with the error.
func (e *Engine) Chained(nodes []layout.Node, mapper func(prev layout.Node) []layout.Descriptor) ([]*layout.Record, error) {
	var all []*layout.Record
	for i := 1; i < len(nodes); i++ {
		records, err := e.Apply(nodes[i], mapper(nodes[i-1])...)
		if err != nil {
			return all, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// expand builds all records for one node and, if every descriptor
// resolved, registers them with the node's container.
func (e *Engine) expand(node layout.Node, descs []layout.Descriptor) ([]*layout.Record, error) {
	container, ok := node.Container()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingContainer, node.ID())
	}

	var records []*layout.Record
	for _, d := range descs {
		built, err := build(node, container, d)
		if err != nil {
			return nil, err
		}
		records = append(records, built...)
	}

	node.DisableAutosizing()
	for _, r := range records {
		container.AddRecord(r)
	}

	e.logger.Debug("expanded layout",
		"node", node.ID(),
		"descriptors", len(descs),
		"records", len(records))
	return records, nil
}

// build resolves one descriptor against the node into records, applying
// the pairing rules: plural target attributes pair positionally and
// truncate to the shorter side, a single target attribute repeats for
// every subject attribute, and an unset target side mirrors the subject
// attribute.
func build(node layout.Node, container layout.Container, d layout.Descriptor) ([]*layout.Record, error) {
	attrs, res := d.SubjectAttrs()
	if res == layout.AttrsUndefined {
		return nil, fmt.Errorf("%w: applied to %s", ErrUndefinedAttribute, node.ID())
	}
	otherAttrs, otherRes := d.TargetAttrs()

	subject := node
	if d.From != nil {
		subject = d.From
	}

	count := len(attrs)
	if otherRes == layout.AttrsMany && len(otherAttrs) < count {
		count = len(otherAttrs)
	}

	records := make([]*layout.Record, 0, count)
	for i := 0; i < count; i++ {
		var otherAttr layout.Attr
		switch otherRes {
		case layout.AttrsMany:
			otherAttr = otherAttrs[i]
		case layout.AttrsSingle:
			otherAttr = otherAttrs[0]
		default:
			otherAttr = attrs[i]
		}

		rec := &layout.Record{
			Subject:    subject,
			Attr:       attrs[i],
			Relation:   d.Relation,
			TargetAttr: otherAttr,
			Multiplier: d.EffectiveMultiplier(),
			Constant:   d.Constant,
			Priority:   d.Priority,
		}
		if otherAttr != layout.AttrNone {
			rec.Target = d.To
			if rec.Target == nil {
				rec.Target = container
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
