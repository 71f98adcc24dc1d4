package manifest

import (
	"testing"

	"squarely/pkg/errors"
	"squarely/pkg/layout"
	"squarely/pkg/tree"
)

// testResolver builds a small hierarchy and resolves ids against it.
func testResolver(t *testing.T) (map[string]*tree.View, func(id string) (layout.Node, bool)) {
	t.Helper()
	root := tree.NewRoot("window")
	views := map[string]*tree.View{
		"window":  root,
		"sidebar": root.NewChild("sidebar"),
		"content": root.NewChild("content"),
	}
	return views, func(id string) (layout.Node, bool) {
		v, ok := views[id]
		return v, ok
	}
}

func TestRule_Descriptor(t *testing.T) {
	views, resolve := testResolver(t)

	tests := []struct {
		name string
		rule Rule
		want layout.Descriptor
	}{
		{
			name: "bare factory",
			rule: Rule{Target: "sidebar", Apply: "flush"},
			want: layout.Flush(),
		},
		{
			name: "constant only",
			rule: Rule{Target: "sidebar", Apply: "width", Constant: ptr(240)},
			want: layout.Width().EqualToConstant(240),
		},
		{
			name: "constant with relation",
			rule: Rule{Target: "sidebar", Apply: "width", Relation: "<=", Constant: ptr(320)},
			want: layout.Width().LessOrEqualConstant(320),
		},
		{
			name: "to view",
			rule: Rule{Target: "sidebar", Apply: "top", To: "content"},
			want: layout.Top().EqualToNode(views["content"]),
		},
		{
			name: "to view and attribute",
			rule: Rule{Target: "sidebar", Apply: "top", To: "content", ToAttr: "bottom", Constant: ptr(8)},
			want: layout.Top().EqualTo(layout.Bottom(views["content"])).Plus(8),
		},
		{
			name: "attribute against container",
			rule: Rule{Target: "sidebar", Apply: "width", ToAttr: "height"},
			want: layout.Width().EqualTo(layout.Height()),
		},
		{
			name: "greater or equal to view",
			rule: Rule{Target: "sidebar", Apply: "height", To: "content", Relation: ">="},
			want: layout.Height().GreaterOrEqualNode(views["content"]),
		},
		{
			name: "scaled",
			rule: Rule{Target: "sidebar", Apply: "width", ToAttr: "width", Multiplier: ptr(0.25)},
			want: layout.Width().EqualTo(layout.Width()).ScaledBy(0.25),
		},
		{
			name: "prioritized",
			rule: Rule{Target: "sidebar", Apply: "centerY", Priority: ptr(750)},
			want: layout.CenterY().WithPriority(layout.PriorityHigh),
		},
		{
			name: "word relation",
			rule: Rule{Target: "sidebar", Apply: "width", Relation: "lessOrEqual", Constant: ptr(100)},
			want: layout.Width().LessOrEqualConstant(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule.Descriptor(resolve)
			if err != nil {
				t.Fatalf("Descriptor() error = %v", err)
			}
			assertDescriptorsEqual(t, got, tt.want)
		})
	}
}

// assertDescriptorsEqual compares descriptors field by field; Descriptor
// holds a slice and interfaces, so == is not available.
func assertDescriptorsEqual(t *testing.T, got, want layout.Descriptor) {
	t.Helper()
	if got.From != want.From {
		t.Errorf("From = %v, want %v", got.From, want.From)
	}
	if got.Attr != want.Attr {
		t.Errorf("Attr = %v, want %v", got.Attr, want.Attr)
	}
	if len(got.Attrs) != len(want.Attrs) {
		t.Fatalf("Attrs = %v, want %v", got.Attrs, want.Attrs)
	}
	for i := range got.Attrs {
		if got.Attrs[i] != want.Attrs[i] {
			t.Errorf("Attrs[%d] = %v, want %v", i, got.Attrs[i], want.Attrs[i])
		}
	}
	if got.Relation != want.Relation {
		t.Errorf("Relation = %v, want %v", got.Relation, want.Relation)
	}
	if got.To != want.To {
		t.Errorf("To = %v, want %v", got.To, want.To)
	}
	if got.OtherAttr != want.OtherAttr {
		t.Errorf("OtherAttr = %v, want %v", got.OtherAttr, want.OtherAttr)
	}
	if len(got.OtherAttrs) != len(want.OtherAttrs) {
		t.Fatalf("OtherAttrs = %v, want %v", got.OtherAttrs, want.OtherAttrs)
	}
	for i := range got.OtherAttrs {
		if got.OtherAttrs[i] != want.OtherAttrs[i] {
			t.Errorf("OtherAttrs[%d] = %v, want %v", i, got.OtherAttrs[i], want.OtherAttrs[i])
		}
	}
	if got.Constant != want.Constant {
		t.Errorf("Constant = %v, want %v", got.Constant, want.Constant)
	}
	if got.Multiplier != want.Multiplier {
		t.Errorf("Multiplier = %v, want %v", got.Multiplier, want.Multiplier)
	}
	if got.Priority != want.Priority {
		t.Errorf("Priority = %v, want %v", got.Priority, want.Priority)
	}
}

func TestRule_Descriptor_Errors(t *testing.T) {
	_, resolve := testResolver(t)

	tests := []struct {
		name     string
		rule     Rule
		wantCode errors.Code
	}{
		{
			name:     "unknown factory",
			rule:     Rule{Target: "sidebar", Apply: "explode"},
			wantCode: errors.ErrCodeUnknownFactory,
		},
		{
			name:     "unknown relation",
			rule:     Rule{Target: "sidebar", Apply: "flush", Relation: "~="},
			wantCode: errors.ErrCodeInvalidRelation,
		},
		{
			name:     "unresolvable view",
			rule:     Rule{Target: "sidebar", Apply: "top", To: "ghost"},
			wantCode: errors.ErrCodeUnknownView,
		},
		{
			name:     "unknown attribute",
			rule:     Rule{Target: "sidebar", Apply: "top", ToAttr: "girth"},
			wantCode: errors.ErrCodeInvalidAttribute,
		},
		{
			name:     "none attribute",
			rule:     Rule{Target: "sidebar", Apply: "top", ToAttr: "none"},
			wantCode: errors.ErrCodeInvalidAttribute,
		},
		{
			// Unvalidated rules must not slip a zero multiplier through
			// to ScaledBy, where it would expand as scale 1.
			name:     "zero multiplier",
			rule:     Rule{Target: "sidebar", Apply: "width", ToAttr: "width", Multiplier: ptr(0)},
			wantCode: errors.ErrCodeInvalidRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rule.Descriptor(resolve)
			if err == nil {
				t.Fatal("Descriptor() = nil, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Descriptor() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestDocument_Descriptors(t *testing.T) {
	_, resolve := testResolver(t)

	doc := Document{
		Views: []ViewDecl{
			{ID: "window"},
			{ID: "sidebar", Container: "window"},
			{ID: "content", Container: "window"},
		},
		Rules: []Rule{
			{Target: "sidebar", Apply: "vertical"},
			{Target: "content", Apply: "flush"},
			{Target: "sidebar", Apply: "width", Constant: ptr(240)},
		},
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	groups, err := doc.Descriptors(resolve)
	if err != nil {
		t.Fatalf("Descriptors() error = %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("got groups for %d views, want 2", len(groups))
	}
	if len(groups["sidebar"]) != 2 {
		t.Fatalf("sidebar has %d descriptors, want 2", len(groups["sidebar"]))
	}
	if len(groups["content"]) != 1 {
		t.Fatalf("content has %d descriptors, want 1", len(groups["content"]))
	}

	// Rule order is preserved within a group.
	assertDescriptorsEqual(t, groups["sidebar"][0], layout.Vertical())
	assertDescriptorsEqual(t, groups["sidebar"][1], layout.Width().EqualToConstant(240))
}

func TestDocument_Descriptors_RuleError(t *testing.T) {
	_, resolve := testResolver(t)

	doc := Document{
		Rules: []Rule{
			{Target: "sidebar", Apply: "flush"},
			{Target: "sidebar", Apply: "explode"},
		},
	}

	_, err := doc.Descriptors(resolve)
	if !errors.Is(err, errors.ErrCodeUnknownFactory) {
		t.Errorf("Descriptors() error = %v, want UNKNOWN_FACTORY", err)
	}
}
