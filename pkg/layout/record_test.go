package layout

import "testing"

func TestRecord_EnableDisable(t *testing.T) {
	r := &Record{Subject: &stubNode{id: "a"}, Attr: AttrWidth}

	if !r.Enabled() {
		t.Fatal("Enabled() = false, want records to start enabled")
	}
	r.Disable()
	if r.Enabled() {
		t.Error("Enabled() = true after Disable()")
	}
	r.Enable()
	if !r.Enabled() {
		t.Error("Enabled() = false after Enable()")
	}
}

func TestRecord_String(t *testing.T) {
	a := &stubNode{id: "badge"}
	b := &stubNode{id: "panel"}

	tests := []struct {
		name string
		r    *Record
		want string
	}{
		{
			name: "constant only",
			r:    &Record{Subject: a, Attr: AttrHeight, TargetAttr: AttrNone, Multiplier: 1, Constant: 44},
			want: "badge.height == 44",
		},
		{
			name: "plain pair",
			r:    &Record{Subject: a, Attr: AttrLeft, Target: b, TargetAttr: AttrLeft, Multiplier: 1},
			want: "badge.left == panel.left",
		},
		{
			name: "scaled offset with priority",
			r: &Record{
				Subject: a, Attr: AttrWidth, Relation: RelationLessOrEqual,
				Target: b, TargetAttr: AttrWidth,
				Multiplier: 0.5, Constant: 12, Priority: PriorityHigh,
			},
			want: "badge.width <= panel.width * 0.5 + 12 @750",
		},
		{
			name: "negative constant",
			r: &Record{
				Subject: a, Attr: AttrBottom, Relation: RelationGreaterOrEqual,
				Target: b, TargetAttr: AttrBottom, Multiplier: 1, Constant: -8,
			},
			want: "badge.bottom >= panel.bottom - 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_ConstantOnly(t *testing.T) {
	r := &Record{Subject: &stubNode{id: "a"}, Attr: AttrWidth, TargetAttr: AttrNone}
	if !r.ConstantOnly() {
		t.Error("ConstantOnly() = false for AttrNone target")
	}

	r = &Record{Subject: &stubNode{id: "a"}, Attr: AttrWidth, Target: &stubNode{id: "b"}, TargetAttr: AttrWidth}
	if r.ConstantOnly() {
		t.Error("ConstantOnly() = true for attribute pair")
	}
}
