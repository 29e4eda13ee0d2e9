package core

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want func(n *Node) bool
	}{
		{"nil is absence", nil, func(n *Node) bool { return n == nil }},
		{"bool is absence", true, func(n *Node) bool { return n == nil }},
		{"string becomes text", "hi", func(n *Node) bool { return n.Kind == KindText && n.Text == "hi" }},
		{"int becomes text", 42, func(n *Node) bool { return n.Kind == KindText && n.Text == "42" }},
		{"float becomes text", 1.5, func(n *Node) bool { return n.Kind == KindText && n.Text == "1.5" }},
		{"node passes through", H("div", nil), func(n *Node) bool { return n.Kind == KindHost && n.Tag == "div" }},
		{"empty slice is absence", []any{}, func(n *Node) bool { return n == nil }},
		{"slice of absences is absence", []any{nil, false, true}, func(n *Node) bool { return n == nil }},
		{
			"slice becomes fragment",
			[]any{"a", H("b", nil)},
			func(n *Node) bool { return n.Kind == KindFragment && len(n.Children) == 2 },
		},
		{
			"nested slices flatten",
			[]any{"a", []any{"b", []any{"c"}}},
			func(n *Node) bool {
				return n.Kind == KindFragment && len(n.Children) == 3 && n.Children[2].Text == "c"
			},
		},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); !tt.want(got) {
			t.Errorf("%s: Normalize(%v) = %+v", tt.name, tt.in, got)
		}
	}
}

func TestFlatten_DropsAbsencesKeepsOrder(t *testing.T) {
	n := H("ul", nil,
		nil,
		"first",
		false,
		[]any{Text("second"), nil, "third"},
		42,
	)
	if len(n.Children) != 4 {
		t.Fatalf("child count = %d, want 4", len(n.Children))
	}
	want := []string{"first", "second", "third", "42"}
	for i, w := range want {
		if n.Children[i].Text != w {
			t.Errorf("child %d = %q, want %q", i, n.Children[i].Text, w)
		}
	}
}

func TestIdentical(t *testing.T) {
	p1, p2 := &Node{}, &Node{}
	s := []int{1}
	m := map[string]int{}
	f1 := func() {}
	f2 := func() {}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nils", nil, nil, true},
		{"nil vs value", nil, 1, false},
		{"equal ints", 1, 1, true},
		{"unequal ints", 1, 2, false},
		{"int vs int64", 1, int64(1), false},
		{"equal strings", "x", "x", true},
		{"same pointer", p1, p1, true},
		{"distinct pointers", p1, p2, false},
		{"same slice header", s, s, true},
		{"distinct slices same contents", []int{1}, []int{1}, false},
		{"same map", m, m, true},
		{"same func", f1, f1, true},
		{"distinct funcs", f1, f2, false},
	}
	for _, tt := range tests {
		if got := Identical(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Identical = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSameDeps_NilNeverMatches(t *testing.T) {
	if sameDeps(nil, nil) {
		t.Error("nil deps must never match")
	}
	if sameDeps([]any{1}, nil) || sameDeps(nil, []any{1}) {
		t.Error("nil deps must never match a list")
	}
	if !sameDeps([]any{}, []any{}) {
		t.Error("empty lists must match")
	}
	if !sameDeps([]any{1, "a"}, []any{1, "a"}) {
		t.Error("element-wise identical lists must match")
	}
	if sameDeps([]any{1, "a"}, []any{1, "b"}) {
		t.Error("differing element must not match")
	}
}
