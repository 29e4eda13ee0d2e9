package host

import "testing"

func TestMemoryHost_InsertBefore(t *testing.T) {
	h := NewMemoryHost()
	parent := h.CreateNode("div").(*MemoryNode)
	a := h.CreateNode("a")
	b := h.CreateNode("b")
	c := h.CreateNode("c")

	h.InsertBefore(parent, a, nil)
	h.InsertBefore(parent, c, nil)
	h.InsertBefore(parent, b, c)

	got := parent.Children()
	if len(got) != 3 || got[0].Tag != "a" || got[1].Tag != "b" || got[2].Tag != "c" {
		t.Errorf("child order = %v", tags(got))
	}
}

func TestMemoryHost_InsertBeforeMovesAttachedNode(t *testing.T) {
	h := NewMemoryHost()
	parent := h.CreateNode("div").(*MemoryNode)
	a := h.CreateNode("a")
	b := h.CreateNode("b")
	h.InsertBefore(parent, a, nil)
	h.InsertBefore(parent, b, nil)

	// Re-inserting an attached node detaches it first.
	h.InsertBefore(parent, b, a)

	got := parent.Children()
	if len(got) != 2 || got[0].Tag != "b" || got[1].Tag != "a" {
		t.Errorf("child order = %v, want [b a]", tags(got))
	}
}

func TestMemoryHost_InsertBeforeMissingAnchorAppends(t *testing.T) {
	h := NewMemoryHost()
	parent := h.CreateNode("div").(*MemoryNode)
	a := h.CreateNode("a")
	stray := h.CreateNode("stray")

	h.InsertBefore(parent, a, stray)

	got := parent.Children()
	if len(got) != 1 || got[0].Tag != "a" {
		t.Errorf("children = %v, want [a]", tags(got))
	}
}

func TestMemoryHost_RemoveChildOfOtherParentIsNoOp(t *testing.T) {
	h := NewMemoryHost()
	p1 := h.CreateNode("div")
	p2 := h.CreateNode("div")
	a := h.CreateNode("a")
	h.InsertBefore(p1, a, nil)

	h.RemoveChild(p2, a)

	if a.(*MemoryNode).ParentNode() != p1 {
		t.Error("node must stay under its actual parent")
	}
	if h.Ops().RemoveChild != 0 {
		t.Error("a no-op removal must not count as a mutation")
	}
}

func TestMemoryHost_NextSibling(t *testing.T) {
	h := NewMemoryHost()
	parent := h.CreateNode("div")
	a := h.CreateNode("a")
	b := h.CreateNode("b")
	h.InsertBefore(parent, a, nil)
	h.InsertBefore(parent, b, nil)

	if got := h.NextSibling(a); got != b {
		t.Errorf("NextSibling(a) = %v, want b", got)
	}
	if got := h.NextSibling(b); got != nil {
		t.Errorf("NextSibling(b) = %v, want nil", got)
	}
	if got := h.Parent(a); got != parent {
		t.Errorf("Parent(a) = %v, want parent", got)
	}
}

func TestMemoryHost_Listeners(t *testing.T) {
	h := NewMemoryHost()
	btn := h.CreateNode("button")

	fired := 0
	h.AddEventListener(btn, "click", func(any) { fired++ })
	if !h.DispatchEvent(btn, "click", nil) {
		t.Fatal("expected a handler to run")
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}

	h.RemoveEventListener(btn, "click")
	if h.DispatchEvent(btn, "click", nil) {
		t.Error("removed handler must not run")
	}
}

func TestMemoryHost_OpCounts(t *testing.T) {
	h := NewMemoryHost()
	parent := h.CreateNode("div")
	text := h.CreateText("hi")
	h.InsertBefore(parent, text, nil)
	h.SetText(text, "bye")
	h.SetProperty(parent, "id", "x")
	h.RemoveProperty(parent, "id")

	ops := h.Ops()
	if ops.CreateNode != 1 || ops.CreateText != 1 || ops.InsertBefore != 1 ||
		ops.SetText != 1 || ops.SetProperty != 1 || ops.RemoveProperty != 1 {
		t.Errorf("ops = %+v", ops)
	}
	if ops.Total() != 6 {
		t.Errorf("Total = %d, want 6", ops.Total())
	}

	h.ResetOps()
	if h.Ops().Total() != 0 {
		t.Error("ResetOps must zero the counts")
	}
}

func TestOuterHTML(t *testing.T) {
	h := NewMemoryHost()
	div := h.CreateNode("div")
	h.SetProperty(div, "id", "app")
	h.SetProperty(div, "class", "main")
	span := h.CreateNode("span")
	h.InsertBefore(div, span, nil)
	h.InsertBefore(span, h.CreateText("hi"), nil)

	want := `<div class="main" id="app"><span>hi</span></div>`
	if got := OuterHTML(div); got != want {
		t.Errorf("OuterHTML = %s, want %s", got, want)
	}
	if got := InnerHTML(div); got != "<span>hi</span>" {
		t.Errorf("InnerHTML = %s", got)
	}
}

func tags(nodes []*MemoryNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Tag
	}
	return out
}
