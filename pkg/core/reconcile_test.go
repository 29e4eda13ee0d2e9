package core

import (
	"testing"

	"github.com/go-weft/weft/pkg/host"
)

func setup(t *testing.T, n *Node) (*Runtime, *host.MemoryHost, *host.MemoryNode) {
	t.Helper()
	h := host.NewMemoryHost()
	container := h.CreateNode("root")
	rt := Mount(h, container, n)
	t.Cleanup(rt.Unmount)
	return rt, h, container.(*host.MemoryNode)
}

func pump(rt *Runtime, n *Node) {
	rt.Update(n)
	rt.Flush()
}

func TestReconcile_MountBuildsTree(t *testing.T) {
	_, _, container := setup(t, H("div", Props{"id": "app"},
		H("span", nil, "one"),
		H("span", nil, "two"),
	))

	want := `<div id="app"><span>one</span><span>two</span></div>`
	if got := host.InnerHTML(container); got != want {
		t.Errorf("mounted tree = %s, want %s", got, want)
	}
}

func TestReconcile_UnchangedTreeIsIdempotent(t *testing.T) {
	tree := func() *Node {
		return H("div", Props{"id": "app"},
			H("span", Props{"class": "a"}, "one"),
			Fragment(H("em", nil, "two"), "three"),
		)
	}
	rt, h, _ := setup(t, tree())

	h.ResetOps()
	pump(rt, tree())

	if total := h.Ops().Total(); total != 0 {
		t.Errorf("second pass over unchanged tree performed %d mutations, want 0 (%+v)", total, h.Ops())
	}
}

func TestReconcile_TextUpdatesInPlace(t *testing.T) {
	rt, h, container := setup(t, H("div", nil, "hello"))

	h.ResetOps()
	pump(rt, H("div", nil, "world"))

	ops := h.Ops()
	if ops.SetText != 1 {
		t.Errorf("SetText = %d, want 1", ops.SetText)
	}
	if ops.CreateText != 0 || ops.InsertBefore != 0 || ops.RemoveChild != 0 {
		t.Errorf("text update should not rebuild nodes: %+v", ops)
	}
	if got := host.InnerHTML(container); got != "<div>world</div>" {
		t.Errorf("tree = %s", got)
	}
}

func TestReconcile_PropDiffTouchesOnlyChanges(t *testing.T) {
	rt, h, _ := setup(t, H("div", Props{"id": "app", "class": "old", "title": "t"}))

	h.ResetOps()
	pump(rt, H("div", Props{"id": "app", "class": "new"}))

	ops := h.Ops()
	if ops.SetProperty != 1 {
		t.Errorf("SetProperty = %d, want 1 (class only)", ops.SetProperty)
	}
	if ops.RemoveProperty != 1 {
		t.Errorf("RemoveProperty = %d, want 1 (title only)", ops.RemoveProperty)
	}
}

func TestReconcile_TypeChangeRemounts(t *testing.T) {
	rt, h, container := setup(t, H("div", nil, H("span", nil, "x")))

	h.ResetOps()
	pump(rt, H("div", nil, H("em", nil, "x")))

	ops := h.Ops()
	if ops.RemoveChild != 1 {
		t.Errorf("RemoveChild = %d, want 1", ops.RemoveChild)
	}
	if ops.CreateNode != 1 {
		t.Errorf("CreateNode = %d, want 1", ops.CreateNode)
	}
	if got := host.InnerHTML(container); got != "<div><em>x</em></div>" {
		t.Errorf("tree = %s", got)
	}
}

func TestReconcile_KeyedReorderMovesOnlyDisplaced(t *testing.T) {
	list := func(keys ...string) *Node {
		children := make([]any, len(keys))
		for i, k := range keys {
			children[i] = HK("li", k, Props{"id": k})
		}
		return H("ul", nil, children...)
	}
	rt, h, container := setup(t, list("1", "2", "3"))

	h.ResetOps()
	pump(rt, list("3", "1", "2"))

	ops := h.Ops()
	if ops.InsertBefore != 1 {
		t.Errorf("InsertBefore = %d, want 1: only the displaced node moves", ops.InsertBefore)
	}
	if ops.CreateNode != 0 || ops.RemoveChild != 0 {
		t.Errorf("reorder should not rebuild nodes: %+v", ops)
	}

	ul := container.Children()[0]
	var order []string
	for _, c := range ul.Children() {
		order = append(order, c.Props["id"].(string))
	}
	if len(order) != 3 || order[0] != "3" || order[1] != "1" || order[2] != "2" {
		t.Errorf("child order = %v, want [3 1 2]", order)
	}
}

func TestReconcile_KeyedSwapEnds(t *testing.T) {
	list := func(keys ...string) *Node {
		children := make([]any, len(keys))
		for i, k := range keys {
			children[i] = HK("li", k, nil, k)
		}
		return H("ul", nil, children...)
	}
	rt, _, container := setup(t, list("a", "b", "c", "d"))

	pump(rt, list("d", "b", "c", "a"))

	want := "<ul><li>d</li><li>b</li><li>c</li><li>a</li></ul>"
	if got := host.InnerHTML(container); got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}
}

func TestReconcile_ChildRemovalDetaches(t *testing.T) {
	list := func(keys ...string) *Node {
		children := make([]any, len(keys))
		for i, k := range keys {
			children[i] = HK("li", k, nil, k)
		}
		return H("ul", nil, children...)
	}
	rt, h, container := setup(t, list("a", "b", "c"))

	h.ResetOps()
	pump(rt, list("a", "c"))

	if ops := h.Ops(); ops.RemoveChild != 1 {
		t.Errorf("RemoveChild = %d, want 1", ops.RemoveChild)
	}
	want := "<ul><li>a</li><li>c</li></ul>"
	if got := host.InnerHTML(container); got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}
}

func TestReconcile_FragmentChildrenInsertBeforeFollowingSibling(t *testing.T) {
	tree := func(items ...string) *Node {
		frag := make([]any, len(items))
		for i, s := range items {
			frag[i] = s
		}
		return H("div", nil, Fragment(frag...), H("footer", nil, "end"))
	}
	rt, _, container := setup(t, tree("a", "b"))

	pump(rt, tree("a", "b", "c"))

	div := container.Children()[0]
	kids := div.Children()
	if len(kids) != 4 {
		t.Fatalf("child count = %d, want 4", len(kids))
	}
	if kids[2].Text != "c" {
		t.Errorf("third child = %q, want c", kids[2].Text)
	}
	if kids[3].Tag != "footer" {
		t.Errorf("last child tag = %q, want footer (fragment must insert before it)", kids[3].Tag)
	}
}

func TestReconcile_NilRenderOutputUnmountsChild(t *testing.T) {
	show := func(ctx *Ctx) any {
		if ctx.Prop("on").(bool) {
			return H("span", nil, "visible")
		}
		return nil
	}
	rt, _, container := setup(t, H("div", nil, F(show, Props{"on": true})))

	if got := host.InnerHTML(container); got != "<div><span>visible</span></div>" {
		t.Fatalf("tree = %s", got)
	}

	pump(rt, H("div", nil, F(show, Props{"on": false})))
	if got := host.InnerHTML(container); got != "<div></div>" {
		t.Errorf("tree = %s, want <div></div>", got)
	}
}

func TestReconcile_EventHandlersBindAndFire(t *testing.T) {
	clicks := 0
	onClick := func(any) { clicks++ }
	rt, h, container := setup(t, H("button", Props{"onClick": onClick, "label": "go"}))

	button := container.Children()[0]
	if _, ok := button.Props["onClick"]; ok {
		t.Error("handler prop must not land as a plain property")
	}
	if !h.DispatchEvent(button, "click", nil) {
		t.Fatal("no click listener registered")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	pump(rt, H("button", Props{"label": "go"}))
	if h.DispatchEvent(button, "click", nil) {
		t.Error("listener must be removed when the prop disappears")
	}
}

func TestUnmount_LeavesNoResidualNodes(t *testing.T) {
	h := host.NewMemoryHost()
	container := h.CreateNode("root")
	rt := Mount(h, container, H("div", nil,
		Fragment(H("span", nil, "a"), H("span", nil, "b")),
		H("p", nil, "c"),
	))

	rt.Unmount()

	if n := len(container.(*host.MemoryNode).Children()); n != 0 {
		t.Errorf("container has %d residual nodes after unmount, want 0", n)
	}
}
