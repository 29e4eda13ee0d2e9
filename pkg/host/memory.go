package host

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryNode is one node in a MemoryHost tree.
type MemoryNode struct {
	// Tag is the element tag; empty for text nodes.
	Tag string
	// Text is the content of a text node.
	Text string
	// IsText reports whether this is a text node.
	IsText bool
	// Props holds the element's current properties.
	Props map[string]any
	// Listeners holds the element's current event handlers by event name.
	Listeners map[string]EventHandler

	parent   *MemoryNode
	children []*MemoryNode
}

// Children returns the node's children in order.
func (n *MemoryNode) Children() []*MemoryNode {
	return n.children
}

// ParentNode returns the node's current parent, or nil if detached.
func (n *MemoryNode) ParentNode() *MemoryNode {
	return n.parent
}

// OpCounts records how many mutations of each kind a MemoryHost performed.
type OpCounts struct {
	CreateNode     int
	CreateText     int
	SetText        int
	SetProperty    int
	RemoveProperty int
	InsertBefore   int
	RemoveChild    int
	AddListener    int
	RemoveListener int
}

// Total returns the sum of all mutation counts.
func (c OpCounts) Total() int {
	return c.CreateNode + c.CreateText + c.SetText + c.SetProperty +
		c.RemoveProperty + c.InsertBefore + c.RemoveChild +
		c.AddListener + c.RemoveListener
}

// MemoryHost is a DOM-shaped in-memory render target. It implements the full
// capability set, counts every mutation it performs, and can serialize any
// subtree for assertions. It backs the tester, the showcase apps, and the
// engine's own tests.
type MemoryHost struct {
	ops OpCounts
}

// NewMemoryHost creates an empty in-memory render target.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{}
}

// Ops returns the mutation counts accumulated so far.
func (h *MemoryHost) Ops() OpCounts {
	return h.ops
}

// ResetOps zeroes the mutation counts.
func (h *MemoryHost) ResetOps() {
	h.ops = OpCounts{}
}

func (h *MemoryHost) CreateNode(tag string) NodeHandle {
	h.ops.CreateNode++
	return &MemoryNode{
		Tag:       tag,
		Props:     make(map[string]any),
		Listeners: make(map[string]EventHandler),
	}
}

func (h *MemoryHost) CreateText(text string) NodeHandle {
	h.ops.CreateText++
	return &MemoryNode{Text: text, IsText: true}
}

func (h *MemoryHost) SetText(node NodeHandle, text string) {
	n := node.(*MemoryNode)
	h.ops.SetText++
	n.Text = text
}

func (h *MemoryHost) SetProperty(node NodeHandle, name string, value any) {
	n := node.(*MemoryNode)
	h.ops.SetProperty++
	n.Props[name] = value
}

func (h *MemoryHost) RemoveProperty(node NodeHandle, name string) {
	n := node.(*MemoryNode)
	h.ops.RemoveProperty++
	delete(n.Props, name)
}

func (h *MemoryHost) InsertBefore(parent, node, anchor NodeHandle) {
	p := parent.(*MemoryNode)
	n := node.(*MemoryNode)
	h.ops.InsertBefore++

	if n.parent != nil {
		n.parent.detach(n)
	}

	if anchor != nil {
		a := anchor.(*MemoryNode)
		for i, c := range p.children {
			if c == a {
				p.children = append(p.children[:i], append([]*MemoryNode{n}, p.children[i:]...)...)
				n.parent = p
				return
			}
		}
		// Anchor no longer under parent; fall through to append.
	}
	p.children = append(p.children, n)
	n.parent = p
}

func (h *MemoryHost) RemoveChild(parent, node NodeHandle) {
	p := parent.(*MemoryNode)
	n := node.(*MemoryNode)
	if n.parent != p {
		return
	}
	h.ops.RemoveChild++
	p.detach(n)
}

func (h *MemoryHost) AddEventListener(node NodeHandle, event string, handler EventHandler) {
	n := node.(*MemoryNode)
	h.ops.AddListener++
	n.Listeners[event] = handler
}

func (h *MemoryHost) RemoveEventListener(node NodeHandle, event string) {
	n := node.(*MemoryNode)
	h.ops.RemoveListener++
	delete(n.Listeners, event)
}

func (h *MemoryHost) Parent(node NodeHandle) NodeHandle {
	n := node.(*MemoryNode)
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (h *MemoryHost) NextSibling(node NodeHandle) NodeHandle {
	n := node.(*MemoryNode)
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			if i+1 < len(siblings) {
				return siblings[i+1]
			}
			return nil
		}
	}
	return nil
}

// DispatchEvent invokes the handler registered for event on node, if any.
// Returns true if a handler ran.
func (h *MemoryHost) DispatchEvent(node NodeHandle, event string, data any) bool {
	n := node.(*MemoryNode)
	handler, ok := n.Listeners[event]
	if !ok || handler == nil {
		return false
	}
	handler(data)
	return true
}

func (n *MemoryNode) detach(child *MemoryNode) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// OuterHTML serializes a subtree in an HTML-like form for assertions.
// Properties are rendered sorted by name; function-valued properties and
// listeners are omitted.
func OuterHTML(node NodeHandle) string {
	var sb strings.Builder
	writeNode(&sb, node.(*MemoryNode))
	return sb.String()
}

// InnerHTML serializes the children of a subtree in order.
func InnerHTML(node NodeHandle) string {
	var sb strings.Builder
	for _, c := range node.(*MemoryNode).children {
		writeNode(&sb, c)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *MemoryNode) {
	if n.IsText {
		sb.WriteString(n.Text)
		return
	}
	sb.WriteString("<")
	sb.WriteString(n.Tag)
	names := make([]string, 0, len(n.Props))
	for name := range n.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sb, " %s=%q", name, fmt.Sprintf("%v", n.Props[name]))
	}
	sb.WriteString(">")
	for _, c := range n.children {
		writeNode(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">")
}
