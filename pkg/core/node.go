package core

import "fmt"

// NodeKind identifies what a Node describes.
type NodeKind int

const (
	// KindHost describes an element node in the render target.
	KindHost NodeKind = iota
	// KindText describes a text node.
	KindText
	// KindFragment groups children without a node of its own.
	KindFragment
	// KindComponent describes a component function invocation.
	KindComponent
)

func (k NodeKind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindText:
		return "text"
	case KindFragment:
		return "fragment"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Props maps property names to values for one node. Values are compared by
// identity during diffing; handler props (names starting with "on") are
// routed to the render target's event-listener capability.
type Props map[string]any

// Component is a function that describes one piece of UI from its inputs.
// It is invoked once per render pass while mounted and must call hooks in
// the same order and count on every invocation.
type Component func(ctx *Ctx) any

// Node is an immutable description of one tree position, produced fresh on
// every render. Nodes carry no lifecycle; the durable record of a mounted
// position is an instance.
type Node struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind NodeKind
	// Tag is the host element tag (KindHost only).
	Tag string
	// Render is the component function (KindComponent only).
	Render Component
	// Key scopes identity among siblings; "" means unkeyed.
	Key string
	// Props holds the node's properties (KindHost and KindComponent).
	Props Props
	// Text is the content of a text node (KindText only).
	Text string
	// Children is the ordered child list (KindHost, KindFragment,
	// KindComponent).
	Children []*Node

	memo bool
}

// H describes a host element. Children may be *Node values, strings,
// numbers, nested slices, or nil/bool absences; they are normalized and
// flattened in order.
func H(tag string, props Props, children ...any) *Node {
	return &Node{Kind: KindHost, Tag: tag, Props: props, Children: flatten(children)}
}

// HK is H with a sibling-scoped key.
func HK(tag, key string, props Props, children ...any) *Node {
	n := H(tag, props, children...)
	n.Key = key
	return n
}

// Text describes a text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Textf describes a text node with Sprintf formatting.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups children without introducing a host node.
func Fragment(children ...any) *Node {
	return &Node{Kind: KindFragment, Children: flatten(children)}
}

// FragmentK is Fragment with a sibling-scoped key.
func FragmentK(key string, children ...any) *Node {
	n := Fragment(children...)
	n.Key = key
	return n
}

// F describes a component invocation.
func F(component Component, props Props, children ...any) *Node {
	return &Node{Kind: KindComponent, Render: component, Props: props, Children: flatten(children)}
}

// FK is F with a sibling-scoped key.
func FK(component Component, key string, props Props, children ...any) *Node {
	n := F(component, props, children...)
	n.Key = key
	return n
}

// Memo marks a component node as memoized: its update is skipped, keeping
// the previously rendered subtree, when its props are identity-equal to the
// previous render's and no state below it has changed. Only meaningful on
// KindComponent nodes without children.
func (n *Node) Memo() *Node {
	n.memo = true
	return n
}
