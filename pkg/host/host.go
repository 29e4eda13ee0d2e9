// Package host defines the render-target capability set consumed by the
// reconciler, plus an in-memory reference implementation.
//
// The engine uses only this capability set, never target specifics beyond
// it, so alternate render targets (a real DOM bridge, a terminal tree, a
// test recorder) remain possible. Handles are opaque to the engine and are
// compared by identity only.
package host

// NodeHandle is an opaque reference to one node owned by the render target.
// Implementations return pointer-shaped handles; the engine compares them
// with == and treats nil as "no node".
type NodeHandle any

// EventHandler receives event payloads delivered by the render target.
type EventHandler func(data any)

// Host is the capability set a render target must provide.
type Host interface {
	// CreateNode creates a detached element node for the given tag.
	CreateNode(tag string) NodeHandle

	// CreateText creates a detached text node with the given content.
	CreateText(text string) NodeHandle

	// SetText replaces the content of a text node.
	SetText(node NodeHandle, text string)

	// SetProperty sets a named property on an element node.
	SetProperty(node NodeHandle, name string, value any)

	// RemoveProperty removes a named property from an element node.
	RemoveProperty(node NodeHandle, name string)

	// InsertBefore inserts node under parent immediately before anchor.
	// A nil anchor appends at the end. Inserting an already-attached node
	// moves it.
	InsertBefore(parent, node, anchor NodeHandle)

	// RemoveChild detaches node from parent. If node is not currently a
	// child of parent the call is a no-op.
	RemoveChild(parent, node NodeHandle)

	// AddEventListener registers the handler for an event name on a node,
	// replacing any previous handler for that name.
	AddEventListener(node NodeHandle, event string, handler EventHandler)

	// RemoveEventListener removes the handler for an event name on a node.
	RemoveEventListener(node NodeHandle, event string)

	// Parent returns the current parent of node, or nil if detached.
	// The reconciler consults this before removing or moving a node so an
	// already-detached node is skipped rather than corrupting the tree.
	Parent(node NodeHandle) NodeHandle

	// NextSibling returns the node immediately following node under its
	// current parent, or nil if it is the last child or detached. Used to
	// bound move operations to nodes that are actually displaced.
	NextSibling(node NodeHandle) NodeHandle
}
