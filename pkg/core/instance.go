package core

import "github.com/go-weft/weft/pkg/host"

// Instance is the durable, mutable record of one mounted tree position.
// It is created on first mount, mutated in place on every reconciliation
// that matches its type and key, and destroyed on unmount. Host and text
// instances exclusively own their render-target node and are responsible
// for releasing it.
type Instance struct {
	kind     NodeKind
	node     *Node           // last-applied description
	handle   host.NodeHandle // owned node; KindHost and KindText only
	children []*Instance     // positional correspondence with node.Children
	key      string

	parent  *Instance
	stateID int64 // hook-state token; KindComponent only

	// subtreeDirty is set on an instance and all its ancestors when state
	// under it changes, and cleared as the reconciler visits. Memoized
	// components skip their update only while this is clear.
	subtreeDirty bool
}

// Kind returns the instance's node kind.
func (in *Instance) Kind() NodeKind {
	return in.kind
}

// Key returns the instance's sibling-scoped key, or "" if unkeyed.
func (in *Instance) Key() string {
	return in.key
}

// Handle returns the render-target node owned by a host or text instance,
// or nil for fragments and components.
func (in *Instance) Handle() host.NodeHandle {
	return in.handle
}

// markDirtyUp flags this instance and every ancestor as containing changed
// state. Stops early once it meets an already-flagged ancestor.
func (in *Instance) markDirtyUp() {
	for p := in; p != nil && !p.subtreeDirty; p = p.parent {
		p.subtreeDirty = true
	}
}

// firstHost returns the leftmost render-target node inside this instance's
// subtree, or nil if the subtree currently renders nothing.
func (in *Instance) firstHost() host.NodeHandle {
	if in == nil {
		return nil
	}
	if in.handle != nil {
		return in.handle
	}
	for _, c := range in.children {
		if h := c.firstHost(); h != nil {
			return h
		}
	}
	return nil
}

// collectHosts appends, in order, every top-level render-target node owned
// by this instance's subtree: the nodes that live directly under the
// instance's container and must move together when the instance moves.
func (in *Instance) collectHosts(dst []host.NodeHandle) []host.NodeHandle {
	if in == nil {
		return dst
	}
	if in.handle != nil {
		return append(dst, in.handle)
	}
	for _, c := range in.children {
		dst = c.collectHosts(dst)
	}
	return dst
}
