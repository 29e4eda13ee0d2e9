package core

import (
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/host"
)

// reconcile diffs one tree position: the previously mounted instance (or
// nil) against the next description (or nil), under parent in the render
// target, inserting new nodes before anchor. It returns the instance now
// occupying the position, or nil.
//
// Dispatch order: absent description unmounts; absent instance mounts; a
// type or key mismatch remounts as a fresh identity (hook state does not
// carry over); otherwise the instance is updated in place, preserving its
// object identity and therefore its hook state.
func (rt *Runtime) reconcile(parent host.NodeHandle, prev *Instance, next *Node, owner *Instance, anchor host.NodeHandle) *Instance {
	if next == nil {
		if prev != nil {
			rt.unmountInstance(parent, prev, true)
		}
		return nil
	}
	if prev == nil {
		return rt.mountInstance(parent, next, owner, anchor)
	}
	if !canUpdate(prev, next) {
		rt.unmountInstance(parent, prev, true)
		return rt.mountInstance(parent, next, owner, anchor)
	}

	switch prev.kind {
	case KindText:
		rt.updateText(prev, next)
	case KindHost:
		rt.updateHost(prev, next)
	case KindFragment:
		rt.updateFragment(parent, prev, next, anchor)
	case KindComponent:
		rt.updateComponent(parent, prev, next, anchor)
	}
	return prev
}

// canUpdate reports whether an instance can absorb the next description in
// place. A false result forces a remount under a fresh identity.
func canUpdate(prev *Instance, next *Node) bool {
	return prev.key == next.Key && sameShape(prev, next)
}

// sameShape reports whether an instance and a description are of the same
// type, ignoring keys.
func sameShape(prev *Instance, next *Node) bool {
	if prev.kind != next.Kind {
		return false
	}
	switch next.Kind {
	case KindHost:
		return prev.node.Tag == next.Tag
	case KindComponent:
		return componentPointer(prev.node.Render) == componentPointer(next.Render)
	}
	return true
}

func (rt *Runtime) mountInstance(parent host.NodeHandle, n *Node, owner *Instance, anchor host.NodeHandle) *Instance {
	inst := &Instance{kind: n.Kind, node: n, key: n.Key, parent: owner}

	switch n.Kind {
	case KindText:
		inst.handle = rt.host.CreateText(n.Text)
		rt.host.InsertBefore(parent, inst.handle, anchor)

	case KindHost:
		handle := rt.host.CreateNode(n.Tag)
		inst.handle = handle
		ApplyProps(rt.host, handle, nil, n.Props)
		inst.children = make([]*Instance, len(n.Children))
		for i, child := range n.Children {
			inst.children[i] = rt.mountInstance(handle, child, inst, nil)
		}
		rt.host.InsertBefore(parent, handle, anchor)

	case KindFragment:
		inst.children = make([]*Instance, len(n.Children))
		for i, child := range n.Children {
			inst.children[i] = rt.mountInstance(parent, child, inst, anchor)
		}

	case KindComponent:
		rec := rt.store.alloc(componentName(n.Render))
		inst.stateID = rec.id
		rt.store.markVisited(rec.id)
		child := rt.renderComponent(inst, rec)
		if childInst := rt.reconcile(parent, nil, child, inst, anchor); childInst != nil {
			inst.children = []*Instance{childInst}
		}
	}
	return inst
}

// unmountInstance releases everything a subtree owns: its render-target
// nodes (top-most nodes detached from parent, with an already-detached
// guard), then, leaf-first, every pending effect cleanup, then the hook
// state registrations.
func (rt *Runtime) unmountInstance(parent host.NodeHandle, inst *Instance, removeNodes bool) {
	switch inst.kind {
	case KindText, KindHost:
		if removeNodes && inst.handle != nil {
			if rt.host.Parent(inst.handle) == parent {
				rt.host.RemoveChild(parent, inst.handle)
			}
		}
		// Descendant nodes leave the target with their subtree root.
		for _, c := range inst.children {
			rt.unmountInstance(inst.handle, c, false)
		}

	case KindFragment:
		for _, c := range inst.children {
			rt.unmountInstance(parent, c, removeNodes)
		}

	case KindComponent:
		for _, c := range inst.children {
			rt.unmountInstance(parent, c, removeNodes)
		}
		rt.store.release(rt.store.records[inst.stateID])
	}
}

func (rt *Runtime) updateText(prev *Instance, next *Node) {
	prev.subtreeDirty = false
	if prev.node.Text != next.Text {
		rt.host.SetText(prev.handle, next.Text)
	}
	prev.node = next
}

func (rt *Runtime) updateHost(prev *Instance, next *Node) {
	prev.subtreeDirty = false
	ApplyProps(rt.host, prev.handle, prev.node.Props, next.Props)
	prev.node = next
	rt.reconcileChildren(prev.handle, prev, next.Children, nil)
}

func (rt *Runtime) updateFragment(parent host.NodeHandle, prev *Instance, next *Node, anchor host.NodeHandle) {
	prev.subtreeDirty = false
	prev.node = next
	rt.reconcileChildren(parent, prev, next.Children, anchor)
}

func (rt *Runtime) updateComponent(parent host.NodeHandle, prev *Instance, next *Node, anchor host.NodeHandle) {
	rec := rt.store.records[prev.stateID]
	rt.store.markVisited(prev.stateID)

	if next.memo && !prev.subtreeDirty &&
		len(prev.node.Children) == 0 && len(next.Children) == 0 &&
		sameProps(prev.node.Props, next.Props) {
		// Unchanged inputs and no state change below: keep the rendered
		// subtree verbatim. Descendant identities stay reachable so the
		// pass-end collection does not purge their state.
		prev.node = next
		rt.markReachable(prev)
		return
	}

	prev.subtreeDirty = false
	prev.node = next
	child := rt.renderComponent(prev, rec)

	var prevChild *Instance
	if len(prev.children) > 0 {
		prevChild = prev.children[0]
	}
	if childInst := rt.reconcile(parent, prevChild, child, prev, anchor); childInst != nil {
		prev.children = []*Instance{childInst}
	} else {
		prev.children = nil
	}
}

// renderComponent invokes the component function exactly once: cursor
// zeroed for the call and restored after, identity marked reachable, the
// context armed only for the synchronous invocation window. The result is
// normalized for reconciliation.
func (rt *Runtime) renderComponent(inst *Instance, rec *stateRecord) *Node {
	ctx := &Ctx{rt: rt, inst: inst, rec: rec}
	saved := rec.cursor
	rec.cursor = 0
	rt.active = append(rt.active, ctx)
	ctx.armed = true

	out, panicked := rt.safeRender(rec.name, func() any {
		return inst.node.Render(ctx)
	})

	ctx.armed = false
	rt.active = rt.active[:len(rt.active)-1]
	used := rec.cursor
	rec.cursor = saved

	if !panicked && used < len(rec.slots) {
		// Fewer hook calls than the slots recorded by an earlier render:
		// positional slots would silently go stale, so this is reported
		// like any other order violation.
		errors.ReportRenderError(&errors.RenderError{
			Component: rec.name,
			Err: &errors.HookOrderError{
				Component: rec.name,
				Index:     used,
				Want:      rec.slots[used].kind.String(),
			},
			Timestamp: time.Now(),
		})
	}
	if panicked {
		return nil
	}
	return Normalize(out)
}

// safeRender executes a component function with panic recovery. A panic is
// reported as a structured RenderError and the component renders nothing
// for this pass.
func (rt *Runtime) safeRender(component string, fn func() any) (out any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			renderErr := &errors.RenderError{
				Component:  component,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			if hookErr, ok := r.(*errors.HookOrderError); ok {
				renderErr.Err = hookErr
			} else {
				renderErr.Recovered = r
			}
			errors.ReportRenderError(renderErr)
		}
	}()
	return fn(), false
}

// markReachable marks every component identity in a subtree as visited
// this pass without re-rendering it.
func (rt *Runtime) markReachable(inst *Instance) {
	if inst.kind == KindComponent {
		rt.store.markVisited(inst.stateID)
	}
	for _, c := range inst.children {
		rt.markReachable(c)
	}
}

func componentName(c Component) string {
	if c == nil {
		return "<nil>"
	}
	name := runtime.FuncForPC(reflect.ValueOf(c).Pointer()).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
