package core

import (
	"github.com/go-weft/weft/pkg/errors"
)

// Ctx is the build context passed to a component function. It is the
// component's window into its props, children, and hook state, and is only
// valid during the component's synchronous invocation: calling hooks on a
// Ctx outside that window panics with a HookOrderError, which the engine
// recovers and reports.
type Ctx struct {
	rt    *Runtime
	inst  *Instance
	rec   *stateRecord
	armed bool
}

// Props returns the props the component was rendered with. Nil when the
// node carried none.
func (c *Ctx) Props() Props {
	return c.inst.node.Props
}

// Prop returns one prop value, or nil if absent.
func (c *Ctx) Prop(name string) any {
	return c.inst.node.Props[name]
}

// Children returns the child nodes passed to the component.
func (c *Ctx) Children() []*Node {
	return c.inst.node.Children
}

// Key returns the component node's key, or "" if unkeyed.
func (c *Ctx) Key() string {
	return c.inst.key
}

// Dispatch marshals fn onto the runtime's work queue. Safe to call from
// any goroutine; the queue is drained by the embedder's Flush calls.
func (c *Ctx) Dispatch(fn func()) {
	c.rt.Dispatch(fn)
}

// nextSlot returns the hook slot at the current cursor, creating it on
// first render, and advances the cursor. It enforces hook discipline:
// slots are positional, so a call of the wrong kind at a cursor position
// means the component's hook order changed between renders.
func (c *Ctx) nextSlot(kind slotKind) (slot *hookSlot, created bool) {
	if !c.armed || c.rt.activeCtx() != c {
		panic(&errors.HookOrderError{
			Component: c.rec.name,
			Index:     c.rec.cursor,
			Got:       kind.String(),
		})
	}
	rec := c.rec
	if rec.cursor < len(rec.slots) {
		slot = rec.slots[rec.cursor]
		if slot.kind != kind {
			panic(&errors.HookOrderError{
				Component: rec.name,
				Index:     rec.cursor,
				Got:       kind.String(),
				Want:      slot.kind.String(),
			})
		}
		rec.cursor++
		return slot, false
	}
	slot = &hookSlot{kind: kind}
	rec.slots = append(rec.slots, slot)
	rec.cursor++
	return slot, true
}
