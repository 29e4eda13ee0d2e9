// Package core provides the reconciliation engine and its hook/state
// store.
//
// This package defines the foundational types for building reactive trees:
// Node, Component, Instance, and Runtime. It follows a declarative model
// where component functions describe what the tree should look like, and
// the engine applies the minimal set of render-target mutations to match.
//
// # Core Types
//
// Node is an immutable description of one tree position, produced fresh on
// every render. Nodes are lightweight and can be created frequently
// without performance concerns; the H, Text, Fragment, and F constructors
// build them.
//
// Instance is the durable record of a Node mounted at a particular
// location. Instances manage lifecycle and identity across renders; they
// are internal to the engine and surface only for inspection.
//
// Runtime owns one mounted root: Mount establishes it, Update replaces the
// root description, Flush drives queued renders and effect flushes, and
// Unmount tears everything down.
//
// # Components and Hooks
//
// A Component is a function from a build context to render output:
//
//	func counter(ctx *core.Ctx) any {
//	    count, setCount := core.UseState(ctx, 0)
//	    core.UseEffect(ctx, func() core.Cleanup {
//	        log.Printf("count is now %d", count)
//	        return nil
//	    }, []any{count})
//	    return core.H("button", core.Props{
//	        "onClick": func(any) { setCount.Update(func(n int) int { return n + 1 }) },
//	    }, core.Textf("%d", count))
//	}
//
// Hook state is persisted per component identity and enumerated by call
// order, so a component must call its hooks in the same order and count on
// every render. Violations are detected by slot kind tagging and reported
// as HookOrderError rather than silently reinterpreting state.
//
// # Scheduling
//
// Setters coalesce render requests: any number of state updates within one
// tick produce a single render pass. Effects never run during a pass; they
// are flushed afterwards as a separate unit of work, so they always
// observe the committed tree. The runtime is single-threaded and
// cooperative; use Runtime.Dispatch (or Ctx.Dispatch) to marshal work in
// from other goroutines.
package core
