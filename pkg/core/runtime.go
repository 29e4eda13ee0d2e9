package core

import (
	"sync"
	"time"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/host"
)

// Runtime owns one mounted root: its hook/state store, its instance tree,
// and the work queue that coalesces render requests and defers effect
// execution. The store and the instance tree belong exclusively to the
// runtime between passes; all state changes flow through hook setters or
// through reconciliation.
//
// The runtime is single-threaded and cooperative. Everything except
// Dispatch must run on the goroutine that drives Flush/Tick.
type Runtime struct {
	host      host.Host
	container host.NodeHandle
	store     *store
	rootNode  *Node
	rootInst  *Instance

	mu    sync.Mutex
	queue []func()

	renderPending  bool
	pendingEffects []effectEntry
	active         []*Ctx
	unmounted      bool
}

type effectEntry struct {
	rec  *stateRecord
	slot *hookSlot
}

// Mount establishes node as the root under container and performs the
// first render synchronously, including the deferred effect flush.
func Mount(h host.Host, container host.NodeHandle, node *Node) *Runtime {
	rt := &Runtime{host: h, container: container, store: newStore(), rootNode: node}
	rt.scheduleRender()
	rt.Flush()
	return rt
}

// Update replaces the root description and schedules a render. The render
// runs on the next Flush or Tick.
func (rt *Runtime) Update(node *Node) {
	if rt.unmounted {
		return
	}
	rt.rootNode = node
	rt.scheduleRender()
}

// Unmount tears the tree down: every owned render-target node is released,
// every pending effect cleanup runs exactly once, and the store dies with
// the root. The runtime accepts no further work.
func (rt *Runtime) Unmount() {
	if rt.unmounted {
		return
	}
	rt.unmounted = true
	rt.mu.Lock()
	rt.queue = nil
	rt.mu.Unlock()
	rt.pendingEffects = nil
	if rt.rootInst != nil {
		rt.unmountInstance(rt.container, rt.rootInst, true)
		rt.rootInst = nil
	}
	rt.store.drop()
}

// Root returns the current root instance, or nil before the first render
// or after unmount.
func (rt *Runtime) Root() *Instance {
	return rt.rootInst
}

// Dispatch marshals fn onto the runtime's work queue. It is the only
// runtime entry point safe to call from other goroutines; the queued work
// runs on the driving goroutine's next Flush or Tick.
func (rt *Runtime) Dispatch(fn func()) {
	if fn == nil || rt.unmounted {
		return
	}
	rt.enqueue(fn)
}

// Pending reports whether queued work remains.
func (rt *Runtime) Pending() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.queue) > 0
}

// Tick runs one queued unit of work. Returns false when the queue is
// empty.
func (rt *Runtime) Tick() bool {
	rt.mu.Lock()
	if len(rt.queue) == 0 {
		rt.mu.Unlock()
		return false
	}
	fn := rt.queue[0]
	rt.queue = rt.queue[1:]
	rt.mu.Unlock()
	fn()
	return true
}

// Flush drains the work queue: pending renders, their effect flushes, and
// any renders those effects request, until the runtime is idle.
func (rt *Runtime) Flush() {
	for rt.Tick() {
	}
}

func (rt *Runtime) enqueue(fn func()) {
	rt.mu.Lock()
	rt.queue = append(rt.queue, fn)
	rt.mu.Unlock()
}

// scheduleRender coalesces render requests: while one is pending for this
// queue, further requests are no-ops. State updates issued from effects or
// event handlers land here and never recurse into the reconciler.
func (rt *Runtime) scheduleRender() {
	if rt.unmounted || rt.renderPending {
		return
	}
	rt.renderPending = true
	rt.enqueue(rt.renderPass)
}

// renderPass is one full top-down render: reset per-pass state, reconcile
// the root, collect unreachable hook state, then defer the effect flush as
// a separate unit of work so effects observe the committed tree.
func (rt *Runtime) renderPass() {
	if rt.unmounted {
		return
	}
	rt.renderPending = false
	rt.pendingEffects = nil
	rt.active = rt.active[:0]
	rt.store.beginPass()
	rt.rootInst = rt.reconcile(rt.container, rt.rootInst, rt.rootNode, nil, nil)
	rt.store.collect()
	if len(rt.pendingEffects) > 0 {
		rt.enqueue(rt.flushEffects)
	}
}

// activeCtx returns the context of the component currently rendering, or
// nil outside any invocation window.
func (rt *Runtime) activeCtx() *Ctx {
	if len(rt.active) == 0 {
		return nil
	}
	return rt.active[len(rt.active)-1]
}

func (rt *Runtime) enqueueEffect(rec *stateRecord, slot *hookSlot) {
	rt.pendingEffects = append(rt.pendingEffects, effectEntry{rec: rec, slot: slot})
}

// flushEffects drains the pending-effects queue in the order effects were
// enqueued during the pass. Each entry runs its previous cleanup first,
// then the body, storing the returned cleanup for next time. The entry's
// staged deps commit here, once the run actually happens. A panicking
// entry is isolated and reported; later entries still run.
func (rt *Runtime) flushEffects() {
	entries := rt.pendingEffects
	rt.pendingEffects = nil
	for _, e := range entries {
		if !e.rec.alive {
			continue
		}
		if e.slot.cleanup != nil {
			c := e.slot.cleanup
			e.slot.cleanup = nil
			runIsolated(e.rec.name, c)
		}
		e.slot.deps = e.slot.pendingDeps
		rt.runEffectBody(e)
	}
}

func (rt *Runtime) runEffectBody(e effectEntry) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportEffectError(&errors.EffectError{
				Component:  e.rec.name,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	if e.slot.effect == nil {
		return
	}
	if c := e.slot.effect(); c != nil {
		e.slot.cleanup = c
	}
}

// runIsolated runs an effect cleanup with panic isolation.
func runIsolated(component string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportEffectError(&errors.EffectError{
				Component:  component,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	fn()
}
