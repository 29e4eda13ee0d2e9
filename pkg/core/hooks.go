package core

// UseState returns the persisted value for this hook position and a setter
// for it. The initial value is stored on first render only.
//
// Example:
//
//	func counter(ctx *core.Ctx) any {
//	    count, setCount := core.UseState(ctx, 0)
//	    return core.H("button", core.Props{
//	        "onClick": func(any) { setCount.Update(func(n int) int { return n + 1 }) },
//	    }, core.Textf("%d", count))
//	}
func UseState[T any](ctx *Ctx, initial T) (T, *Setter[T]) {
	return UseStateLazy(ctx, func() T { return initial })
}

// UseStateLazy is UseState with a lazily computed initial value: init runs
// only on the component's first render at this position.
func UseStateLazy[T any](ctx *Ctx, init func() T) (T, *Setter[T]) {
	slot, created := ctx.nextSlot(slotState)
	if created {
		slot.value = init()
	}
	setter := &Setter[T]{rt: ctx.rt, rec: ctx.rec, slot: slot, inst: ctx.inst}
	return slot.value.(T), setter
}

// Setter commits new values for one state slot and schedules renders. It
// outlives the render window: event handlers and goroutine callbacks may
// hold it. Calls after the owning component is unmounted are no-ops.
type Setter[T any] struct {
	rt   *Runtime
	rec  *stateRecord
	slot *hookSlot
	inst *Instance
}

// Set commits a new value and requests a render. A value identical to the
// current one (see Identical) skips the commit and the render entirely.
func (s *Setter[T]) Set(value T) {
	if !s.rec.alive {
		return
	}
	if Identical(s.slot.value, value) {
		return
	}
	s.slot.value = value
	s.inst.markDirtyUp()
	s.rt.scheduleRender()
}

// Update commits the result of applying fn to the current value.
func (s *Setter[T]) Update(fn func(T) T) {
	if !s.rec.alive {
		return
	}
	s.Set(fn(s.slot.value.(T)))
}

// UseEffect registers a side effect to run after the current render pass
// commits. With a nil deps list the effect re-runs every render; otherwise
// it re-runs only when an element of deps is not identical to those of the
// effect's last run. Deps are committed when the queued run flushes, not
// when it is queued: a render pass that supersedes a pass with runs still
// queued sees the un-flushed deps as changed and re-queues them, so a dep
// change is never lost to coalescing. On re-run the previous cleanup
// executes first. Effects never run inline: they are queued and flushed
// after the pass's render-target mutations are fully applied.
func UseEffect(ctx *Ctx, effect func() Cleanup, deps []any) {
	slot, created := ctx.nextSlot(slotEffect)
	if created || !sameDeps(slot.deps, deps) {
		slot.effect = effect
		slot.pendingDeps = deps
		ctx.rt.enqueueEffect(ctx.rec, slot)
	}
}

// UseMemo returns a value recomputed only when deps change, persisted
// across renders at this hook position. A nil deps list recomputes every
// render.
func UseMemo[T any](ctx *Ctx, compute func() T, deps []any) T {
	slot, created := ctx.nextSlot(slotMemo)
	if created || !sameDeps(slot.deps, deps) {
		slot.deps = deps
		slot.value = compute()
	}
	return slot.value.(T)
}

// UseCallback returns fn memoized over deps, so handlers keep a stable
// identity while their dependencies are unchanged.
func UseCallback[F any](ctx *Ctx, fn F, deps []any) F {
	return UseMemo(ctx, func() F { return fn }, deps)
}

// UseRef returns a pointer that is stable for the component's lifetime,
// initialized once. Writes through it never schedule a render.
func UseRef[T any](ctx *Ctx, initial T) *T {
	slot, created := ctx.nextSlot(slotMemo)
	if created {
		v := initial
		slot.value = &v
		slot.deps = []any{}
	}
	return slot.value.(*T)
}
