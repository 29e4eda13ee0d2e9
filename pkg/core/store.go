package core

// slotKind tags what a hook slot was created for. A later render whose call
// at the same cursor position is of a different kind is a contract
// violation and raises a HookOrderError instead of silently reinterpreting
// the slot's data.
type slotKind int

const (
	slotState slotKind = iota
	slotEffect
	slotMemo
)

func (k slotKind) String() string {
	switch k {
	case slotState:
		return "state"
	case slotEffect:
		return "effect"
	case slotMemo:
		return "memo"
	default:
		return "unknown"
	}
}

// Cleanup undoes an effect. Effects return nil when there is nothing to
// undo.
type Cleanup func()

// hookSlot is one persisted unit of state for one hook call at one
// identity token. Slots are enumerated by call order, not by name.
type hookSlot struct {
	kind slotKind

	// state and memo slots
	value any

	// effect and memo slots
	deps []any

	// effect slots
	pendingDeps []any          // deps of the queued run, committed at flush
	effect      func() Cleanup // body captured by the most recent render
	cleanup     Cleanup        // cleanup returned by the last run, if any
}

// stateRecord holds the ordered hook slots for one component identity.
type stateRecord struct {
	id     int64
	slots  []*hookSlot
	cursor int
	alive  bool
	name   string // component name, for error reports
}

// store is the hook/state arena for one runtime. Records are addressed by
// a stable integer token allocated at component mount; the instance tree
// holds the token, so state follows an instance wherever reconciliation
// moves it. The store lives exactly as long as its runtime's mounted root.
type store struct {
	nextID  int64
	records map[int64]*stateRecord
	visited map[int64]bool
}

func newStore() *store {
	return &store{
		records: make(map[int64]*stateRecord),
		visited: make(map[int64]bool),
	}
}

// alloc creates a fresh record for a newly mounted component.
func (s *store) alloc(name string) *stateRecord {
	s.nextID++
	rec := &stateRecord{id: s.nextID, alive: true, name: name}
	s.records[rec.id] = rec
	return rec
}

// markVisited records that a component identity was reached this pass.
func (s *store) markVisited(id int64) {
	s.visited[id] = true
}

// beginPass clears the reachability markers for a new render pass.
func (s *store) beginPass() {
	clear(s.visited)
}

// release runs the remaining effect cleanups of a record and marks it dead.
// Called on unmount; the record itself is deleted by the next collect, or
// immediately by drop at root teardown.
func (s *store) release(rec *stateRecord) {
	if rec == nil || !rec.alive {
		return
	}
	rec.alive = false
	runRemainingCleanups(rec)
}

// collect deletes every record not visited this pass, running any effect
// cleanups that have not already run. Run once per completed pass, after
// all components have been visited. A collected identity never carries
// state into a future mount.
func (s *store) collect() {
	for id, rec := range s.records {
		if s.visited[id] {
			continue
		}
		if rec.alive {
			rec.alive = false
			runRemainingCleanups(rec)
		}
		delete(s.records, id)
	}
}

// drop tears the whole store down, releasing every live record. Used at
// root unmount, outside any render pass.
func (s *store) drop() {
	for id, rec := range s.records {
		if rec.alive {
			rec.alive = false
			runRemainingCleanups(rec)
		}
		delete(s.records, id)
	}
	clear(s.visited)
}

func runRemainingCleanups(rec *stateRecord) {
	// Child instances release before parents, so cleanups under a subtree
	// run leaf-first; within one record they run in declaration order.
	for _, slot := range rec.slots {
		if slot.kind != slotEffect || slot.cleanup == nil {
			continue
		}
		c := slot.cleanup
		slot.cleanup = nil
		runIsolated(rec.name, c)
	}
}
