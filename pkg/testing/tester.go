// Package testing provides an isolated harness for exercising the engine
// without a real render target. It drives the same render and effect
// phases as a live embedding, but against an in-memory host whose
// mutations can be counted and whose tree can be serialized.
package testing

import (
	"errors"
	"testing"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/host"
)

// ErrSettleTimeout is returned when Settle exceeds its work budget.
var ErrSettleTimeout = errors.New("Settle timed out: runtime did not become idle")

// settleBudget bounds how many queued units of work Settle will run before
// concluding the tree is re-rendering itself forever.
const settleBudget = 1000

// Tester mounts trees into a fresh MemoryHost and drives the runtime
// deterministically.
type Tester struct {
	host      *host.MemoryHost
	container host.NodeHandle
	rt        *core.Runtime
}

// NewTester creates a tester with an empty in-memory render target.
// Call Unmount when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	h := host.NewMemoryHost()
	return &Tester{
		host:      h,
		container: h.CreateNode("root"),
	}
}

// NewTesterWithT creates a tester that auto-unmounts via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Unmount)
	return tester
}

// Pump mounts node on first call and updates the root on later calls,
// then drains the runtime to idle: the render pass, its effect flush, and
// any renders those effects request.
func (t *Tester) Pump(node *core.Node) {
	if t.rt == nil {
		t.rt = core.Mount(t.host, t.container, node)
		return
	}
	t.rt.Update(node)
	t.rt.Flush()
}

// Settle runs queued work until the runtime is idle, with a budget so a
// tree that endlessly re-renders itself fails the test instead of hanging
// it.
func (t *Tester) Settle() error {
	if t.rt == nil {
		return nil
	}
	for i := 0; i < settleBudget; i++ {
		if !t.rt.Tick() {
			return nil
		}
	}
	return ErrSettleTimeout
}

// Unmount tears the mounted tree down. Safe to call repeatedly.
func (t *Tester) Unmount() {
	if t.rt != nil {
		t.rt.Unmount()
		t.rt = nil
	}
}

// Runtime returns the mounted runtime, or nil before the first Pump.
func (t *Tester) Runtime() *core.Runtime {
	return t.rt
}

// Host returns the in-memory render target.
func (t *Tester) Host() *host.MemoryHost {
	return t.host
}

// Container returns the root container node.
func (t *Tester) Container() *host.MemoryNode {
	return t.container.(*host.MemoryNode)
}

// HTML serializes the container's children for assertions.
func (t *Tester) HTML() string {
	return host.InnerHTML(t.container)
}

// MutationCount returns the total render-target mutations performed since
// the last reset.
func (t *Tester) MutationCount() int {
	return t.host.Ops().Total()
}

// ResetMutationCount zeroes the mutation counters, typically right before
// the pass under test.
func (t *Tester) ResetMutationCount() {
	t.host.ResetOps()
}

// Dispatch fires the handler registered for event on node.
// Returns true if a handler ran; the caller still Pumps or Settles to run
// the renders the handler scheduled.
func (t *Tester) Dispatch(node *host.MemoryNode, event string, data any) bool {
	return t.host.DispatchEvent(node, event, data)
}
