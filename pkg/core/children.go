package core

import (
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/host"
)

// reconcileChildren diffs an instance's child list against the next child
// descriptions. parent is the render-target container the children live
// in; tailAnchor is the node after the last child (nil appends), which for
// fragments is the fragment's own anchor.
func (rt *Runtime) reconcileChildren(parent host.NodeHandle, inst *Instance, nextChildren []*Node, tailAnchor host.NodeHandle) {
	prevChildren := inst.children

	// Keyed lookup over previous children. On duplicate sibling keys the
	// last-registered instance wins; the duplicate is reported rather than
	// silently dropped.
	var keyed map[string]int
	for i, c := range prevChildren {
		if c == nil || c.key == "" {
			continue
		}
		if keyed == nil {
			keyed = make(map[string]int)
		}
		if _, dup := keyed[c.key]; dup {
			rt.reportDuplicateKey(inst, c.key)
		}
		keyed[c.key] = i
	}

	consumed := make([]bool, len(prevChildren))
	matches := make([]*Instance, len(nextChildren))
	matchIdx := make([]int, len(nextChildren))
	for i := range matchIdx {
		matchIdx[i] = -1
	}

	for i, n := range nextChildren {
		if n.Key != "" {
			if j, ok := keyed[n.Key]; ok {
				if consumed[j] {
					// Two next siblings carrying the same key.
					rt.reportDuplicateKey(inst, n.Key)
					continue
				}
				matches[i], matchIdx[i] = prevChildren[j], j
				consumed[j] = true
			}
			continue
		}

		// Unkeyed: positional continuity first - the unconsumed previous
		// child at the same index, if it is of the same type.
		if i < len(prevChildren) {
			if c := prevChildren[i]; c != nil && !consumed[i] && c.key == "" && sameShape(c, n) {
				matches[i], matchIdx[i] = c, i
				consumed[i] = true
				continue
			}
		}

		// Then the nearest unconsumed unkeyed previous child of the same
		// type, by original index. At the last new slot prefer the last
		// remaining candidate, so a fixed trailing element stays matched
		// through insertions before it. This is a best-effort heuristic,
		// not an identity guarantee: use keys for movable siblings.
		best := -1
		for j, c := range prevChildren {
			if c == nil || consumed[j] || c.key != "" || !sameShape(c, n) {
				continue
			}
			if i == len(nextChildren)-1 {
				best = j // keep scanning; the last candidate wins
				continue
			}
			if best == -1 || abs(j-i) < abs(best-i) {
				best = j
			}
		}
		if best >= 0 {
			matches[i], matchIdx[i] = prevChildren[best], best
			consumed[best] = true
		}
	}

	// Previous children nothing matched are gone.
	for j, c := range prevChildren {
		if c != nil && !consumed[j] {
			rt.unmountInstance(parent, c, true)
		}
	}

	// Among matched children, the longest subsequence already in relative
	// order keeps its nodes in place; only the rest move. This bounds
	// render-target operations to the nodes actually displaced.
	stable := markStable(matchIdx)

	// Anchors, computed in reverse: the anchor for a slot is the first
	// render-target node of the nearest following slot that will not
	// itself move, falling back to the trailing anchor. Fresh mounts and
	// displaced slots are skipped over, since their nodes are not yet
	// where they will end up.
	anchors := make([]host.NodeHandle, len(nextChildren))
	next := tailAnchor
	for i := len(nextChildren) - 1; i >= 0; i-- {
		anchors[i] = next
		if stable[i] {
			if h := matches[i].firstHost(); h != nil {
				next = h
			}
		}
	}

	children := make([]*Instance, len(nextChildren))
	for i, n := range nextChildren {
		child := rt.reconcile(parent, matches[i], n, inst, anchors[i])
		children[i] = child
		if matches[i] != nil && child == matches[i] && !stable[i] {
			rt.moveInstance(parent, child, anchors[i])
		}
	}
	inst.children = children
}

// moveInstance repositions a surviving instance's render-target nodes so
// they sit, in order, immediately before anchor. A node whose current next
// sibling already matches is left untouched, and a node that is no longer
// under parent is skipped rather than re-parented.
func (rt *Runtime) moveInstance(parent host.NodeHandle, inst *Instance, anchor host.NodeHandle) {
	hosts := inst.collectHosts(nil)
	expected := anchor
	for i := len(hosts) - 1; i >= 0; i-- {
		h := hosts[i]
		if rt.host.Parent(h) != parent {
			continue
		}
		if rt.host.NextSibling(h) != expected {
			rt.host.InsertBefore(parent, h, expected)
		}
		expected = h
	}
}

// markStable returns, per slot, whether the matched previous child can
// keep its position: true for members of the longest increasing
// subsequence of previous indices in next order.
func markStable(matchIdx []int) []bool {
	stable := make([]bool, len(matchIdx))
	var tails []int // slot indices forming the best subsequence tails
	prevLink := make([]int, len(matchIdx))
	for i := range prevLink {
		prevLink[i] = -1
	}
	for i, v := range matchIdx {
		if v < 0 {
			continue
		}
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if matchIdx[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prevLink[i] = tails[lo-1]
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}
	if len(tails) > 0 {
		for i := tails[len(tails)-1]; i >= 0; i = prevLink[i] {
			stable[i] = true
		}
	}
	return stable
}

func (rt *Runtime) reportDuplicateKey(inst *Instance, key string) {
	tag := "fragment"
	if inst.kind == KindHost {
		tag = inst.node.Tag
	}
	errors.Report(&errors.WeftError{
		Op:   "core.reconcileChildren",
		Kind: errors.KindRender,
		Err:  &errors.DuplicateKeyError{Tag: tag, Key: key},
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
