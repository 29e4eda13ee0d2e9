package testing

import (
	"fmt"

	"github.com/go-weft/weft/pkg/host"
)

// Finder locates nodes in a MemoryHost tree.
type Finder interface {
	// Matches reports whether one node satisfies the finder.
	Matches(n *host.MemoryNode) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*host.MemoryNode
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *host.MemoryNode {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.finder.Description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *host.MemoryNode {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// All returns all matches in depth-first pre-order.
func (r FinderResult) All() []*host.MemoryNode {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Find evaluates a finder against the mounted tree.
func (t *Tester) Find(f Finder) FinderResult {
	var nodes []*host.MemoryNode
	var walk func(n *host.MemoryNode)
	walk = func(n *host.MemoryNode) {
		if f.Matches(n) {
			nodes = append(nodes, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, c := range t.Container().Children() {
		walk(c)
	}
	return FinderResult{nodes: nodes, finder: f}
}

// ByTag finds element nodes with the given tag.
func ByTag(tag string) Finder {
	return tagFinder(tag)
}

type tagFinder string

func (f tagFinder) Matches(n *host.MemoryNode) bool {
	return !n.IsText && n.Tag == string(f)
}

func (f tagFinder) Description() string {
	return fmt.Sprintf("tag %q", string(f))
}

// ByText finds text nodes with exactly the given content.
func ByText(text string) Finder {
	return textFinder(text)
}

type textFinder string

func (f textFinder) Matches(n *host.MemoryNode) bool {
	return n.IsText && n.Text == string(f)
}

func (f textFinder) Description() string {
	return fmt.Sprintf("text %q", string(f))
}

// ByProp finds element nodes carrying a property with the given value.
func ByProp(name string, value any) Finder {
	return propFinder{name: name, value: value}
}

type propFinder struct {
	name  string
	value any
}

func (f propFinder) Matches(n *host.MemoryNode) bool {
	if n.IsText {
		return false
	}
	v, ok := n.Props[f.name]
	return ok && v == f.value
}

func (f propFinder) Description() string {
	return fmt.Sprintf("prop %s=%v", f.name, f.value)
}
