// Package main provides the Weft demo application.
// It demonstrates idiomatic patterns for building UIs with Weft: component
// functions, hooks, keyed lists, and event handlers, driven against the
// in-memory render target.
package main

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/host"
)

// demo drives one root component against a fresh in-memory target and
// prints the committed tree after each scripted interaction.
type demo struct {
	name     string
	root     core.Component
	interact func(d *driver)
}

// driver bundles the runtime with its target for scripted interactions.
type driver struct {
	host      *host.MemoryHost
	container *host.MemoryNode
	rt        *core.Runtime
}

// click fires the handler bound to the first node matching tag and an
// optional id prop, then drains the runtime.
func (d *driver) click(tag, id string) {
	node := findNode(d.container, tag, id)
	if node == nil {
		fmt.Printf("  (no %s node to click)\n", tag)
		return
	}
	d.host.DispatchEvent(node, "click", nil)
	d.rt.Flush()
}

func (d *driver) print(label string) {
	fmt.Printf("  %s: %s\n", label, host.InnerHTML(d.container))
}

func findNode(n *host.MemoryNode, tag, id string) *host.MemoryNode {
	if !n.IsText && n.Tag == tag && (id == "" || n.Props["id"] == id) {
		return n
	}
	for _, c := range n.Children() {
		if found := findNode(c, tag, id); found != nil {
			return found
		}
	}
	return nil
}

func main() {
	demos := []demo{
		{
			name: "counter",
			root: counter,
			interact: func(d *driver) {
				d.print("mounted")
				d.click("button", "")
				d.click("button", "")
				d.print("after two clicks")
			},
		},
		{
			name: "todo",
			root: todoApp,
			interact: func(d *driver) {
				d.print("mounted")
				d.click("button", "add")
				d.print("after add")
				d.click("button", "done-1")
				d.print("after completing the first item")
			},
		},
	}

	for _, dm := range demos {
		fmt.Printf("== %s ==\n", dm.name)
		h := host.NewMemoryHost()
		container := h.CreateNode("root")
		rt := core.Mount(h, container, core.F(dm.root, nil))
		d := &driver{host: h, container: container.(*host.MemoryNode), rt: rt}
		dm.interact(d)
		rt.Unmount()
		fmt.Printf("  mutations: %d\n\n", h.Ops().Total())
	}
}
