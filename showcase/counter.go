package main

import "github.com/go-weft/weft/pkg/core"

// counter is the smallest useful Weft component: one piece of state and a
// handler that updates it.
func counter(ctx *core.Ctx) any {
	count, setCount := core.UseState(ctx, 0)

	onClick := core.UseCallback(ctx, func(any) {
		setCount.Update(func(n int) int { return n + 1 })
	}, []any{})

	return core.H("div", core.Props{"class": "counter"},
		core.H("span", nil, core.Textf("count: %d", count)),
		core.H("button", core.Props{"onClick": onClick}, "+1"),
	)
}
