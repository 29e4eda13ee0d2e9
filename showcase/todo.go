package main

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
)

type todoItem struct {
	ID    int
	Title string
	Done  bool
}

// todoApp demonstrates keyed lists: items keep their identity (and their
// row component's state) as the list grows and items complete.
func todoApp(ctx *core.Ctx) any {
	items, setItems := core.UseState(ctx, []todoItem{
		{ID: 1, Title: "learn weft"},
		{ID: 2, Title: "ship it"},
	})
	nextID, setNextID := core.UseState(ctx, 3)

	remaining := core.UseMemo(ctx, func() int {
		n := 0
		for _, it := range items {
			if !it.Done {
				n++
			}
		}
		return n
	}, []any{items})

	add := func(any) {
		next := append(append([]todoItem(nil), items...), todoItem{
			ID:    nextID,
			Title: fmt.Sprintf("task %d", nextID),
		})
		setItems.Set(next)
		setNextID.Set(nextID + 1)
	}

	toggle := func(id int) func(any) {
		return func(any) {
			next := append([]todoItem(nil), items...)
			for i := range next {
				if next[i].ID == id {
					next[i].Done = !next[i].Done
				}
			}
			setItems.Set(next)
		}
	}

	rows := make([]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, core.FK(todoRow, fmt.Sprintf("todo-%d", it.ID), core.Props{
			"item":     it,
			"onToggle": toggle(it.ID),
		}))
	}

	return core.H("div", core.Props{"class": "todo"},
		core.H("header", nil, core.Textf("%d open", remaining)),
		core.H("ul", nil, rows...),
		core.H("button", core.Props{"id": "add", "onClick": add}, "add"),
	)
}

func todoRow(ctx *core.Ctx) any {
	item := ctx.Prop("item").(todoItem)
	onToggle := ctx.Prop("onToggle").(func(any))

	label := item.Title
	if item.Done {
		label = "[done] " + label
	}

	return core.H("li", nil,
		core.H("span", nil, label),
		core.H("button", core.Props{
			"id":      fmt.Sprintf("done-%d", item.ID),
			"onClick": onToggle,
		}, "toggle"),
	)
}
