package core

import (
	"github.com/go-weft/weft/pkg/host"
)

// ApplyProps diffs two prop maps onto a render-target node. Values whose
// identity is unchanged are skipped entirely; handler props (names like
// "onClick") route to the event-listener capability with the leading "on"
// stripped and the event name lowercased.
//
// Handler closures recreated every render have fresh identities and are
// re-registered each pass; wrap them in UseCallback when that matters.
func ApplyProps(h host.Host, node host.NodeHandle, prev, next Props) {
	for name := range prev {
		if _, ok := next[name]; ok {
			continue
		}
		if isEventProp(name) {
			h.RemoveEventListener(node, eventName(name))
		} else {
			h.RemoveProperty(node, name)
		}
	}
	for name, nextVal := range next {
		prevVal, had := prev[name]
		if had && Identical(prevVal, nextVal) {
			continue
		}
		if isEventProp(name) {
			if handler := toHandler(nextVal); handler != nil {
				h.AddEventListener(node, eventName(name), handler)
			} else {
				h.RemoveEventListener(node, eventName(name))
			}
			continue
		}
		h.SetProperty(node, name, nextVal)
	}
}

// isEventProp reports whether a prop name addresses an event handler:
// "on" followed by a capitalized event name.
func isEventProp(name string) bool {
	return len(name) > 2 && name[0] == 'o' && name[1] == 'n' &&
		name[2] >= 'A' && name[2] <= 'Z'
}

// eventName maps a handler prop name to its event name: onClick -> click.
func eventName(name string) string {
	rest := name[2:]
	return string(rest[0]|0x20) + rest[1:]
}

func toHandler(v any) host.EventHandler {
	switch fn := v.(type) {
	case nil:
		return nil
	case host.EventHandler:
		return fn
	case func(any):
		return fn
	case func():
		return func(any) { fn() }
	default:
		return nil
	}
}
