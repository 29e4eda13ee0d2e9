package core

import "fmt"

// Normalize reduces arbitrary render output to a canonical Node or nil.
//
// nil and bool values normalize to nil (rendered absence), strings and
// numbers to text nodes, slices to fragments with nested sequences
// flattened and absences dropped. Canonical nodes pass through unchanged.
// Anything else renders as its %v text.
func Normalize(v any) *Node {
	switch val := v.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case *Node:
		return val
	case string:
		return Text(val)
	case []*Node:
		children := flattenInto(nil, val)
		if len(children) == 0 {
			return nil
		}
		return &Node{Kind: KindFragment, Children: children}
	case []any:
		children := flattenInto(nil, val)
		if len(children) == 0 {
			return nil
		}
		return &Node{Kind: KindFragment, Children: children}
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Textf("%v", val)
	case fmt.Stringer:
		return Text(val.String())
	default:
		return Textf("%v", val)
	}
}

// flatten normalizes a constructor's variadic child list.
func flatten(children []any) []*Node {
	return flattenInto(nil, children)
}

func flattenInto[T any](dst []*Node, src []T) []*Node {
	for _, v := range src {
		switch val := any(v).(type) {
		case nil:
			// absence
		case bool:
			// absence
		case *Node:
			if val != nil {
				dst = append(dst, val)
			}
		case []*Node:
			dst = flattenInto(dst, val)
		case []any:
			dst = flattenInto(dst, val)
		default:
			if n := Normalize(val); n != nil {
				dst = append(dst, n)
			}
		}
	}
	return dst
}
