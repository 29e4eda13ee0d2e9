// Package errors provides structured error handling for the Weft engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error.
	KindInit
	// KindRender indicates a failure during a render pass.
	KindRender
	// KindEffect indicates a failure during an effect flush.
	KindEffect
	// KindHost indicates a render-target mutation error.
	KindHost
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindEffect:
		return "effect"
	case KindHost:
		return "host"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the Weft engine.
type WeftError struct {
	// Op is the operation that failed (e.g., "core.reconcileChildren").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// RenderError represents a failure while invoking a component function.
type RenderError struct {
	// Component is the name of the component function that failed.
	Component string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in component %s: %v", e.Component, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in component %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("unknown error in component %s", e.Component)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// EffectError represents a panic recovered while running an effect body or
// its cleanup. A failing effect never prevents later queued effects from
// running; it is reported here instead.
type EffectError struct {
	// Component is the name of the component that owns the effect.
	Component string
	// Recovered is the panic value.
	Recovered any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("panic in effect of component %s: %v", e.Component, e.Recovered)
}

// DuplicateKeyError reports two siblings carrying the same key. The engine
// keeps the last-registered sibling for the key; earlier ones are unmounted.
type DuplicateKeyError struct {
	// Tag is the parent's host tag, or "fragment" for fragment parents.
	Tag string
	// Key is the duplicated key.
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate sibling key %q under <%s>", e.Key, e.Tag)
}

// HookOrderError reports a hook discipline violation: a hook called outside
// a component's synchronous invocation window, or a call whose kind or count
// does not match the slot recorded at that position on a previous render.
type HookOrderError struct {
	// Component is the name of the offending component function.
	Component string
	// Index is the hook call position (cursor value) at the violation.
	Index int
	// Got is the hook kind of the offending call ("state", "effect", "memo").
	Got string
	// Want is the hook kind recorded for this slot, if any.
	Want string
}

func (e *HookOrderError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("hook call outside render window in %s (call %d, kind %s)", e.Component, e.Index, e.Got)
	}
	if e.Got == "" {
		return fmt.Sprintf("component %s called fewer hooks than the previous render (stopped at %d, slot kind %s)", e.Component, e.Index, e.Want)
	}
	return fmt.Sprintf("hook order violation in %s: call %d is %s, slot holds %s", e.Component, e.Index, e.Got, e.Want)
}

// Handler receives errors reported by the Weft engine.
type Handler interface {
	// HandleError is called when a general engine error occurs.
	HandleError(err *WeftError)
	// HandleRenderError is called when a component function fails.
	HandleRenderError(err *RenderError)
	// HandleEffectError is called when an effect body or cleanup panics.
	HandleEffectError(err *EffectError)
}
