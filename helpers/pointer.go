package helpers

import "reflect"

// StrPanic panics with panicMessage if string p is empty (only p == "" is checked, no TrimSpace); otherwise returns p. Used for fail-fast validation of required constructor strings (registry base URL, service id).
//
// Parameters: p is the string to check, panicMessage the value passed to panic.
//
// Returns: p unchanged when non-empty.
//
// Called from adapters.RegistryHTTP and service.NewHeartbeatSender.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan, func; typed nils are detected via reflect); otherwise returns v.
//
// Parameters: v is the value to check, panicMessage the panic value.
//
// Returns: v unchanged when non-nil.
//
// Called from constructors when validating required dependencies (stores, clients, loggers, time providers).
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil returns true if v is nil or a nil pointer/slice/map/chan/func/interface.
//
// Called only from NilPanic.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, or returns the zero value for a nil p. Optional request body fields are pointers.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
