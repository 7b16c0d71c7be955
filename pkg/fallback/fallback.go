// Package fallback provides ordered first-non-empty accessors. Upstream
// payloads name the same logical field in several ways; each accessor takes
// the candidates in precedence order and returns the first one that holds a
// value.
package fallback

import (
	"strings"

	"github.com/tidwall/gjson"
)

// First returns the first non-zero value, or the zero value if all are zero.
func First[T comparable](values ...T) (v T) {
	var zero T
	for _, candidate := range values {
		if candidate != zero {
			v = candidate
			return v
		}
	}
	return v
}

// FirstString returns the first value that is not blank after trimming.
// The returned value is trimmed.
func FirstString(values ...string) (s string) {
	for _, candidate := range values {
		trimmed := strings.TrimSpace(candidate)
		if trimmed != "" {
			s = trimmed
			return s
		}
	}
	return s
}

// Result returns the first gjson path under obj that exists and is not
// null, an empty string or an empty array.
func Result(obj gjson.Result, paths ...string) (r gjson.Result) {
	for _, path := range paths {
		candidate := obj.Get(path)
		if present(candidate) {
			r = candidate
			return r
		}
	}
	return r
}

// String returns the first non-blank string found at paths.
func String(obj gjson.Result, paths ...string) (s string) {
	for _, path := range paths {
		candidate := obj.Get(path)
		if !present(candidate) {
			continue
		}
		if candidate.IsObject() || candidate.IsArray() {
			continue
		}
		trimmed := strings.TrimSpace(candidate.String())
		if trimmed != "" {
			s = trimmed
			return s
		}
	}
	return s
}

// Int returns the first non-zero integer found at paths.
func Int(obj gjson.Result, paths ...string) (n int) {
	for _, path := range paths {
		candidate := obj.Get(path)
		if !present(candidate) {
			continue
		}
		value := int(candidate.Int())
		if value != 0 {
			n = value
			return n
		}
	}
	return n
}

// Array returns the elements of the first non-empty array found at paths.
func Array(obj gjson.Result, paths ...string) (items []gjson.Result) {
	for _, path := range paths {
		candidate := obj.Get(path)
		if !candidate.IsArray() {
			continue
		}
		elements := candidate.Array()
		if len(elements) > 0 {
			items = elements
			return items
		}
	}
	items = []gjson.Result{}
	return items
}

func present(r gjson.Result) (ok bool) {
	if !r.Exists() || r.Type == gjson.Null {
		return ok
	}
	if r.Type == gjson.String && strings.TrimSpace(r.Str) == "" {
		return ok
	}
	if r.IsArray() && len(r.Array()) == 0 {
		return ok
	}
	ok = true
	return ok
}
