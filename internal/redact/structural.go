package redact

import (
	"fmt"
	"reflect"
	"regexp"
	"time"
)

// ScrubValue returns a structurally-equivalent copy of v with sensitive
// leaves replaced. The input is never mutated.
//
// Strings pass through ScrubText. Fields whose names classify Sensitive are
// replaced wholesale with the placeholder, without descending into the value.
// Fields whose names are Whitelisted are returned verbatim so configuration
// echoing stays readable. Recognized opaque types (timestamps, durations,
// byte buffers, compiled regexps, errors) are preserved untraversed: they
// are not attacker-controlled free text and rewriting them would corrupt
// their semantics.
//
// Cyclic structures terminate: a position already on the current descent
// path becomes the [CIRCULAR] placeholder instead of recursing. A crash
// before scrubbing completes would itself be a leak, since crash diagnostics
// routinely include the original structure.
func (s *Scrubber) ScrubValue(v any) any {
	return s.redactValue(v, make(map[uintptr]struct{}))
}

// opaque reports whether v is a recognized built-in type that must be
// returned as-is. The set is closed and checked by explicit type inspection;
// genuinely new opaque types require an explicit addition here.
func opaque(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time, time.Duration, []byte, *regexp.Regexp:
		return true
	}
	if _, ok := v.(error); ok {
		return true
	}
	return false
}

func (s *Scrubber) redactValue(v any, path map[uintptr]struct{}) any {
	if v == nil {
		return nil
	}
	if str, ok := v.(string); ok {
		return s.ScrubText(str)
	}
	if opaque(v) {
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		id := rv.Pointer()
		if _, seen := path[id]; seen {
			return PlaceholderCircular
		}
		path[id] = struct{}{}
		out := s.redactValue(rv.Elem().Interface(), path)
		delete(path, id)
		return out

	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		id := rv.Pointer()
		if _, seen := path[id]; seen {
			return PlaceholderCircular
		}
		path[id] = struct{}{}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			name := fmt.Sprint(iter.Key().Interface())
			out[name] = s.redactField(name, iter.Value(), path)
		}
		delete(path, id)
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		id := rv.Pointer()
		if _, seen := path[id]; seen {
			return PlaceholderCircular
		}
		path[id] = struct{}{}
		out := s.redactSequence(rv, path)
		delete(path, id)
		return out

	case reflect.Array:
		return s.redactSequence(rv, path)

	case reflect.Struct:
		out := make(map[string]any, rv.NumField())
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = s.redactField(f.Name, rv.Field(i), path)
		}
		return out

	default:
		// Remaining primitives (bool, numerics, channels, funcs) carry no
		// free text; pass through unchanged.
		return v
	}
}

// redactField applies name classification before touching the value: a
// Sensitive name blanks the entire value regardless of type, a Whitelisted
// name passes it through verbatim, and a Neutral name recurses.
func (s *Scrubber) redactField(name string, rv reflect.Value, path map[uintptr]struct{}) any {
	switch s.classifier.Classify(name) {
	case Sensitive:
		return Placeholder
	case Whitelisted:
		return rv.Interface()
	default:
		return s.redactValue(rv.Interface(), path)
	}
}

// redactSequence maps every element of a slice or array through the value
// rules. String elements go through the text scrubber like any other leaf.
func (s *Scrubber) redactSequence(rv reflect.Value, path map[uintptr]struct{}) []any {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = s.redactValue(rv.Index(i).Interface(), path)
	}
	return out
}
