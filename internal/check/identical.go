package check

import (
	"fmt"
	"reflect"
)

const maxRendered = 120

// mismatch compares expected and actual structurally and returns a
// description of the first difference found. ok is true when the values are
// identical. There is no implicit coercion: an int and an int64 holding the
// same number are different values.
func mismatch(expected, actual any) (desc string, ok bool) {
	if expected == nil && actual == nil {
		return "", true
	}
	if expected == nil || actual == nil {
		return fmt.Sprintf("one value is nil: %s vs %s", formatValue(expected), formatValue(actual)), false
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)
	if ev.Type() != av.Type() {
		return fmt.Sprintf("type mismatch: %s vs %s", ev.Type(), av.Type()), false
	}
	return compareValues(ev, av)
}

func compareValues(ev, av reflect.Value) (string, bool) {
	switch ev.Kind() {
	case reflect.Slice, reflect.Array:
		if ev.Kind() == reflect.Slice && ev.IsNil() != av.IsNil() {
			// nil and empty slices compare equal; the distinction is not
			// observable element-wise.
			if ev.Len() == 0 && av.Len() == 0 {
				return "", true
			}
		}
		if ev.Len() != av.Len() {
			return fmt.Sprintf("length mismatch: %d vs %d", ev.Len(), av.Len()), false
		}
		for i := 0; i < ev.Len(); i++ {
			if desc, ok := compareValues(ev.Index(i), av.Index(i)); !ok {
				return fmt.Sprintf("mismatch at index %d: %s", i, desc), false
			}
		}
		return "", true

	case reflect.Map:
		if ev.Len() != av.Len() {
			return fmt.Sprintf("length mismatch: %d vs %d", ev.Len(), av.Len()), false
		}
		for _, key := range ev.MapKeys() {
			a := av.MapIndex(key)
			if !a.IsValid() {
				return fmt.Sprintf("missing key %s", formatReflect(key)), false
			}
			if desc, ok := compareValues(ev.MapIndex(key), a); !ok {
				return fmt.Sprintf("mismatch at key %s: %s", formatReflect(key), desc), false
			}
		}
		return "", true

	case reflect.Struct:
		for i := 0; i < ev.NumField(); i++ {
			if !ev.Type().Field(i).IsExported() {
				// Fall back to DeepEqual for types with unexported state.
				if !reflect.DeepEqual(ev.Interface(), av.Interface()) {
					return "values differ", false
				}
				return "", true
			}
			if desc, ok := compareValues(ev.Field(i), av.Field(i)); !ok {
				return fmt.Sprintf("mismatch in field %s: %s", ev.Type().Field(i).Name, desc), false
			}
		}
		return "", true

	case reflect.Ptr, reflect.Interface:
		if ev.IsNil() && av.IsNil() {
			return "", true
		}
		if ev.IsNil() || av.IsNil() {
			return "one value is nil", false
		}
		return compareValues(ev.Elem(), av.Elem())

	case reflect.String:
		if ev.String() != av.String() {
			return fmt.Sprintf("%q vs %q", ev.String(), av.String()), false
		}
		return "", true

	default:
		if ev.CanInterface() && av.CanInterface() {
			if !reflect.DeepEqual(ev.Interface(), av.Interface()) {
				return fmt.Sprintf("%s vs %s", formatReflect(ev), formatReflect(av)), false
			}
			return "", true
		}
		if !reflect.DeepEqual(ev, av) {
			return "values differ", false
		}
		return "", true
	}
}

// formatValue renders a value for outcome reporting, truncated so huge
// fixtures do not swamp the report.
func formatValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("%#v", v)
	if len(s) > maxRendered {
		s = s[:maxRendered] + "..."
	}
	return s
}

func formatReflect(v reflect.Value) string {
	if v.CanInterface() {
		return formatValue(v.Interface())
	}
	return v.String()
}
