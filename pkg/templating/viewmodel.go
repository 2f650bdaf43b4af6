package templating

import (
	"fmt"
	"reflect"
)

// ViewModel maps placeholder keys to the scalar values substituted for
// them. Values are expected to be text, numbers, or booleans; anything
// else is coerced to text with fmt.Sprint at substitution time.
type ViewModel map[string]any

// Stringify converts a view model value into the text form that replaces
// a placeholder token.
func Stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Truthy reports whether key is present in the view model with a truthy
// value. False, zero numbers, the empty string, and nil are falsy, and so
// is an absent key. Placeholder substitution distinguishes "present but
// falsy" from "absent"; conditional passes collapse both to false, which
// is exactly this method.
func (vm ViewModel) Truthy(key string) bool {
	v, ok := vm[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	}

	// Remaining numeric widths come through reflection so a host handing
	// us an int32 or uint8 is not treated differently from an int.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	default:
		return true
	}
}
