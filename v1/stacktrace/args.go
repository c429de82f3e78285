package stacktrace

import (
	"math"
	"reflect"
	"strconv"
)

// RenderArg renders a call argument for a Frame:
//
//	slices, arrays, maps     Array
//	structs, pointers        their type name
//	bool                     true / false
//	numbers, numeric strings the literal
//	nil                      NULL
//	strings                  'quoted'
//	anything else            its kind, e.g. func or chan
func RenderArg(v interface{}) string {
	if v == nil {
		return "NULL"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "Array"
	case reflect.Struct, reflect.Ptr, reflect.Interface:
		return rv.Type().String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.String:
		s := rv.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return s
		}
		return "'" + s + "'"
	default:
		return rv.Kind().String()
	}
}

// RenderArgs applies RenderArg to each value.
func RenderArgs(values ...interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = RenderArg(v)
	}
	return out
}
