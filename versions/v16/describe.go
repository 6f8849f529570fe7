package v16

import "reflect"

// Describe returns the element type name for slice types and the type name
// for everything else.
func Describe[T any]() string {
	return DescribeType(reflect.TypeOf((*T)(nil)).Elem())
}

// DescribeType is the reflect.Type based variant of Describe.
func DescribeType(t reflect.Type) string {
	if t.Kind() == reflect.Slice {
		return t.Elem().String()
	}
	return t.String()
}
