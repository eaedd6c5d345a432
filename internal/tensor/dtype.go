// Package tensor provides the core tensor container and traversal utilities
// for the numkernel math helpers.
package tensor

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Numeric is a constraint for supported tensor element types.
// Any integer or floating-point type (including named types) qualifies.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Invalid DataType = iota
	Float32
	Float64
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64:
		return 8
	case Int, Uint, Uintptr:
		return int(reflect.TypeFor[uint]().Size())
	default:
		return 0
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsSigned reports whether the data type can hold negative values.
func (dt DataType) IsSigned() bool {
	switch dt {
	case Float32, Float64, Int8, Int16, Int32, Int64, Int:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	case Uintptr:
		return "uintptr"
	default:
		return "unknown"
	}
}

var kindToDataType = map[reflect.Kind]DataType{
	reflect.Float32: Float32,
	reflect.Float64: Float64,
	reflect.Int8:    Int8,
	reflect.Int16:   Int16,
	reflect.Int32:   Int32,
	reflect.Int64:   Int64,
	reflect.Int:     Int,
	reflect.Uint8:   Uint8,
	reflect.Uint16:  Uint16,
	reflect.Uint32:  Uint32,
	reflect.Uint64:  Uint64,
	reflect.Uint:    Uint,
	reflect.Uintptr: Uintptr,
}

// DataTypeOf infers the DataType of T from its underlying kind, so named
// types such as `type Celsius float64` map to Float64.
func DataTypeOf[T Numeric]() DataType {
	return kindToDataType[reflect.TypeFor[T]().Kind()]
}
