package databend

import "github.com/tidwall/gjson"

// ColumnType is implemented to define a supported column type. Databend
// provides a variety of built-in types in the columntype package.
type ColumnType interface {
	Name() string // Name returns a human-readable identifier for this type, used in error messages
	// CreateDeserializer returns a fresh TypeDeserializer for this type, sized
	// to accept up to capacity values before growing.
	CreateDeserializer(capacity int) TypeDeserializer
}

// Column is a finalized, immutable column of values, all of this column's
// ColumnType. Null slots report IsNull(i) == true and Value(i) == nil.
type Column interface {
	DataType() ColumnType
	Len() int
	IsNull(i int) bool
	Value(i int) interface{}
}

// TypeDeserializer accumulates row-wise scalar input for one column and
// finalizes it into a Column. Deserializers are transient: a source creates
// one per schema field for every block it produces and discards it after
// FinishToColumn.
type TypeDeserializer interface {
	// DeJSON accepts one decoded JSON value. A JSON null, or the zero
	// gjson.Result produced by a missing key, appends a null slot. A value
	// which cannot be coerced to this column's type is an error, in which
	// case no slot is appended.
	DeJSON(value gjson.Result, settings *FormatSettings) error
	// FinishToColumn consumes this deserializer, yielding the accumulated
	// values as an immutable Column.
	FinishToColumn() Column
}
