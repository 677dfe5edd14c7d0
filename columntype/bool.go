package columntype

import (
	"fmt"

	"github.com/nonemaw/databend"
	"github.com/tidwall/gjson"
)

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name returns a human-readable identifier for this type
func (t *BoolColumnType) Name() string {
	return "Boolean"
}

// CreateDeserializer returns a fresh deserializer for a Boolean column
func (t *BoolColumnType) CreateDeserializer(capacity int) databend.TypeDeserializer {
	return &boolDeserializer{
		colType: t,
		values:  make([]bool, 0, capacity),
		valid:   make([]bool, 0, capacity),
	}
}

type boolDeserializer struct {
	colType *BoolColumnType
	values  []bool
	valid   []bool
}

func (d *boolDeserializer) DeJSON(value gjson.Result, settings *databend.FormatSettings) error {
	switch value.Type {
	case gjson.Null:
		d.values = append(d.values, false)
		d.valid = append(d.valid, false)
	case gjson.True, gjson.False:
		d.values = append(d.values, value.Bool())
		d.valid = append(d.valid, true)
	default:
		return fmt.Errorf("value was not a boolean")
	}
	return nil
}

func (d *boolDeserializer) FinishToColumn() databend.Column {
	col := &BoolColumn{colType: d.colType, values: d.values, valid: d.valid}
	d.values = nil
	d.valid = nil
	return col
}

// BoolColumn is a finalized column of booleans
type BoolColumn struct {
	colType *BoolColumnType
	values  []bool
	valid   []bool
}

// DataType returns the ColumnType of this column
func (c *BoolColumn) DataType() databend.ColumnType {
	return c.colType
}

// Len returns the number of rows in this column
func (c *BoolColumn) Len() int {
	return len(c.values)
}

// IsNull returns true iff row i holds no value
func (c *BoolColumn) IsNull(i int) bool {
	return !c.valid[i]
}

// Value returns the value at row i as an interface, or nil for null slots
func (c *BoolColumn) Value(i int) interface{} {
	if !c.valid[i] {
		return nil
	}
	return c.values[i]
}

// Bool returns the value at row i, which is false for null slots
func (c *BoolColumn) Bool(i int) bool {
	return c.values[i]
}
