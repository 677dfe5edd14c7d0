package columntype

import (
	"fmt"

	"github.com/nonemaw/databend"
	"github.com/tidwall/gjson"
)

// Float64ColumnType is a column type which stores a 64-bit floating-point number
type Float64ColumnType struct{}

// Name returns a human-readable identifier for this type
func (t *Float64ColumnType) Name() string {
	return "Float64"
}

// CreateDeserializer returns a fresh deserializer for a Float64 column
func (t *Float64ColumnType) CreateDeserializer(capacity int) databend.TypeDeserializer {
	return &float64Deserializer{
		colType: t,
		values:  make([]float64, 0, capacity),
		valid:   make([]bool, 0, capacity),
	}
}

type float64Deserializer struct {
	colType *Float64ColumnType
	values  []float64
	valid   []bool
}

func (d *float64Deserializer) DeJSON(value gjson.Result, settings *databend.FormatSettings) error {
	if value.Type == gjson.Null {
		d.values = append(d.values, 0)
		d.valid = append(d.valid, false)
		return nil
	}
	if value.Type != gjson.Number {
		return fmt.Errorf("value was not a number")
	}
	d.values = append(d.values, value.Num)
	d.valid = append(d.valid, true)
	return nil
}

func (d *float64Deserializer) FinishToColumn() databend.Column {
	col := &Float64Column{colType: d.colType, values: d.values, valid: d.valid}
	d.values = nil
	d.valid = nil
	return col
}

// Float64Column is a finalized column of 64-bit floating-point numbers
type Float64Column struct {
	colType *Float64ColumnType
	values  []float64
	valid   []bool
}

// DataType returns the ColumnType of this column
func (c *Float64Column) DataType() databend.ColumnType {
	return c.colType
}

// Len returns the number of rows in this column
func (c *Float64Column) Len() int {
	return len(c.values)
}

// IsNull returns true iff row i holds no value
func (c *Float64Column) IsNull(i int) bool {
	return !c.valid[i]
}

// Value returns the value at row i as an interface, or nil for null slots
func (c *Float64Column) Value(i int) interface{} {
	if !c.valid[i] {
		return nil
	}
	return c.values[i]
}

// Float64 returns the value at row i, which is 0 for null slots
func (c *Float64Column) Float64(i int) float64 {
	return c.values[i]
}
