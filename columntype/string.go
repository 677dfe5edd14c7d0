package columntype

import (
	"fmt"

	"github.com/nonemaw/databend"
	"github.com/tidwall/gjson"
)

// StringColumnType is a column type which stores a variable-length string value
type StringColumnType struct{}

// Name returns a human-readable identifier for this type
func (t *StringColumnType) Name() string {
	return "String"
}

// CreateDeserializer returns a fresh deserializer for a String column
func (t *StringColumnType) CreateDeserializer(capacity int) databend.TypeDeserializer {
	return &stringDeserializer{
		colType: t,
		values:  make([]string, 0, capacity),
		valid:   make([]bool, 0, capacity),
	}
}

type stringDeserializer struct {
	colType *StringColumnType
	values  []string
	valid   []bool
}

func (d *stringDeserializer) DeJSON(value gjson.Result, settings *databend.FormatSettings) error {
	if value.Type == gjson.Null {
		d.values = append(d.values, "")
		d.valid = append(d.valid, false)
		return nil
	}
	if value.Type != gjson.String {
		return fmt.Errorf("value was not a string")
	}
	d.values = append(d.values, value.Str)
	d.valid = append(d.valid, true)
	return nil
}

func (d *stringDeserializer) FinishToColumn() databend.Column {
	col := &StringColumn{colType: d.colType, values: d.values, valid: d.valid}
	d.values = nil
	d.valid = nil
	return col
}

// StringColumn is a finalized column of variable-length strings
type StringColumn struct {
	colType *StringColumnType
	values  []string
	valid   []bool
}

// DataType returns the ColumnType of this column
func (c *StringColumn) DataType() databend.ColumnType {
	return c.colType
}

// Len returns the number of rows in this column
func (c *StringColumn) Len() int {
	return len(c.values)
}

// IsNull returns true iff row i holds no value
func (c *StringColumn) IsNull(i int) bool {
	return !c.valid[i]
}

// Value returns the value at row i as an interface, or nil for null slots
func (c *StringColumn) Value(i int) interface{} {
	if !c.valid[i] {
		return nil
	}
	return c.values[i]
}

// String returns the value at row i, which is "" for null slots
func (c *StringColumn) String(i int) string {
	return c.values[i]
}
