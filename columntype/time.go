package columntype

import (
	"fmt"
	"time"

	"github.com/nonemaw/databend"
	"github.com/tidwall/gjson"
)

// TimeColumnType is a column type which stores a timestamp, parsed from a JSON
// string. Format is the column's layout in Go reference-time notation; it may
// be overridden for a whole source via FormatSettings.TimeFormat.
type TimeColumnType struct {
	Format string
}

// Name returns a human-readable identifier for this type
func (t *TimeColumnType) Name() string {
	return "Timestamp"
}

// CreateDeserializer returns a fresh deserializer for a Timestamp column
func (t *TimeColumnType) CreateDeserializer(capacity int) databend.TypeDeserializer {
	return &timeDeserializer{
		colType: t,
		values:  make([]time.Time, 0, capacity),
		valid:   make([]bool, 0, capacity),
	}
}

type timeDeserializer struct {
	colType *TimeColumnType
	values  []time.Time
	valid   []bool
}

func (d *timeDeserializer) DeJSON(value gjson.Result, settings *databend.FormatSettings) error {
	if value.Type == gjson.Null {
		d.values = append(d.values, time.Time{})
		d.valid = append(d.valid, false)
		return nil
	}
	if value.Type != gjson.String {
		return fmt.Errorf("value was not a timestamp string")
	}
	format := d.colType.Format
	if settings != nil && settings.TimeFormat != "" {
		format = settings.TimeFormat
	}
	if format == "" {
		format = time.RFC3339
	}
	loc := time.UTC
	if settings != nil && settings.Timezone != nil {
		loc = settings.Timezone
	}
	tval, err := time.ParseInLocation(format, value.Str, loc)
	if err != nil {
		return fmt.Errorf("value could not be parsed as a timestamp with format %s", format)
	}
	d.values = append(d.values, tval)
	d.valid = append(d.valid, true)
	return nil
}

func (d *timeDeserializer) FinishToColumn() databend.Column {
	col := &TimeColumn{colType: d.colType, values: d.values, valid: d.valid}
	d.values = nil
	d.valid = nil
	return col
}

// TimeColumn is a finalized column of timestamps
type TimeColumn struct {
	colType *TimeColumnType
	values  []time.Time
	valid   []bool
}

// DataType returns the ColumnType of this column
func (c *TimeColumn) DataType() databend.ColumnType {
	return c.colType
}

// Len returns the number of rows in this column
func (c *TimeColumn) Len() int {
	return len(c.values)
}

// IsNull returns true iff row i holds no value
func (c *TimeColumn) IsNull(i int) bool {
	return !c.valid[i]
}

// Value returns the value at row i as an interface, or nil for null slots
func (c *TimeColumn) Value(i int) interface{} {
	if !c.valid[i] {
		return nil
	}
	return c.values[i]
}

// Time returns the value at row i, which is the zero time for null slots
func (c *TimeColumn) Time(i int) time.Time {
	return c.values[i]
}
