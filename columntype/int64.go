package columntype

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nonemaw/databend"
	"github.com/tidwall/gjson"
)

// Int64ColumnType is a column type which stores a 64-bit signed integer
type Int64ColumnType struct{}

// Name returns a human-readable identifier for this type
func (t *Int64ColumnType) Name() string {
	return "Int64"
}

// CreateDeserializer returns a fresh deserializer for an Int64 column
func (t *Int64ColumnType) CreateDeserializer(capacity int) databend.TypeDeserializer {
	return &int64Deserializer{
		colType: t,
		values:  make([]int64, 0, capacity),
		valid:   make([]bool, 0, capacity),
	}
}

type int64Deserializer struct {
	colType *Int64ColumnType
	values  []int64
	valid   []bool
}

func (d *int64Deserializer) DeJSON(value gjson.Result, settings *databend.FormatSettings) error {
	if value.Type == gjson.Null {
		d.values = append(d.values, 0)
		d.valid = append(d.valid, false)
		return nil
	}
	if value.Type != gjson.Number {
		return fmt.Errorf("value was not a number")
	}
	// Raw preserves integer precision beyond what float64 can represent
	n, err := strconv.ParseInt(strings.TrimSpace(value.Raw), 10, 64)
	if err != nil {
		f := value.Num
		if f != math.Trunc(f) {
			return fmt.Errorf("number %v is not an integer", f)
		}
		// out-of-range float-to-int conversion is implementation-defined
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return fmt.Errorf("number %v overflows a 64-bit integer", f)
		}
		n = int64(f)
	}
	d.values = append(d.values, n)
	d.valid = append(d.valid, true)
	return nil
}

func (d *int64Deserializer) FinishToColumn() databend.Column {
	col := &Int64Column{colType: d.colType, values: d.values, valid: d.valid}
	d.values = nil
	d.valid = nil
	return col
}

// Int64Column is a finalized column of 64-bit signed integers
type Int64Column struct {
	colType *Int64ColumnType
	values  []int64
	valid   []bool
}

// DataType returns the ColumnType of this column
func (c *Int64Column) DataType() databend.ColumnType {
	return c.colType
}

// Len returns the number of rows in this column
func (c *Int64Column) Len() int {
	return len(c.values)
}

// IsNull returns true iff row i holds no value
func (c *Int64Column) IsNull(i int) bool {
	return !c.valid[i]
}

// Value returns the value at row i as an interface, or nil for null slots
func (c *Int64Column) Value(i int) interface{} {
	if !c.valid[i] {
		return nil
	}
	return c.values[i]
}

// Int64 returns the value at row i, which is 0 for null slots
func (c *Int64Column) Int64(i int) int64 {
	return c.values[i]
}
