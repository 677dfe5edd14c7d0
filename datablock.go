package databend

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DataBlock is a batch of fully-decoded rows materialized as one finalized
// Column per Schema field. A DataBlock is immutable once created and shares
// its Schema by reference with every other block produced by the same source.
type DataBlock struct {
	schema  Schema
	columns []Column
}

// CreateDataBlock wraps finalized columns into a DataBlock, enforcing that
// there is exactly one column per schema field and that all columns have the
// same number of rows.
func CreateDataBlock(schema Schema, columns []Column) (*DataBlock, error) {
	if len(columns) != schema.NumColumns() {
		return nil, fmt.Errorf("DataBlock requires %d columns, got %d", schema.NumColumns(), len(columns))
	}
	for i, col := range columns {
		if col.Len() != columns[0].Len() {
			return nil, fmt.Errorf("DataBlock columns have ragged lengths: column %d has %d rows, column 0 has %d", i, col.Len(), columns[0].Len())
		}
	}
	return &DataBlock{schema: schema, columns: columns}, nil
}

// Schema returns the Schema shared by every block of the producing source
func (b *DataBlock) Schema() Schema {
	return b.schema
}

// NumRows returns the number of rows in this DataBlock
func (b *DataBlock) NumRows() int {
	if len(b.columns) == 0 {
		return 0
	}
	return b.columns[0].Len()
}

// NumColumns returns the number of columns in this DataBlock
func (b *DataBlock) NumColumns() int {
	return len(b.columns)
}

// Column returns the finalized column at schema position i
func (b *DataBlock) Column(i int) Column {
	return b.columns[i]
}

// MarshalJSON renders this DataBlock as an array of row objects, primarily
// for debugging and tests.
func (b *DataBlock) MarshalJSON() ([]byte, error) {
	names := b.schema.ColumnNames()
	rows := make([]map[string]interface{}, b.NumRows())
	for i := range rows {
		row := make(map[string]interface{}, len(names))
		for j, name := range names {
			row[name] = b.columns[j].Value(i)
		}
		rows[i] = row
	}
	return json.Marshal(rows)
}
