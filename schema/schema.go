package schema

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/nonemaw/databend"
)

// field pairs a column name with its declared type. Field order within a
// schema defines the positional order of columns in every emitted DataBlock.
type field struct {
	name    string
	colType databend.ColumnType
}

type schema struct {
	fields []field
	byName map[string]int
}

// CreateSchema is a factory for Schemas
func CreateSchema() databend.Schema {
	return &schema{
		fields: []field{},
		byName: make(map[string]int),
	}
}

// Clone returns a copy of this Schema
func (s *schema) Clone() databend.Schema {
	newFields := make([]field, len(s.fields))
	copy(newFields, s.fields)
	newByName := make(map[string]int, len(s.byName))
	for k, v := range s.byName {
		newByName[k] = v
	}
	return &schema{fields: newFields, byName: newByName}
}

// Equals returns nil iff this and another Schema have identical ordered
// column names and type names
func (s *schema) Equals(otherSchema databend.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	if s.Fingerprint() == otherSchema.Fingerprint() {
		return nil
	}
	otherNames := otherSchema.ColumnNames()
	otherTypes := otherSchema.ColumnTypes()
	for i, f := range s.fields {
		if f.name != otherNames[i] {
			return fmt.Errorf("Column %d names do not match: %s vs %s", i, f.name, otherNames[i])
		}
		if f.colType.Name() != otherTypes[i].Name() {
			return fmt.Errorf("Column %s types do not match: %s vs %s", f.name, f.colType.Name(), otherTypes[i].Name())
		}
	}
	return fmt.Errorf("Schemas have unequal fingerprints")
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.fields)
}

// HasColumn returns true iff this Schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.byName[colName]
	return ok
}

// CreateColumn appends a column to this Schema, returning the same Schema for
// chaining. Duplicate column names are an error.
func (s *schema) CreateColumn(colName string, columnType databend.ColumnType) (databend.Schema, error) {
	if s.HasColumn(colName) {
		return nil, fmt.Errorf("Schema already contains column %s", colName)
	}
	s.byName[colName] = len(s.fields)
	s.fields = append(s.fields, field{name: colName, colType: columnType})
	return s, nil
}

// ColumnNames returns the names of the columns in this Schema, in order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// ColumnTypes returns the types of the columns in this Schema, in order
func (s *schema) ColumnTypes() []databend.ColumnType {
	types := make([]databend.ColumnType, len(s.fields))
	for i, f := range s.fields {
		types[i] = f.colType
	}
	return types
}

// Fingerprint digests the ordered column names and type names, giving a fast
// equality pre-check for Schemas shared across sources
func (s *schema) Fingerprint() uint64 {
	d := xxhash.New()
	for _, f := range s.fields {
		d.WriteString(f.name)
		d.Write([]byte{0})
		d.WriteString(f.colType.Name())
		d.Write([]byte{0})
	}
	return d.Sum64()
}
