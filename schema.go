package databend

// Schema is an ordered mapping from column names to column types. Column order
// defines the positional order of columns in every DataBlock produced against
// this Schema. Schemas are immutable once shared with a source: CreateColumn
// is only called while assembling one.
type Schema interface {
	Clone() Schema
	Equals(otherSchema Schema) error
	NumColumns() int
	HasColumn(colName string) bool
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	ColumnNames() []string
	ColumnTypes() []ColumnType
	Fingerprint() uint64 // a digest of the ordered column names and type names
}
