package errors

import (
	"fmt"
)

// MaxValueBytes bounds the length of raw values embedded in error messages
const MaxValueBytes = 1024

// MaybeTruncated returns s unchanged if it fits within limit bytes, otherwise
// the first limit bytes prefixed with an indicator of the original length.
func MaybeTruncated(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return fmt.Sprintf("(first %dB of %dB): %s", limit, len(s), s[:limit])
}

// ReadError occurs when the underlying reader of a source fails mid-stream.
// Row is the cumulative row index the source had reached.
type ReadError struct {
	Row uint64
	Err error
}

// Error returns a textual representation of this ReadError
func (e ReadError) Error() string {
	return fmt.Sprintf("read NDJSON input failed at row %d: %s", e.Row, e.Err)
}

// Unwrap returns the underlying reader failure
func (e ReadError) Unwrap() error {
	return e.Err
}

// MalformedRecordError occurs when a non-blank input line is not valid JSON.
// Row is the cumulative row index the source had reached.
type MalformedRecordError struct {
	Row uint64
	Err error
}

// Error returns a textual representation of this MalformedRecordError
func (e MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d is not valid JSON: %s", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d is not valid JSON", e.Row)
}

// Unwrap returns the underlying parse failure, if any
func (e MalformedRecordError) Unwrap() error {
	return e.Err
}

// FieldCoercionError occurs when a field's raw value cannot be coerced to its
// column's declared type. Row is the cumulative row index, and Value holds the
// raw JSON value, already truncated to MaxValueBytes.
type FieldCoercionError struct {
	Row      uint64
	Column   string
	TypeName string
	Value    string
	Err      error
}

// CoercionFailed builds a FieldCoercionError, truncating the raw value to
// MaxValueBytes so that oversized input cannot produce unbounded messages.
func CoercionFailed(row uint64, column, typeName, rawValue string, err error) FieldCoercionError {
	return FieldCoercionError{
		Row:      row,
		Column:   column,
		TypeName: typeName,
		Value:    MaybeTruncated(rawValue, MaxValueBytes),
		Err:      err,
	}
}

// Error returns a textual representation of this FieldCoercionError
func (e FieldCoercionError) Error() string {
	return fmt.Sprintf("error at row %d column %s: type=%s, err=%s, value=%s",
		e.Row, e.Column, e.TypeName, e.Err, e.Value)
}

// Unwrap returns the deserializer's rejection
func (e FieldCoercionError) Unwrap() error {
	return e.Err
}
