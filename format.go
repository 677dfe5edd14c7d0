package databend

import "time"

// FormatSettings bundles the parse configuration shared by every column of a
// source. IdentCaseSensitive controls how JSON object keys are matched against
// schema column names; the remaining options are opaque to sources and
// consumed only by individual deserializers. FormatSettings are logically
// immutable and shared by pointer across all rows of a source.
type FormatSettings struct {
	IdentCaseSensitive bool
	// TimeFormat overrides the layout used by time columns. When empty, each
	// column's own layout applies.
	TimeFormat string
	// Timezone is the location timestamps without a zone are interpreted in.
	// Defaults to UTC when nil.
	Timezone *time.Location
}
