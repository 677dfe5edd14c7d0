// Package columntype provides the built-in column types understood by
// databend sources, together with their per-column deserializers and the
// finalized column representations those deserializers produce.
package columntype
