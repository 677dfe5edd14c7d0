// Package databend contains the core contracts of the row-to-column ingestion
// path for a columnar query engine. This root package defines the types which
// are employed when feeding row-oriented sources (such as NDJSON streams) into
// columnar DataBlocks. Concrete implementations live in the subpackages:
// schema, columntype and datasource/ndjson.
package databend
