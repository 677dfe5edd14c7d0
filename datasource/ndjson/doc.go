// Package ndjson reads newline-delimited JSON streams into columnar
// DataBlocks. Each line of the input is one JSON object; a Source decodes
// lines through per-column deserializers and emits blocks of at most a
// configured number of rows, up to an optional total row budget. This package
// uses https://github.com/tidwall/gjson to process row data.
package ndjson
