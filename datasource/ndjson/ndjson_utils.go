package ndjson

import (
	"strings"

	"github.com/tidwall/gjson"
)

// normalizeRow produces the key-to-value view used for typed field lookup on
// one row. When idents are case-insensitive the object's key set is rebuilt
// with every key lowercased, so lookups see one canonical casing per row.
// Folding walks keys in document order, so when two keys collide after
// lowercasing the last occurrence wins deterministically. A valid line that
// is not a JSON object normalizes to an empty view, making every field null.
func normalizeRow(parsed gjson.Result, identCaseSensitive bool) map[string]gjson.Result {
	if identCaseSensitive {
		return parsed.Map()
	}
	folded := make(map[string]gjson.Result)
	if !parsed.IsObject() {
		return folded
	}
	parsed.ForEach(func(key, value gjson.Result) bool {
		folded[strings.ToLower(key.Str)] = value
		return true
	})
	return folded
}
