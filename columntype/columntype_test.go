package columntype

import (
	"testing"
	"time"

	"github.com/nonemaw/databend"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var testSettings = &databend.FormatSettings{}

func TestInt64Deserializer(t *testing.T) {
	colType := &Int64ColumnType{}
	deser := colType.CreateDeserializer(4)

	require.Nil(t, deser.DeJSON(gjson.Parse("42"), testSettings))
	require.Nil(t, deser.DeJSON(gjson.Parse("null"), testSettings))
	require.Nil(t, deser.DeJSON(gjson.Result{}, testSettings)) // missing key
	require.Nil(t, deser.DeJSON(gjson.Parse("9007199254740993"), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("\"oops\""), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("1.5"), testSettings))

	col := deser.FinishToColumn()
	require.Equal(t, 4, col.Len())
	require.Equal(t, int64(42), col.Value(0))
	require.True(t, col.IsNull(1))
	require.Nil(t, col.Value(1))
	require.True(t, col.IsNull(2))
	// beyond float64's exact integer range, so Raw must be used verbatim
	require.Equal(t, int64(9007199254740993), col.Value(3))
	require.Equal(t, colType, col.DataType())
}

func TestInt64DeserializerRejectsOutOfRange(t *testing.T) {
	deser := (&Int64ColumnType{}).CreateDeserializer(4)

	require.Nil(t, deser.DeJSON(gjson.Parse("1e3"), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("1e300"), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("-1e300"), testSettings))
	// one past MaxInt64
	require.NotNil(t, deser.DeJSON(gjson.Parse("9223372036854775808"), testSettings))

	col := deser.FinishToColumn()
	require.Equal(t, 1, col.Len())
	require.Equal(t, int64(1000), col.Value(0))
}

func TestFloat64Deserializer(t *testing.T) {
	deser := (&Float64ColumnType{}).CreateDeserializer(4)

	require.Nil(t, deser.DeJSON(gjson.Parse("1.5"), testSettings))
	require.Nil(t, deser.DeJSON(gjson.Parse("null"), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("true"), testSettings))

	col := deser.FinishToColumn()
	require.Equal(t, 2, col.Len())
	require.Equal(t, 1.5, col.Value(0))
	require.True(t, col.IsNull(1))
}

func TestStringDeserializer(t *testing.T) {
	deser := (&StringColumnType{}).CreateDeserializer(4)

	require.Nil(t, deser.DeJSON(gjson.Parse("\"hello\""), testSettings))
	require.Nil(t, deser.DeJSON(gjson.Result{}, testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("17"), testSettings))

	col := deser.FinishToColumn()
	require.Equal(t, 2, col.Len())
	require.Equal(t, "hello", col.Value(0))
	require.True(t, col.IsNull(1))
}

func TestBoolDeserializer(t *testing.T) {
	deser := (&BoolColumnType{}).CreateDeserializer(4)

	require.Nil(t, deser.DeJSON(gjson.Parse("true"), testSettings))
	require.Nil(t, deser.DeJSON(gjson.Parse("false"), testSettings))
	require.Nil(t, deser.DeJSON(gjson.Parse("null"), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("\"true\""), testSettings))

	col := deser.FinishToColumn()
	require.Equal(t, 3, col.Len())
	require.Equal(t, true, col.Value(0))
	require.Equal(t, false, col.Value(1))
	require.True(t, col.IsNull(2))
}

func TestTimeDeserializer(t *testing.T) {
	colType := &TimeColumnType{Format: "2006-01-02"}
	deser := colType.CreateDeserializer(4)

	require.Nil(t, deser.DeJSON(gjson.Parse("\"2021-06-09\""), testSettings))
	require.Nil(t, deser.DeJSON(gjson.Parse("null"), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("\"not a date\""), testSettings))
	require.NotNil(t, deser.DeJSON(gjson.Parse("12345"), testSettings))

	col := deser.FinishToColumn()
	require.Equal(t, 2, col.Len())
	require.Equal(t, time.Date(2021, 6, 9, 0, 0, 0, 0, time.UTC), col.Value(0))
	require.True(t, col.IsNull(1))
}

func TestTimeDeserializerFormatOverride(t *testing.T) {
	colType := &TimeColumnType{Format: "2006-01-02"}
	settings := &databend.FormatSettings{TimeFormat: time.RFC3339}
	deser := colType.CreateDeserializer(1)

	require.NotNil(t, deser.DeJSON(gjson.Parse("\"2021-06-09\""), settings))
	require.Nil(t, deser.DeJSON(gjson.Parse("\"2021-06-09T10:30:00Z\""), settings))
}

func TestTimeDeserializerTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.Nil(t, err)
	colType := &TimeColumnType{Format: "2006-01-02 15:04:05"}
	deser := colType.CreateDeserializer(1)

	require.Nil(t, deser.DeJSON(gjson.Parse("\"2021-06-09 10:30:00\""), &databend.FormatSettings{Timezone: loc}))
	col := deser.FinishToColumn()
	require.Equal(t, time.Date(2021, 6, 9, 10, 30, 0, 0, loc), col.Value(0))
}
