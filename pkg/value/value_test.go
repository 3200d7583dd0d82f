package value_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/value"
)

type customString string

func TestOf(t *testing.T) {
	t.Parallel()

	now := time.Now()
	var nilTime *time.Time
	var nilSlice []string

	tests := []struct {
		name string
		in   any
		want value.Kind
	}{
		{"nil", nil, value.Null},
		{"typed nil pointer", nilTime, value.Null},
		{"nil slice", nilSlice, value.Null},
		{"string", "abc", value.String},
		{"named string", customString("abc"), value.String},
		{"int32", int32(1), value.Integer},
		{"int16", int16(1), value.Integer},
		{"int", 1, value.Long},
		{"int64", int64(1), value.Long},
		{"huge uint64", uint64(math.MaxUint64), value.Decimal},
		{"float32", float32(1.5), value.Float},
		{"float64", 1.5, value.Double},
		{"decimal", decimal.NewFromInt(3), value.Decimal},
		{"json small int", json.Number("12"), value.Integer},
		{"json long", json.Number("3000000000"), value.Long},
		{"json fraction", json.Number("1.5"), value.Double},
		{"bool", true, value.Boolean},
		{"time", now, value.Date},
		{"time pointer", &now, value.Date},
		{"bytes", []byte("x"), value.Bytes},
		{"object", map[string]any{"a": 1}, value.Object},
		{"typed map", map[string]int{"a": 1}, value.Object},
		{"array", []any{1, "a"}, value.Array},
		{"typed slice", []string{"a"}, value.Array},
		{"fixed array", [2]int{1, 2}, value.Array},
		{"struct", struct{ A int }{1}, value.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, value.Of(tt.in).Kind())
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := value.ParseKind("Decimal")
	require.NoError(t, err)
	assert.Equal(t, value.Decimal, k)

	_, err = value.ParseKind("money")
	require.ErrorIs(t, err, value.ErrUnknownKind)
}

func TestToString(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 5, 10, 20, 30, 123000000, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"integer", int32(1234), "1234"},
		{"long", int64(-5), "-5"},
		{"float with fraction", float32(1.01), "1.01"},
		{"integral float", float32(12), "12.0"},
		{"small integral float", float32(2), "2.0"},
		{"double", 0.5, "0.5"},
		{"decimal", decimal.RequireFromString("123.450"), "123.45"},
		{"bool", false, "false"},
		{"date", date, "2024-03-05T10:20:30.123Z"},
		{"bytes", []byte("hello"), "aGVsbG8="},
		{"object with sorted keys", map[string]any{"b": 1, "a": "x"}, `{"a":"x","b":1}`},
		{"array", []any{1, float32(2), nil}, `[1,2.0,null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := value.ToString(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("null has no text", func(t *testing.T) {
		t.Parallel()
		_, ok := value.ToString(nil)
		assert.False(t, ok)
	})
}

func TestNumericConversions(t *testing.T) {
	t.Parallel()

	t.Run("string to numbers", func(t *testing.T) {
		t.Parallel()
		i, ok := value.ToInteger("123")
		require.True(t, ok)
		assert.Equal(t, int32(123), i)

		l, ok := value.ToLong("123.0")
		require.True(t, ok)
		assert.Equal(t, int64(123), l)

		f, ok := value.ToFloat("1.25")
		require.True(t, ok)
		assert.Equal(t, float32(1.25), f)

		d, ok := value.ToDouble("-0.5")
		require.True(t, ok)
		assert.Equal(t, -0.5, d)

		dec, ok := value.ToDecimal("10.10")
		require.True(t, ok)
		assert.True(t, dec.Equal(decimal.RequireFromString("10.1")))
	})

	t.Run("lossy integer conversions fail", func(t *testing.T) {
		t.Parallel()
		_, ok := value.ToInteger(12.5)
		assert.False(t, ok)
		_, ok = value.ToInteger(int64(math.MaxInt32) + 1)
		assert.False(t, ok)
		_, ok = value.ToLong("1e30")
		assert.False(t, ok)
	})

	t.Run("float overflow fails", func(t *testing.T) {
		t.Parallel()
		_, ok := value.ToFloat(1e300)
		assert.False(t, ok)
	})

	t.Run("invalid text fails", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "abc", "12a", "NaN"} {
			_, ok := value.ToDecimal(s)
			assert.False(t, ok, s)
		}
	})

	t.Run("booleans and dates are not numbers", func(t *testing.T) {
		t.Parallel()
		_, ok := value.ToLong(true)
		assert.False(t, ok)
		_, ok = value.ToDouble(time.Now())
		assert.False(t, ok)
	})
}

func TestToBoolean(t *testing.T) {
	t.Parallel()

	b, ok := value.ToBoolean("TRUE")
	require.True(t, ok)
	assert.True(t, b)

	b, ok = value.ToBoolean("False")
	require.True(t, ok)
	assert.False(t, b)

	_, ok = value.ToBoolean(1)
	assert.False(t, ok)
	_, ok = value.ToBoolean("yes")
	assert.False(t, ok)
}

func TestToDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)

	got, ok := value.ToDate("2024-03-05T10:20:30Z")
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = value.ToDate("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, 5, got.Day())

	_, ok = value.ToDate(int64(1709634030))
	assert.False(t, ok)
	_, ok = value.ToDate("yesterday")
	assert.False(t, ok)

	c := value.Converter{DateLayout: "02/01/2006"}
	got, ok = c.ToDate("05/03/2024")
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())
	s, ok := c.ToString(want)
	require.True(t, ok)
	assert.Equal(t, "05/03/2024", s)
}

func TestToBytes(t *testing.T) {
	t.Parallel()

	b, ok := value.ToBytes("aGVsbG8=")
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), b)

	_, ok = value.ToBytes("aGVsbG8")
	assert.False(t, ok, "missing padding")
	_, ok = value.ToBytes("aGV!bG8=")
	assert.False(t, ok)
	_, ok = value.ToBytes(12)
	assert.False(t, ok)
}

func TestObjectAndArrayText(t *testing.T) {
	t.Parallel()

	o, ok := value.ToObject(`{"a": 1, "b": [true]}`)
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), o["a"])

	a, ok := value.ToArray(`[1, "x"]`)
	require.True(t, ok)
	assert.Len(t, a, 2)

	_, ok = value.ToObject(`[1]`)
	assert.False(t, ok)
	_, ok = value.ToArray(`{"a": 1}`)
	assert.False(t, ok)
	_, ok = value.ToArray(`[1] [2]`)
	assert.False(t, ok)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	v, err := value.Convert("42", value.Integer)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v.Raw())

	v, err = value.Convert(nil, value.Date)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = value.Convert(true, value.Long)
	require.ErrorIs(t, err, value.ErrNotConvertible)

	assert.True(t, value.CanConvert(nil, value.Bytes))
	assert.True(t, value.CanConvert(int32(1), value.Integer))
	assert.True(t, value.CanConvert("true", value.Boolean))
	assert.False(t, value.CanConvert("abc", value.Double))
}
