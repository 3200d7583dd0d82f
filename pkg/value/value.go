package value

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Value is an immutable, classified view of an arbitrary Go value.
// The zero Value is null.
type Value struct {
	kind Kind
	raw  any
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null variant.
func (v Value) IsNull() bool { return v.kind == Null }

// Raw returns the normalized Go representation of v: string, int32, int64, float32,
// float64, decimal.Decimal, bool, time.Time, []byte, map[string]any, []any, or the
// original value for Unknown.
func (v Value) Raw() any { return v.raw }

// Of classifies x. Pointers are dereferenced, typed nil pointers are null, and named types
// are classified by their underlying kind.
func Of(x any) Value {
	switch t := x.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return Value{kind: String, raw: t}
	case int8:
		return Value{kind: Integer, raw: int32(t)}
	case int16:
		return Value{kind: Integer, raw: int32(t)}
	case int32:
		return Value{kind: Integer, raw: t}
	case uint8:
		return Value{kind: Integer, raw: int32(t)}
	case uint16:
		return Value{kind: Integer, raw: int32(t)}
	case int:
		return Value{kind: Long, raw: int64(t)}
	case int64:
		return Value{kind: Long, raw: t}
	case uint32:
		return Value{kind: Long, raw: int64(t)}
	case uint:
		return ofUint64(uint64(t))
	case uint64:
		return ofUint64(t)
	case float32:
		return Value{kind: Float, raw: t}
	case float64:
		return Value{kind: Double, raw: t}
	case json.Number:
		return ofNumber(t)
	case decimal.Decimal:
		return Value{kind: Decimal, raw: t}
	case *decimal.Decimal:
		if t == nil {
			return Value{}
		}
		return Value{kind: Decimal, raw: *t}
	case *big.Int:
		if t == nil {
			return Value{}
		}
		return Value{kind: Decimal, raw: decimal.NewFromBigInt(t, 0)}
	case *big.Float:
		if t == nil {
			return Value{}
		}
		d, err := decimal.NewFromString(t.Text('f', -1))
		if err != nil {
			return Value{kind: Unknown, raw: t}
		}
		return Value{kind: Decimal, raw: d}
	case bool:
		return Value{kind: Boolean, raw: t}
	case time.Time:
		return Value{kind: Date, raw: t}
	case *time.Time:
		if t == nil {
			return Value{}
		}
		return Value{kind: Date, raw: *t}
	case []byte:
		return Value{kind: Bytes, raw: t}
	case map[string]any:
		return Value{kind: Object, raw: t}
	case []any:
		return Value{kind: Array, raw: t}
	}
	return ofReflect(reflect.ValueOf(x))
}

func ofUint64(u uint64) Value {
	if u > math.MaxInt64 {
		return Value{kind: Decimal, raw: decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)}
	}
	return Value{kind: Long, raw: int64(u)}
}

// ofNumber picks the narrowest kind able to hold a decoded JSON number.
func ofNumber(n json.Number) Value {
	s := string(n)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return Value{kind: Integer, raw: int32(i)}
		}
		return Value{kind: Long, raw: i}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{kind: String, raw: s}
	}
	if d.IsInteger() {
		return Value{kind: Decimal, raw: d}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{kind: Double, raw: f}
	}
	return Value{kind: Decimal, raw: d}
}

func ofReflect(rv reflect.Value) Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return Value{kind: String, raw: rv.String()}
	case reflect.Bool:
		return Value{kind: Boolean, raw: rv.Bool()}
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return Value{kind: Integer, raw: int32(rv.Int())}
	case reflect.Uint8, reflect.Uint16:
		return Value{kind: Integer, raw: int32(rv.Uint())}
	case reflect.Int, reflect.Int64:
		return Value{kind: Long, raw: rv.Int()}
	case reflect.Uint, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ofUint64(rv.Uint())
	case reflect.Float32:
		return Value{kind: Float, raw: float32(rv.Float())}
	case reflect.Float64:
		return Value{kind: Double, raw: rv.Float()}
	case reflect.Slice:
		if rv.IsNil() {
			return Value{}
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Value{kind: Bytes, raw: rv.Bytes()}
		}
		return Value{kind: Array, raw: sliceOf(rv)}
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return Value{kind: Bytes, raw: b}
		}
		return Value{kind: Array, raw: sliceOf(rv)}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Value{}
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return Value{kind: Object, raw: m}
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return Value{kind: Date, raw: t}
		}
		if d, ok := rv.Interface().(decimal.Decimal); ok {
			return Value{kind: Decimal, raw: d}
		}
	}

	if !rv.IsValid() {
		return Value{}
	}
	return Value{kind: Unknown, raw: rv.Interface()}
}

func sliceOf(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
