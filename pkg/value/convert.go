package value

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDateLayout renders dates as RFC 3339 with millisecond precision.
const DefaultDateLayout = "2006-01-02T15:04:05.000Z07:00"

// Converter performs the coercions between kinds. The zero Converter behaves like Default.
type Converter struct {
	// DateLayout is used to render dates as text and is tried first when parsing.
	DateLayout string
	// ParseLayouts are additional layouts accepted when text is converted to a date.
	ParseLayouts []string
}

// Default is the converter used by the package level helpers.
var Default = Converter{
	DateLayout: DefaultDateLayout,
	ParseLayouts: []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		time.DateOnly,
	},
}

func (c Converter) dateLayout() string {
	if c.DateLayout != "" {
		return c.DateLayout
	}
	return DefaultDateLayout
}

func (c Converter) parseLayouts() []string {
	layouts := c.ParseLayouts
	if layouts == nil {
		layouts = Default.ParseLayouts
	}
	return append([]string{c.dateLayout()}, layouts...)
}

// Convert converts x to the given kind. Null converts to every kind and stays null.
func (c Converter) Convert(x any, to Kind) (Value, error) {
	v := Of(x)
	if v.kind == Null || v.kind == to {
		return v, nil
	}

	var (
		out any
		ok  bool
	)
	switch to {
	case String:
		out, ok = c.ToString(v)
	case Integer:
		out, ok = c.ToInteger(v)
	case Long:
		out, ok = c.ToLong(v)
	case Float:
		out, ok = c.ToFloat(v)
	case Double:
		out, ok = c.ToDouble(v)
	case Decimal:
		out, ok = c.ToDecimal(v)
	case Boolean:
		out, ok = c.ToBoolean(v)
	case Date:
		out, ok = c.ToDate(v)
	case Bytes:
		out, ok = c.ToBytes(v)
	case Object:
		out, ok = c.ToObject(v)
	case Array:
		out, ok = c.ToArray(v)
	}
	if !ok {
		return Value{}, fmt.Errorf("%w: %s to %s", ErrNotConvertible, v.kind, to)
	}
	return Value{kind: to, raw: out}, nil
}

// CanConvert reports whether x is null, already of the given kind, or convertible to it.
func (c Converter) CanConvert(x any, to Kind) bool {
	_, err := c.Convert(x, to)
	return err == nil
}

// ToString renders x as text. Null has no text.
func (c Converter) ToString(x any) (string, bool) {
	v := Of(x)
	switch v.kind {
	case Null:
		return "", false
	case String:
		return v.raw.(string), true
	case Integer:
		return strconv.FormatInt(int64(v.raw.(int32)), 10), true
	case Long:
		return strconv.FormatInt(v.raw.(int64), 10), true
	case Float:
		return formatFloat(float64(v.raw.(float32)), 32), true
	case Double:
		return formatFloat(v.raw.(float64), 64), true
	case Decimal:
		return v.raw.(decimal.Decimal).String(), true
	case Boolean:
		return strconv.FormatBool(v.raw.(bool)), true
	case Date:
		return v.raw.(time.Time).Format(c.dateLayout()), true
	case Bytes:
		return base64.StdEncoding.EncodeToString(v.raw.([]byte)), true
	case Object, Array:
		b, err := json.Marshal(c.plain(v))
		if err != nil {
			return "", false
		}
		return string(b), true
	case Unknown:
		return fmt.Sprint(v.raw), true
	}
	return "", false
}

// formatFloat renders a float in plain notation; integral values keep a ".0" suffix so
// that 12 as a float reads "12.0", not "12".
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ToDecimal converts numeric kinds and numeric text.
func (c Converter) ToDecimal(x any) (decimal.Decimal, bool) {
	v := Of(x)
	switch v.kind {
	case Integer:
		return decimal.NewFromInt(int64(v.raw.(int32))), true
	case Long:
		return decimal.NewFromInt(v.raw.(int64)), true
	case Float:
		return decimalFromFloat(float64(v.raw.(float32)), 32)
	case Double:
		return decimalFromFloat(v.raw.(float64), 64)
	case Decimal:
		return v.raw.(decimal.Decimal), true
	case String:
		d, err := decimal.NewFromString(v.raw.(string))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case Null, Boolean, Date, Bytes, Object, Array, Unknown:
		return decimal.Decimal{}, false
	}
	return decimal.Decimal{}, false
}

// decimalFromFloat goes through the shortest text form, so float32(1.01) becomes
// exactly 1.01 rather than its binary approximation.
func decimalFromFloat(f float64, bits int) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(f, 'f', -1, bits))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

var (
	minLong = decimal.NewFromInt(math.MinInt64)
	maxLong = decimal.NewFromInt(math.MaxInt64)
)

// ToLong converts when the value is integral and fits in int64.
func (c Converter) ToLong(x any) (int64, bool) {
	v := Of(x)
	switch v.kind {
	case Integer:
		return int64(v.raw.(int32)), true
	case Long:
		return v.raw.(int64), true
	case Float, Double, Decimal, String:
		d, ok := c.ToDecimal(v)
		if !ok || !d.IsInteger() || d.LessThan(minLong) || d.GreaterThan(maxLong) {
			return 0, false
		}
		return d.IntPart(), true
	case Null, Boolean, Date, Bytes, Object, Array, Unknown:
		return 0, false
	}
	return 0, false
}

// ToInteger converts when the value is integral and fits in int32.
func (c Converter) ToInteger(x any) (int32, bool) {
	l, ok := c.ToLong(x)
	if !ok || l < math.MinInt32 || l > math.MaxInt32 {
		return 0, false
	}
	return int32(l), true
}

// ToDouble converts numeric kinds and numeric text to float64.
func (c Converter) ToDouble(x any) (float64, bool) {
	v := Of(x)
	switch v.kind {
	case Double:
		return v.raw.(float64), true
	case Integer, Long, Float, Decimal, String:
		d, ok := c.ToDecimal(v)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(d.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case Null, Boolean, Date, Bytes, Object, Array, Unknown:
		return 0, false
	}
	return 0, false
}

// ToFloat converts numeric kinds and numeric text to float32; values beyond the float32
// range are rejected.
func (c Converter) ToFloat(x any) (float32, bool) {
	v := Of(x)
	switch v.kind {
	case Float:
		return v.raw.(float32), true
	case Integer, Long, Double, Decimal, String:
		d, ok := c.ToDecimal(v)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(d.String(), 32)
		if err != nil {
			return 0, false
		}
		return float32(f), true
	case Null, Boolean, Date, Bytes, Object, Array, Unknown:
		return 0, false
	}
	return 0, false
}

// ToBoolean accepts booleans and the words "true"/"false" in any case.
func (c Converter) ToBoolean(x any) (bool, bool) {
	v := Of(x)
	switch v.kind {
	case Boolean:
		return v.raw.(bool), true
	case String:
		s := strings.TrimSpace(v.raw.(string))
		switch {
		case strings.EqualFold(s, "true"):
			return true, true
		case strings.EqualFold(s, "false"):
			return false, true
		}
	case Null, Integer, Long, Float, Double, Decimal, Date, Bytes, Object, Array, Unknown:
	}
	return false, false
}

// ToDate accepts dates and text in one of the converter layouts.
func (c Converter) ToDate(x any) (time.Time, bool) {
	v := Of(x)
	switch v.kind {
	case Date:
		return v.raw.(time.Time), true
	case String:
		s := strings.TrimSpace(v.raw.(string))
		for _, layout := range c.parseLayouts() {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	case Null, Integer, Long, Float, Double, Decimal, Boolean, Bytes, Object, Array, Unknown:
	}
	return time.Time{}, false
}

// ToBytes accepts byte slices and standard, padded Base64 text.
func (c Converter) ToBytes(x any) ([]byte, bool) {
	v := Of(x)
	switch v.kind {
	case Bytes:
		return v.raw.([]byte), true
	case String:
		b, err := base64.StdEncoding.Strict().DecodeString(v.raw.(string))
		if err != nil {
			return nil, false
		}
		return b, true
	case Null, Integer, Long, Float, Double, Decimal, Boolean, Date, Object, Array, Unknown:
	}
	return nil, false
}

// ToObject accepts objects and JSON object text.
func (c Converter) ToObject(x any) (map[string]any, bool) {
	v := Of(x)
	switch v.kind {
	case Object:
		return v.raw.(map[string]any), true
	case String:
		m, ok := decodeJSON(v.raw.(string)).(map[string]any)
		return m, ok
	case Null, Integer, Long, Float, Double, Decimal, Boolean, Date, Bytes, Array, Unknown:
	}
	return nil, false
}

// ToArray accepts arrays and JSON array text.
func (c Converter) ToArray(x any) ([]any, bool) {
	v := Of(x)
	switch v.kind {
	case Array:
		return v.raw.([]any), true
	case String:
		a, ok := decodeJSON(v.raw.(string)).([]any)
		return a, ok
	case Null, Integer, Long, Float, Double, Decimal, Boolean, Date, Bytes, Object, Unknown:
	}
	return nil, false
}

// decodeJSON returns nil for anything that is not a single JSON document.
func decodeJSON(s string) any {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return nil
	}
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil
	}
	if dec.More() {
		return nil
	}
	return out
}

// plain rewrites a value into something encoding/json renders canonically:
// numbers in their text form, dates in the converter layout.
func (c Converter) plain(x any) any {
	v := Of(x)
	switch v.kind {
	case Null:
		return nil
	case Object:
		src := v.raw.(map[string]any)
		m := make(map[string]any, len(src))
		for k, e := range src {
			m[k] = c.plain(e)
		}
		return m
	case Array:
		src := v.raw.([]any)
		a := make([]any, len(src))
		for i, e := range src {
			a[i] = c.plain(e)
		}
		return a
	case Integer, Long, Float, Double, Decimal:
		s, _ := c.ToString(v)
		return json.Number(s)
	case Date, Unknown:
		s, _ := c.ToString(v)
		return s
	case String, Boolean, Bytes:
		return v.raw
	}
	return v.raw
}

// Package level helpers bound to Default.

func Convert(x any, to Kind) (Value, error) { return Default.Convert(x, to) }

func CanConvert(x any, to Kind) bool { return Default.CanConvert(x, to) }

func ToString(x any) (string, bool) { return Default.ToString(x) }

func ToInteger(x any) (int32, bool) { return Default.ToInteger(x) }

func ToLong(x any) (int64, bool) { return Default.ToLong(x) }

func ToFloat(x any) (float32, bool) { return Default.ToFloat(x) }

func ToDouble(x any) (float64, bool) { return Default.ToDouble(x) }

func ToDecimal(x any) (decimal.Decimal, bool) { return Default.ToDecimal(x) }

func ToBoolean(x any) (bool, bool) { return Default.ToBoolean(x) }

func ToDate(x any) (time.Time, bool) { return Default.ToDate(x) }

func ToBytes(x any) ([]byte, bool) { return Default.ToBytes(x) }

func ToObject(x any) (map[string]any, bool) { return Default.ToObject(x) }

func ToArray(x any) ([]any, bool) { return Default.ToArray(x) }
