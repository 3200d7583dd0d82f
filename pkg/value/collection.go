package value

import (
	"sort"
	"unicode/utf8"
)

// Length returns the number of characters in the text form of x.
// Null has no length.
func (c Converter) Length(x any) (int, bool) {
	s, ok := c.ToString(x)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(s), true
}

// Elements returns the elements of an array, of a byte array (one element per byte) or of
// JSON array text.
func (c Converter) Elements(x any) ([]any, bool) {
	v := Of(x)
	switch v.kind {
	case Array:
		return v.raw.([]any), true
	case Bytes:
		b := v.raw.([]byte)
		items := make([]any, len(b))
		for i, e := range b {
			items[i] = e
		}
		return items, true
	case String:
		return c.ToArray(v)
	}
	return nil, false
}

// Size counts the elements of an array, the bytes of a byte array or the entries of an object,
// including JSON text of either shape. With ignoreNull, null elements are not counted.
func (c Converter) Size(x any, ignoreNull bool) (int, bool) {
	var items []any
	if a, ok := c.Elements(x); ok {
		items = a
	} else if o, ok := c.ToObject(x); ok {
		items = objectValues(o)
	} else {
		return 0, false
	}

	if !ignoreNull {
		return len(items), true
	}
	n := 0
	for _, item := range items {
		if !Of(item).IsNull() {
			n++
		}
	}
	return n, true
}

func objectValues(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

func Length(x any) (int, bool) { return Default.Length(x) }

func Elements(x any) ([]any, bool) { return Default.Elements(x) }

func Size(x any, ignoreNull bool) (int, bool) { return Default.Size(x, ignoreNull) }
