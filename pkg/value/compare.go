package value

import (
	"bytes"
	"reflect"
	"strings"
)

// Equivalent reports whether a and b hold the same value once coerced to the strongest kind
// present. Null is equivalent only to null.
func (c Converter) Equivalent(a, b any) bool {
	va, vb := Of(a), Of(b)
	if va.kind == Null || vb.kind == Null {
		return va.kind == vb.kind
	}

	switch k := dominant(va.kind, vb.kind); k {
	case Object:
		oa, okA := c.ToObject(va)
		ob, okB := c.ToObject(vb)
		if !okA || !okB || len(oa) != len(ob) {
			return false
		}
		for key, x := range oa {
			y, found := ob[key]
			if !found || !c.Equivalent(x, y) {
				return false
			}
		}
		return true
	case Array:
		aa, okA := c.ToArray(va)
		ab, okB := c.ToArray(vb)
		if !okA || !okB || len(aa) != len(ab) {
			return false
		}
		for i := range aa {
			if !c.Equivalent(aa[i], ab[i]) {
				return false
			}
		}
		return true
	case Unknown:
		return reflect.DeepEqual(va.raw, vb.raw)
	default:
		n, ok := c.compareAs(k, va, vb)
		return ok && n == 0
	}
}

// Compare orders a against b. Null sorts before every other value and equals null.
// The second result is false when the values cannot be brought to a common orderable kind;
// objects and arrays only compare equal or incomparable.
func (c Converter) Compare(a, b any) (int, bool) {
	va, vb := Of(a), Of(b)
	switch {
	case va.kind == Null && vb.kind == Null:
		return 0, true
	case va.kind == Null:
		return -1, true
	case vb.kind == Null:
		return 1, true
	}

	switch k := dominant(va.kind, vb.kind); k {
	case Object, Array, Unknown:
		if c.Equivalent(va, vb) {
			return 0, true
		}
		return 0, false
	default:
		return c.compareAs(k, va, vb)
	}
}

// compareAs converts both sides to kind k and orders them.
func (c Converter) compareAs(k Kind, a, b Value) (int, bool) {
	switch k {
	case Bytes:
		x, okA := c.ToBytes(a)
		y, okB := c.ToBytes(b)
		if !okA || !okB {
			return 0, false
		}
		return bytes.Compare(x, y), true
	case Date:
		x, okA := c.ToDate(a)
		y, okB := c.ToDate(b)
		if !okA || !okB {
			return 0, false
		}
		return x.Compare(y), true
	case Boolean:
		x, okA := c.ToBoolean(a)
		y, okB := c.ToBoolean(b)
		if !okA || !okB {
			return 0, false
		}
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		default:
			return 1, true
		}
	case Integer, Long, Float, Double, Decimal:
		x, okA := c.ToDecimal(a)
		y, okB := c.ToDecimal(b)
		if !okA || !okB {
			return 0, false
		}
		return x.Cmp(y), true
	case String:
		x, okA := c.ToString(a)
		y, okB := c.ToString(b)
		if !okA || !okB {
			return 0, false
		}
		return strings.Compare(x, y), true
	case Null, Object, Array, Unknown:
	}
	return 0, false
}

func Equivalent(a, b any) bool { return Default.Equivalent(a, b) }

func Compare(a, b any) (int, bool) { return Default.Compare(a, b) }
