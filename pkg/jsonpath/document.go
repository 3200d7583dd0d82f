package jsonpath

import (
	"fmt"
	"reflect"
)

// Get returns the value at p inside doc. It walks map[string]any and []any directly and any
// other string-keyed map or slice through reflection.
func Get(doc any, p Path) (any, bool) {
	cur := doc
	for _, seg := range p {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Lookup parses path and calls Get.
func Lookup(doc any, path string) (any, bool, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, false, err
	}
	v, ok := Get(doc, p)
	return v, ok, nil
}

func child(node any, seg Segment) (any, bool) {
	switch t := node.(type) {
	case map[string]any:
		if seg.IsIndex {
			return nil, false
		}
		v, ok := t[seg.Name]
		return v, ok
	case []any:
		if !seg.IsIndex || seg.Index >= len(t) {
			return nil, false
		}
		return t[seg.Index], true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(node)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if seg.IsIndex || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(seg.Name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		if !seg.IsIndex || seg.Index >= rv.Len() {
			return nil, false
		}
		return rv.Index(seg.Index).Interface(), true
	}
	return nil, false
}

// MaxPutIndex bounds the array growth Put will perform for a single index.
const MaxPutIndex = 1 << 16

// Put stores v at p inside doc, creating objects for field segments and arrays for index
// segments that do not exist yet. Arrays grow as needed and are padded with nil.
// The root of a document is always an object, so p must start with a field.
func Put(doc map[string]any, p Path, v any) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrNotContainer)
	}
	if p.IsEmpty() || p[0].IsIndex {
		return fmt.Errorf("%w: %q does not start with a field", ErrInvalidPath, p.String())
	}
	_, err := put(doc, p, v, Path{})
	return err
}

func put(node any, rest Path, v any, at Path) (any, error) {
	if len(rest) == 0 {
		return v, nil
	}
	seg := rest[0]
	here := at.Join(Path{seg})

	if seg.IsIndex {
		var arr []any
		switch t := node.(type) {
		case nil:
		case []any:
			arr = t
		default:
			return nil, fmt.Errorf("%w: %q", ErrNotContainer, at.String())
		}
		if seg.Index > MaxPutIndex {
			return nil, fmt.Errorf("%w: index %d above %d", ErrInvalidPath, seg.Index, MaxPutIndex)
		}
		for len(arr) <= seg.Index {
			arr = append(arr, nil)
		}
		c, err := put(arr[seg.Index], rest[1:], v, here)
		if err != nil {
			return nil, err
		}
		arr[seg.Index] = c
		return arr, nil
	}

	var m map[string]any
	switch t := node.(type) {
	case nil:
		m = map[string]any{}
	case map[string]any:
		m = t
	default:
		return nil, fmt.Errorf("%w: %q", ErrNotContainer, at.String())
	}
	c, err := put(m[seg.Name], rest[1:], v, here)
	if err != nil {
		return nil, err
	}
	m[seg.Name] = c
	return m, nil
}
