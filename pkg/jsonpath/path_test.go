package jsonpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/jsonpath"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want jsonpath.Path
	}{
		{"", jsonpath.Path{}},
		{"$", jsonpath.Path{}},
		{"name", jsonpath.Path{jsonpath.Field("name")}},
		{"user.name", jsonpath.Path{jsonpath.Field("user"), jsonpath.Field("name")}},
		{"key1[0]", jsonpath.Path{jsonpath.Field("key1"), jsonpath.Index(0)}},
		{"[0].key1", jsonpath.Path{jsonpath.Index(0), jsonpath.Field("key1")}},
		{"a[1][2]", jsonpath.Path{jsonpath.Field("a"), jsonpath.Index(1), jsonpath.Index(2)}},
		{`a["x.y"]`, jsonpath.Path{jsonpath.Field("a"), jsonpath.Field("x.y")}},
		{`a['x']`, jsonpath.Path{jsonpath.Field("a"), jsonpath.Field("x")}},
		{`a["say \"hi\""]`, jsonpath.Path{jsonpath.Field("a"), jsonpath.Field(`say "hi"`)}},
		{"$.user[3]", jsonpath.Path{jsonpath.Field("user"), jsonpath.Index(3)}},
		{"$price", jsonpath.Path{jsonpath.Field("$price")}},
		{"_key1", jsonpath.Path{jsonpath.Field("_key1")}},
		{"first name", jsonpath.Path{jsonpath.Field("first name")}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := jsonpath.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		".a",
		"a.",
		"a..b",
		"a[",
		"a[]",
		"a[x]",
		"a[-1]",
		"a[1",
		"a]",
		`a["x]`,
		"a[0]b",
		"$.",
		"a[99999999999999999999]",
	} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			_, err := jsonpath.Parse(in)
			require.ErrorIs(t, err, jsonpath.ErrInvalidPath)
		})
	}

	assert.Panics(t, func() { jsonpath.MustParse("a..b") })
}

func TestPathString(t *testing.T) {
	t.Parallel()

	t.Run("canonical forms round trip", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{
			"name",
			"user.name",
			"key1[0]",
			"[0].key1",
			"a[1][2].b",
			`a["x.y"]`,
			`["$price"]`,
			`a[""]`,
		} {
			p, err := jsonpath.Parse(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, p.String())
		}
	})

	t.Run("non canonical input is normalized", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a.x", jsonpath.MustParse(`a['x']`).String())
		assert.Equal(t, "user[3]", jsonpath.MustParse("$.user[3]").String())
	})

	t.Run("builders", func(t *testing.T) {
		t.Parallel()
		base := jsonpath.MustParse("items")
		p := base.Index(2).Field("sku")
		assert.Equal(t, "items[2].sku", p.String())
		assert.Equal(t, "items", base.String(), "receiver is not modified")
		assert.True(t, jsonpath.Path{}.IsEmpty())
		assert.False(t, p.IsEmpty())
	})
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, path, want string
	}{
		{"", "name", "name"},
		{"user", "", "user"},
		{"", "", ""},
		{"theArray", "[0].key1", "theArray[0].key1"},
		{"user", "name", "user.name"},
		{"user.address", "lines[1]", "user.address.lines[1]"},
		{"items[0]", "[1]", "items[0][1]"},
		{"a", `["x.y"]`, `a["x.y"]`},
		{"a..b", "[0]", "a..b[0]"},
		{"a..b", "c", "a..b.c"},
		{"user.", "k2", "user.k2"},
		{"user.", "[0]", "user[0]"},
		{".", "k", "k"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"+"+tt.path, func(t *testing.T) {
			t.Parallel()
			got := jsonpath.Join(tt.prefix, tt.path)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, ".[")
		})
	}
}
