// Package value models the values a validation rule can see as a closed set of kinds and
// implements the conversion matrix between them.
//
// Rules never branch on arbitrary Go types. A value is first classified with Of into one of
// the Kind constants (null, string, integer, long, float, double, decimal, boolean, date,
// bytes, object, array), and every coercion is then an explicit switch over the source kind.
// This keeps the matrix exhaustive: adding a kind forces every To* function to decide what to
// do with it.
//
// # Classification
//
//	value.Of(nil)                   // Null
//	value.Of(int32(5))              // Integer
//	value.Of(5)                     // Long (Go int is 64-bit)
//	value.Of(json.Number("5"))      // Integer, decoded JSON numbers use the narrowest kind
//	value.Of(float32(1.5))          // Float
//	value.Of(decimal.RequireFromString("1.50")) // Decimal
//	value.Of(map[string]any{})      // Object
//	value.Of([]string{"a"})         // Array (any slice or array, via reflect)
//
// # Coercion
//
// A Converter holds the date layouts used when dates meet text. The package level helpers
// (ToString, ToLong, Equivalent, Compare, ...) use Default.
//
//	value.ToString(float32(12))            // "12.0", true
//	value.ToLong("123.0")                  // 123, true (lossless)
//	value.ToLong(12.5)                     // 0, false
//	value.ToBoolean("TRUE")                // true, true
//	value.ToBoolean(1)                     // false, false (numbers never become booleans)
//	value.ToBytes("aGVsbG8=")              // []byte("hello"), true
//
// # Equality and ordering
//
// Equivalent and Compare coerce both sides to the strongest kind present. Nulls are equal only
// to nulls and sort before everything else. Objects and arrays are compared deeply with the
// same coercion applied at every leaf, so {"a": 123} is equivalent to {"a": "123"}.
package value
