// Package validation checks values against rules and collects the outcome as leveled messages
// keyed by path.
//
// A Set is the aggregate: for every path (a plain key such as "name", or a JSON path such as
// "tags[0]" or "user.email") it keeps the ordered list of messages produced so far, and it
// derives an overall status where the worst level wins (Success < Warning < Error).
//
// Rules are started from the set, pointed at a key and a value, and finished with Validate:
//
//	set := validation.NewSet()
//	set.NotBlank().Key("name").Element(form.Name).Validate()
//	set.MinLength(3).Key("name").Element(form.Name).ValidateIfNoMessage()
//	set.EquivalentOrGreater(18).Key("age").Element(form.Age).TreatErrorAsWarning().Validate()
//
//	if !set.IsValid() {
//		return set.Err() // *validation.Error
//	}
//
// # Coercion
//
// Rules compare values through package value: numbers, numeric text, dates and date text,
// byte slices and Base64 text, objects or arrays and their JSON text are all interchangeable
// where the conversion is lossless. Equivalent(123) accepts "123", int64(123) and
// decimal 123; Equivalent(map{"a": 123}) accepts `{"a": "123"}`.
//
// Null is equivalent only to null and orders before every other value, so EquivalentOrGreater(5)
// fails for null while Greater(nil) passes for 4. Length, size and pattern rules let null pass;
// combine them with NotNull when a value is required.
//
// # Arrays
//
// All validates each element of an array and records element i at key[i]. An extra
// "array itself" message can be recorded when any element failed, or when all passed:
//
//	set.MinLength(4).Key("tags").All(tags).ArrayItselfAddFailMessage("").Validate()
//	// element failures at "tags[1]", "tags[7]"; summary at "_tags"
//
// # Documents and merging
//
// A set bound to a decoded JSON document reads values by path with JSONPath and JSONPathAll.
// Sets built for nested structures are combined with MergeWithPrefix, which rewrites paths
// structurally ("items" + "[0].sku" = "items[0].sku").
//
// # Messages
//
// Every message has a level, a code and a text. Codes are the Code* constants unless replaced
// with FailMessageCode. Default texts come from a Dictionary; the built-in one is an i18n
// translator over embedded YAML catalogues, and NewFactory can layer a directory of
// catalogues on top (see Config).
//
// Builder misuse (blank key, missing element, JSON path without document) is a programming
// error and panics with one of the Err* sentinels instead of becoming a message.
package validation
