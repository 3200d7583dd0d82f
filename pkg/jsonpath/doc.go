// Package jsonpath parses, renders and joins the small path language used to address values in
// decoded JSON documents, and reads or writes documents along such paths.
//
// A Path is a sequence of segments, each either a field name or an array index:
//
//	user.name            // field "user", field "name"
//	tags[0]              // field "tags", index 0
//	[2].key1             // index 2, field "key1"
//	meta["x.y"]          // field "meta", field "x.y" (quoted because it contains a dot)
//	$.user.name          // a leading "$" root marker is accepted and dropped
//
// Rendering is canonical: String always produces dotted fields, bracketed indexes, and quotes
// only the field names that need them, so Parse(p.String()) returns p.
//
// # Joining
//
// Join inserts a prefix in front of a path structurally, which keeps the result valid when the
// path starts with an index:
//
//	jsonpath.Join("theArray", "[0].key1") // "theArray[0].key1"
//	jsonpath.Join("user", "name")         // "user.name"
//	jsonpath.Join("", "name")             // "name"
//	jsonpath.Join("user", "")             // "user"
//
// # Documents
//
// Get walks maps with string keys and slices. Put writes into a map[string]any document,
// creating intermediate objects and arrays and padding arrays with nil as needed:
//
//	doc := map[string]any{}
//	_ = jsonpath.Put(doc, jsonpath.MustParse("user.tags[1]"), "go")
//	// doc = {"user": {"tags": [nil, "go"]}}
package jsonpath
