// Package binder reads HTTP requests into JSON documents for validation.
//
// Document accepts JSON bodies (up to DefaultMaxJSONSize, numbers kept as json.Number) and
// url-encoded or multipart forms. Query reads the query string. Form and query field names
// are JSON paths, so flat HTML forms produce the same nested documents as JSON clients:
//
//	user.name=Ann&user.email=&tags[0]=go&tags[1]=json&ids[]=7
//
// binds to
//
//	{"user": {"name": "Ann", "email": ""}, "tags": ["go", "json"], "ids": ["7"]}
//
// Repeated fields become arrays. Multipart files are described by objects holding their
// sanitized file name, size and content type.
//
// Errors wrap one of the package sentinels; ErrBinderNotApplicable signals a target other than
// *any or *map[string]any.
package binder
