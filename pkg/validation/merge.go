package validation

import "github.com/dmitrymomot/validkit/pkg/jsonpath"

// Merge appends every message of src to s under the same paths. Nothing is deduplicated:
// merging the same set twice doubles its messages.
func (s *Set) Merge(src *Set) { s.MergeWithPrefix("", src) }

// MergeWithPrefix appends every message of src to s with its path prefixed, so that messages
// of a nested validation land where the nested value lives:
//
//	parent.MergeWithPrefix("theArray", child) // child "[0].key1" -> "theArray[0].key1"
//	parent.MergeWithPrefix("user", child)     // child "name" -> "user.name", child "" -> "user"
func (s *Set) MergeWithPrefix(prefix string, src *Set) {
	if src == nil {
		return
	}

	// Snapshot first: src may be s.
	paths := src.Paths()
	msgs := make([][]Message, len(paths))
	for i, path := range paths {
		msgs[i] = src.Messages(path)
	}

	for i, path := range paths {
		target := jsonpath.Join(prefix, path)
		for _, m := range msgs[i] {
			s.Add(target, m)
		}
	}
}
