package value

import (
	"fmt"
	"strings"
)

// Kind identifies one variant of Value.
type Kind uint8

const (
	Null Kind = iota
	String
	Integer // int32
	Long    // int64
	Float   // float32
	Double  // float64
	Decimal // decimal.Decimal
	Boolean
	Date // time.Time
	Bytes
	Object // map[string]any
	Array  // []any
	Unknown
)

var kindNames = [...]string{
	Null:    "null",
	String:  "string",
	Integer: "integer",
	Long:    "long",
	Float:   "float",
	Double:  "double",
	Decimal: "decimal",
	Boolean: "boolean",
	Date:    "date",
	Bytes:   "bytes",
	Object:  "object",
	Array:   "array",
	Unknown: "unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsNumeric reports whether k is one of the five numeric kinds.
func (k Kind) IsNumeric() bool {
	switch k {
	case Integer, Long, Float, Double, Decimal:
		return true
	}
	return false
}

// ParseKind returns the kind with the given name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// rank orders kinds for mixed comparisons: the side with the higher rank decides
// which conversion both sides go through.
func (k Kind) rank() int {
	switch k {
	case Object:
		return 7
	case Array:
		return 6
	case Bytes:
		return 5
	case Date:
		return 4
	case Boolean:
		return 3
	case Integer, Long, Float, Double, Decimal:
		return 2
	case String:
		return 1
	}
	return 0
}

func dominant(a, b Kind) Kind {
	if b.rank() > a.rank() {
		return b
	}
	return a
}
