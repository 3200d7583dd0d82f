package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: a field name, or an array index when IsIndex is set.
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
}

// Field returns a field segment.
func Field(name string) Segment { return Segment{Name: name} }

// Index returns an array index segment.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

// Path is an ordered sequence of segments. The empty path addresses the document root.
type Path []Segment

// Parse reads the textual form of a path. The empty string is the empty path.
func Parse(s string) (Path, error) {
	p := &parser{src: s}
	path, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidPath, s, err.Error())
	}
	return path, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// IsEmpty reports whether p has no segments.
func (p Path) IsEmpty() bool { return len(p) == 0 }

// Join returns a new path made of p followed by other.
func (p Path) Join(other Path) Path {
	out := make(Path, 0, len(p)+len(other))
	out = append(out, p...)
	return append(out, other...)
}

// Field returns a new path with a field segment appended.
func (p Path) Field(name string) Path { return p.Join(Path{Field(name)}) }

// Index returns a new path with an index segment appended.
func (p Path) Index(i int) Path { return p.Join(Path{Index(i)}) }

// String renders p canonically.
func (p Path) String() string {
	var sb strings.Builder
	for i, seg := range p {
		switch {
		case seg.IsIndex:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')
		case needsQuoting(seg.Name, i == 0):
			sb.WriteString(`["`)
			sb.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(seg.Name))
			sb.WriteString(`"]`)
		default:
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(seg.Name)
		}
	}
	return sb.String()
}

func needsQuoting(name string, first bool) bool {
	if name == "" || strings.ContainsAny(name, `.[]"'\`) {
		return true
	}
	return first && strings.HasPrefix(name, "$")
}

// Join prefixes path with prefix. An empty prefix leaves path unchanged and an empty path yields
// the prefix. Trailing dots of the prefix are dropped. Paths that do not parse are concatenated
// textually, with a dot only in front of a field.
func Join(prefix, path string) string {
	prefix = strings.TrimRight(prefix, ".")
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	}

	pp, errPrefix := Parse(prefix)
	sp, errPath := Parse(path)
	if errPrefix == nil && errPath == nil {
		return pp.Join(sp).String()
	}

	if strings.HasPrefix(path, "[") {
		return prefix + path
	}
	return prefix + "." + strings.TrimPrefix(path, ".")
}

type parser struct {
	src string
	pos int
}

func (p *parser) parse() (Path, error) {
	s := p.src
	if s == "" {
		return Path{}, nil
	}
	if s == "$" || strings.HasPrefix(s, "$.") || strings.HasPrefix(s, "$[") {
		p.pos = 1
		if p.pos < len(s) && s[p.pos] == '.' {
			p.pos++
			if p.pos == len(s) {
				return nil, fmt.Errorf("field name expected at %d", p.pos)
			}
		}
	}

	path := Path{}
	for p.pos < len(s) {
		switch c := s[p.pos]; {
		case c == '[':
			seg, err := p.bracket()
			if err != nil {
				return nil, err
			}
			path = append(path, seg)
		case c == '.':
			if len(path) == 0 {
				return nil, fmt.Errorf("unexpected '.' at %d", p.pos)
			}
			p.pos++
			name, err := p.name()
			if err != nil {
				return nil, err
			}
			path = append(path, Field(name))
		case c == ']':
			return nil, fmt.Errorf("unexpected ']' at %d", p.pos)
		default:
			if len(path) > 0 {
				return nil, fmt.Errorf("'.' or '[' expected at %d", p.pos)
			}
			name, err := p.name()
			if err != nil {
				return nil, err
			}
			path = append(path, Field(name))
		}
	}
	return path, nil
}

// name reads a bare field name up to the next separator.
func (p *parser) name() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' || c == '[' || c == ']' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("field name expected at %d", start)
	}
	return p.src[start:p.pos], nil
}

// bracket reads "[123]", `["name"]` or "['name']".
func (p *parser) bracket() (Segment, error) {
	p.pos++ // '['
	if p.pos >= len(p.src) {
		return Segment{}, fmt.Errorf("unterminated '[' at %d", p.pos-1)
	}

	var seg Segment
	switch q := p.src[p.pos]; q {
	case '"', '\'':
		name, err := p.quoted(q)
		if err != nil {
			return Segment{}, err
		}
		seg = Field(name)
	default:
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		if p.pos == start {
			return Segment{}, fmt.Errorf("array index expected at %d", start)
		}
		i, err := strconv.Atoi(p.src[start:p.pos])
		if err != nil {
			return Segment{}, fmt.Errorf("array index out of range at %d", start)
		}
		seg = Index(i)
	}

	if p.pos >= len(p.src) || p.src[p.pos] != ']' {
		return Segment{}, fmt.Errorf("']' expected at %d", p.pos)
	}
	p.pos++
	return seg, nil
}

func (p *parser) quoted(q byte) (string, error) {
	start := p.pos
	p.pos++ // opening quote
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.src):
			sb.WriteByte(p.src[p.pos+1])
			p.pos += 2
		case c == q:
			p.pos++
			return sb.String(), nil
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string at %d", start)
}
