package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/value"
)

// RuleKind names one validation check.
type RuleKind uint8

const (
	RuleNotNull RuleKind = iota + 1
	RuleNull
	RuleNotBlank
	RuleBlank
	RuleEquivalent
	RuleNotEquivalent
	RuleLess
	RuleGreater
	RuleEquivalentOrLess
	RuleEquivalentOrGreater
	RuleMinLength
	RuleMaxLength
	RuleLength
	RuleMinSize
	RuleMaxSize
	RuleSize
	RulePattern
	RuleNotPattern
	RuleIsOfTypeOrNull
	RuleCanBeConvertedTo
	RulePredicate
)

var ruleNames = map[RuleKind]string{
	RuleNotNull:             "not_null",
	RuleNull:                "null",
	RuleNotBlank:            "not_blank",
	RuleBlank:               "blank",
	RuleEquivalent:          "equivalent",
	RuleNotEquivalent:       "not_equivalent",
	RuleLess:                "less",
	RuleGreater:             "greater",
	RuleEquivalentOrLess:    "equivalent_or_less",
	RuleEquivalentOrGreater: "equivalent_or_greater",
	RuleMinLength:           "min_length",
	RuleMaxLength:           "max_length",
	RuleLength:              "length",
	RuleMinSize:             "min_size",
	RuleMaxSize:             "max_size",
	RuleSize:                "size",
	RulePattern:             "pattern",
	RuleNotPattern:          "not_pattern",
	RuleIsOfTypeOrNull:      "is_of_type_or_null",
	RuleCanBeConvertedTo:    "can_be_converted_to",
	RulePredicate:           "predicate",
}

func (k RuleKind) String() string {
	if name, ok := ruleNames[k]; ok {
		return name
	}
	return "rule(" + strconv.Itoa(int(k)) + ")"
}

// Rule is a configured check. Build rules with the constructors below; the zero Rule is invalid.
type Rule struct {
	kind         RuleKind
	ref          any
	bound        int
	expr         string
	re           *regexp.Regexp
	typ          value.Kind
	acceptBase64 bool
	ignoreNull   bool
	pred         func(any) bool
}

// Verdict is the outcome of evaluating a rule against one value.
type Verdict struct {
	Passed bool
	// Code is the default message code; it differs from the rule code when the value could
	// not be evaluated at all (validation.not_an_array for size rules).
	Code   string
	Params map[string]string
}

func NotNull() Rule  { return Rule{kind: RuleNotNull} }
func Null() Rule     { return Rule{kind: RuleNull} }
func NotBlank() Rule { return Rule{kind: RuleNotBlank} }
func Blank() Rule    { return Rule{kind: RuleBlank} }

// Equivalent passes when the value equals ref after coercion. Null equals only null.
func Equivalent(ref any) Rule    { return Rule{kind: RuleEquivalent, ref: ref} }
func NotEquivalent(ref any) Rule { return Rule{kind: RuleNotEquivalent, ref: ref} }

// Less passes when the value orders strictly before ref. Null orders before every other value,
// so Less(5) passes for null and Less(nil) never passes.
func Less(ref any) Rule                { return Rule{kind: RuleLess, ref: ref} }
func Greater(ref any) Rule             { return Rule{kind: RuleGreater, ref: ref} }
func EquivalentOrLess(ref any) Rule    { return Rule{kind: RuleEquivalentOrLess, ref: ref} }
func EquivalentOrGreater(ref any) Rule { return Rule{kind: RuleEquivalentOrGreater, ref: ref} }

// MinLength checks the character count of the value's text form. Null values pass all
// length rules.
func MinLength(n int) Rule { return boundRule(RuleMinLength, n) }
func MaxLength(n int) Rule { return boundRule(RuleMaxLength, n) }
func Length(n int) Rule    { return boundRule(RuleLength, n) }

// MinSize checks the element count of an array or object, or of JSON text holding one. Null
// values pass; other values fail with validation.not_an_array.
func MinSize(n int) Rule { return boundRule(RuleMinSize, n) }
func MaxSize(n int) Rule { return boundRule(RuleMaxSize, n) }
func Size(n int) Rule    { return boundRule(RuleSize, n) }

func boundRule(kind RuleKind, n int) Rule {
	if n < 0 {
		panic(fmt.Errorf("%w: %s bound %d is negative", ErrInvalidRule, kind, n))
	}
	return Rule{kind: kind, bound: n}
}

// Pattern passes when the whole text form of the value matches expr (RE2 syntax).
// It panics when expr does not compile.
func Pattern(expr string) Rule { return patternRule(RulePattern, expr) }

// NotPattern passes when the text form of the value does not match expr as a whole.
func NotPattern(expr string) Rule { return patternRule(RuleNotPattern, expr) }

func patternRule(kind RuleKind, expr string) Rule {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		panic(fmt.Errorf("%w: %q: %w", ErrInvalidPattern, expr, err))
	}
	return Rule{kind: kind, expr: expr, re: re}
}

// IsOfTypeOrNull passes for null and for values that already are of kind k, without any
// coercion. Integers also satisfy Long and floats also satisfy Double.
func IsOfTypeOrNull(k value.Kind) Rule { return Rule{kind: RuleIsOfTypeOrNull, typ: k} }

// IsByteArrayOrNull is IsOfTypeOrNull(value.Bytes) that optionally also accepts valid Base64
// text.
func IsByteArrayOrNull(acceptBase64 bool) Rule {
	return Rule{kind: RuleIsOfTypeOrNull, typ: value.Bytes, acceptBase64: acceptBase64}
}

// CanBeConvertedTo passes for null, for values of kind k and for values losslessly
// convertible to k.
func CanBeConvertedTo(k value.Kind) Rule { return Rule{kind: RuleCanBeConvertedTo, typ: k} }

// Predicate delegates the check to fn. Nulls are passed to fn as nil.
func Predicate(fn func(v any) bool) Rule {
	if fn == nil {
		panic(fmt.Errorf("%w: nil predicate", ErrInvalidRule))
	}
	return Rule{kind: RulePredicate, pred: fn}
}

// Kind returns the check r performs.
func (r Rule) Kind() RuleKind { return r.kind }

// IgnoringNullValues returns a copy of r that leaves null elements out of size counts.
func (r Rule) IgnoringNullValues() Rule {
	r.ignoreNull = true
	return r
}

// Code returns the default message code of r.
func (r Rule) Code() string {
	switch r.kind {
	case RuleIsOfTypeOrNull:
		return CodeIsOfTypeOrNull(r.typ)
	case RuleCanBeConvertedTo:
		return CodeCanBeConvertedTo(r.typ)
	}
	return "validation." + r.kind.String()
}

// Params returns the placeholders available to the default message text.
func (r Rule) Params(c value.Converter) map[string]string {
	params := map[string]string{}
	switch r.kind {
	case RuleEquivalent, RuleNotEquivalent, RuleLess, RuleGreater,
		RuleEquivalentOrLess, RuleEquivalentOrGreater:
		ref, ok := c.ToString(r.ref)
		if !ok {
			ref = "null"
		}
		params["reference"] = ref
	case RuleMinLength, RuleMinSize:
		params["min"] = strconv.Itoa(r.bound)
	case RuleMaxLength, RuleMaxSize:
		params["max"] = strconv.Itoa(r.bound)
	case RuleLength, RuleSize:
		params["size"] = strconv.Itoa(r.bound)
	case RulePattern, RuleNotPattern:
		params["pattern"] = r.expr
	case RuleIsOfTypeOrNull, RuleCanBeConvertedTo:
		params["type"] = r.typ.String()
	case RuleNotNull, RuleNull, RuleNotBlank, RuleBlank, RulePredicate:
	}
	return params
}

// Evaluate checks v with the default converter.
func (r Rule) Evaluate(v any) Verdict { return r.EvaluateWith(value.Default, v) }

// EvaluateWith checks v, coercing with c. It has no side effects.
func (r Rule) EvaluateWith(c value.Converter, v any) Verdict {
	if r.kind == 0 {
		panic(fmt.Errorf("%w: zero rule", ErrInvalidRule))
	}
	passed, code := r.check(c, v)
	if code == "" {
		code = r.Code()
	}
	return Verdict{Passed: passed, Code: code, Params: r.Params(c)}
}

func (r Rule) check(c value.Converter, v any) (bool, string) {
	isNull := value.Of(v).IsNull()

	switch r.kind {
	case RuleNotNull:
		return !isNull, ""
	case RuleNull:
		return isNull, ""
	case RuleNotBlank:
		return !isBlank(c, v), ""
	case RuleBlank:
		return isBlank(c, v), ""
	case RuleEquivalent:
		return c.Equivalent(v, r.ref), ""
	case RuleNotEquivalent:
		return !c.Equivalent(v, r.ref), ""
	case RuleLess, RuleGreater, RuleEquivalentOrLess, RuleEquivalentOrGreater:
		return r.order(c, v), ""
	case RuleMinLength, RuleMaxLength, RuleLength:
		if isNull {
			return true, ""
		}
		n, ok := c.Length(v)
		return ok && r.withinBound(n), ""
	case RuleMinSize, RuleMaxSize, RuleSize:
		if isNull {
			return true, ""
		}
		n, ok := c.Size(v, r.ignoreNull)
		if !ok {
			return false, CodeNotAnArray
		}
		return r.withinBound(n), ""
	case RulePattern, RuleNotPattern:
		if isNull {
			return true, ""
		}
		s, _ := c.ToString(v)
		return r.re.MatchString(s) == (r.kind == RulePattern), ""
	case RuleIsOfTypeOrNull:
		return isNull || r.nativeKind(c, v), ""
	case RuleCanBeConvertedTo:
		return c.CanConvert(v, r.typ), ""
	case RulePredicate:
		return r.pred(v), ""
	}
	panic(fmt.Errorf("%w: unknown kind %d", ErrInvalidRule, r.kind))
}

// order applies the ordering operators on top of value.Compare, where null is lower than any
// other value and equal to null. Values that cannot be ordered fail every operator.
func (r Rule) order(c value.Converter, v any) bool {
	n, ok := c.Compare(v, r.ref)
	if !ok {
		return false
	}
	switch r.kind {
	case RuleLess:
		return n < 0
	case RuleGreater:
		return n > 0
	case RuleEquivalentOrLess:
		return n <= 0
	case RuleEquivalentOrGreater:
		return n >= 0
	}
	return false
}

func (r Rule) withinBound(n int) bool {
	switch r.kind {
	case RuleMinLength, RuleMinSize:
		return n >= r.bound
	case RuleMaxLength, RuleMaxSize:
		return n <= r.bound
	default:
		return n == r.bound
	}
}

func (r Rule) nativeKind(c value.Converter, v any) bool {
	k := value.Of(v).Kind()
	switch {
	case k == r.typ:
		return true
	case r.typ == value.Long && k == value.Integer:
		return true
	case r.typ == value.Double && k == value.Float:
		return true
	case r.typ == value.Bytes && r.acceptBase64 && k == value.String:
		_, ok := c.ToBytes(v)
		return ok
	}
	return false
}

// isBlank treats null and whitespace-only text as blank.
func isBlank(c value.Converter, v any) bool {
	s, ok := c.ToString(v)
	return !ok || strings.TrimSpace(s) == ""
}
