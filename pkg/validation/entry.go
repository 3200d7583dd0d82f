package validation

import "github.com/dmitrymomot/validkit/pkg/value"

// Validation starts a builder for an arbitrary rule.
func (s *Set) Validation(r Rule) Builder { return Builder{set: s, rule: r} }

func (s *Set) NotNull() Builder  { return s.Validation(NotNull()) }
func (s *Set) Null() Builder     { return s.Validation(Null()) }
func (s *Set) NotBlank() Builder { return s.Validation(NotBlank()) }
func (s *Set) Blank() Builder    { return s.Validation(Blank()) }

func (s *Set) Equivalent(ref any) Builder          { return s.Validation(Equivalent(ref)) }
func (s *Set) NotEquivalent(ref any) Builder       { return s.Validation(NotEquivalent(ref)) }
func (s *Set) Less(ref any) Builder                { return s.Validation(Less(ref)) }
func (s *Set) Greater(ref any) Builder             { return s.Validation(Greater(ref)) }
func (s *Set) EquivalentOrLess(ref any) Builder    { return s.Validation(EquivalentOrLess(ref)) }
func (s *Set) EquivalentOrGreater(ref any) Builder { return s.Validation(EquivalentOrGreater(ref)) }

func (s *Set) MinLength(n int) Builder { return s.Validation(MinLength(n)) }
func (s *Set) MaxLength(n int) Builder { return s.Validation(MaxLength(n)) }
func (s *Set) Length(n int) Builder    { return s.Validation(Length(n)) }
func (s *Set) MinSize(n int) Builder   { return s.Validation(MinSize(n)) }
func (s *Set) MaxSize(n int) Builder   { return s.Validation(MaxSize(n)) }

// ExactSize starts a size rule; Size is the message count of the set.
func (s *Set) ExactSize(n int) Builder { return s.Validation(Size(n)) }

func (s *Set) Pattern(expr string) Builder    { return s.Validation(Pattern(expr)) }
func (s *Set) NotPattern(expr string) Builder { return s.Validation(NotPattern(expr)) }

func (s *Set) IsOfTypeOrNull(k value.Kind) Builder { return s.Validation(IsOfTypeOrNull(k)) }

func (s *Set) IsByteArrayOrNull(acceptBase64 bool) Builder {
	return s.Validation(IsByteArrayOrNull(acceptBase64))
}

func (s *Set) CanBeConvertedTo(k value.Kind) Builder { return s.Validation(CanBeConvertedTo(k)) }

// Predicate starts a builder around a custom check. Set a code with FailMessageCode; the
// default is validation.predicate.
func (s *Set) Predicate(fn func(v any) bool) Builder { return s.Validation(Predicate(fn)) }
