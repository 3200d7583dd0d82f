package validation

import "github.com/dmitrymomot/validkit/pkg/value"

// Message codes. They double as dictionary keys for the default texts.
const (
	CodeNotNull             = "validation.not_null"
	CodeNull                = "validation.null"
	CodeNotBlank            = "validation.not_blank"
	CodeBlank               = "validation.blank"
	CodeEquivalent          = "validation.equivalent"
	CodeNotEquivalent       = "validation.not_equivalent"
	CodeLess                = "validation.less"
	CodeGreater             = "validation.greater"
	CodeEquivalentOrLess    = "validation.equivalent_or_less"
	CodeEquivalentOrGreater = "validation.equivalent_or_greater"
	CodeMinLength           = "validation.min_length"
	CodeMaxLength           = "validation.max_length"
	CodeLength              = "validation.length"
	CodeMinSize             = "validation.min_size"
	CodeMaxSize             = "validation.max_size"
	CodeSize                = "validation.size"
	CodePattern             = "validation.pattern"
	CodeNotPattern          = "validation.not_pattern"
	CodePredicate           = "validation.predicate"
	CodeNotAnArray          = "validation.not_an_array"
	CodeArrayItself         = "validation.array_itself"
	CodeArrayItselfSuccess  = "validation.array_itself_success"
	CodeSuccess             = "validation.success"
)

// CodeIsOfTypeOrNull returns the code of the IsOfTypeOrNull rule for kind k,
// e.g. "validation.is_of_type_date_or_null".
func CodeIsOfTypeOrNull(k value.Kind) string {
	return "validation.is_of_type_" + k.String() + "_or_null"
}

// CodeCanBeConvertedTo returns the code of the CanBeConvertedTo rule for kind k,
// e.g. "validation.can_be_converted_to_integer".
func CodeCanBeConvertedTo(k value.Kind) string {
	return "validation.can_be_converted_to_" + k.String()
}
