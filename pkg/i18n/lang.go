package i18n

import (
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the part of an Accept-Language header that is parsed.
const maxAcceptLanguageLength = 4096

type weightedLang struct {
	lang string
	q    float64
}

// parseAcceptLanguage returns the languages of an Accept-Language header, lowercased and sorted
// by quality, best first. Entries with q=0 are dropped.
func parseAcceptLanguage(header string) []weightedLang {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var langs []weightedLang
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			}
		}
		if q == 0 {
			continue
		}
		langs = append(langs, weightedLang{lang: tag, q: q})
	}

	slices.SortStableFunc(langs, func(a, b weightedLang) int {
		switch {
		case a.q > b.q:
			return -1
		case a.q < b.q:
			return 1
		}
		return 0
	})
	return langs
}

// ParseAcceptLanguage picks the best supported language for an Accept-Language header.
// Exact tags are preferred over base languages ("en-US" matches "en" only when no exact
// match exists for any accepted tag). defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}

	normalized := make([]string, len(supported))
	for i, lang := range supported {
		normalized[i] = strings.ToLower(lang)
	}

	langs := parseAcceptLanguage(header)
	for _, l := range langs {
		if slices.Contains(normalized, l.lang) {
			return l.lang
		}
	}
	for _, l := range langs {
		if base, _, ok := strings.Cut(l.lang, "-"); ok && slices.Contains(normalized, base) {
			return base
		}
	}
	return defaultLang
}
