// Package i18n loads message catalogues and translates keys into texts for a language.
//
// Catalogues are maps from language code to (possibly nested) key groups, read from YAML or
// JSON through a TranslationAdapter: MapAdapter for in-memory data, FileAdapter for one file,
// FSAdapter for a directory of an fs.FS (embedded catalogues included) and NewDirectoryAdapter
// for a directory on disk. ChainAdapter layers adapters so that an application can override
// built-in texts key by key.
//
//	t, err := i18n.NewTranslator(ctx, i18n.ChainAdapter(
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), builtin, "messages"),
//		i18n.NewDirectoryAdapter("./translations"),
//	))
//	if err != nil {
//		return err
//	}
//
//	t.T("de-AT", "validation.min_length", "min", "3")
//
// Keys are dot-separated paths into the groups. Placeholders use the %{name} form and are
// filled from name/value argument pairs. A missing key falls back to the base language, then
// to the default language, then to the key itself (or the default text with Td).
//
// The request language is carried in a context. Middleware detects it from a cookie, a query
// parameter or the Accept-Language header (see DefaultLangExtractor), and GetLocale reads it
// back; Tc translates with it directly.
package i18n
