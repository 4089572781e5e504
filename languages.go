package doctrans

import "strings"

// NormalizeLang canonicalizes a language tag: trims whitespace, lower-cases,
// and truncates at the first subtag separator ("-" or "_"), so "pt-BR" and
// "pt_BR" both become "pt". Empty or blank input normalizes to "". The
// function is idempotent.
func NormalizeLang(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	return code
}

// LanguageNames maps normalized language codes to human-readable names used in
// prompts. Falls through to the raw code for anything not listed.
var LanguageNames = map[string]string{
	"ar": "Arabic",
	"be": "Belarusian",
	"bg": "Bulgarian",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"et": "Estonian",
	"fi": "Finnish",
	"fr": "French",
	"hu": "Hungarian",
	"it": "Italian",
	"ja": "Japanese",
	"kk": "Kazakh",
	"ko": "Korean",
	"lt": "Lithuanian",
	"lv": "Latvian",
	"mk": "Macedonian",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sk": "Slovak",
	"sl": "Slovenian",
	"sr": "Serbian",
	"sv": "Swedish",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"zh": "Chinese",
}

// LanguageName returns the human-readable name for a language tag, normalizing
// region subtags first ("pt-BR" resolves as "pt"). Falls back to the
// normalized code if unknown, or the raw input when normalization is empty.
func LanguageName(code string) string {
	norm := NormalizeLang(code)
	if name, ok := LanguageNames[norm]; ok {
		return name
	}
	if norm != "" {
		return norm
	}
	return code
}
