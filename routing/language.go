package routing

import "strings"

// detectableLanguages lists the language/framework tokens DetectLanguage
// recognizes. Order matters for the substring fallback pass: longer and
// less ambiguous tokens come first so e.g. "reactjs" wins over "react" and
// short tokens like "go" cannot shadow framework names.
var detectableLanguages = []string{
	"typescript", "javascript",
	"python",
	"reactjs", "react",
	"vue", "angular", "svelte",
	"node.js", "nodejs", "node",
	"express", "fastapi", "flask", "django",
	"golang",
	"rust", "java", "kotlin", "swift", "ruby", "php",
	"tsx", "jsx", "ts", "js", "py", "go",
}

// languageAliases normalizes shorthand tokens to their canonical name.
var languageAliases = map[string]string{
	"ts":      "typescript",
	"tsx":     "typescript",
	"js":      "javascript",
	"jsx":     "javascript",
	"py":      "python",
	"node":    "nodejs",
	"node.js": "nodejs",
	"reactjs": "react",
	"golang":  "go",
}

// NormalizeLanguage maps a token through the alias table; identity for
// anything unlisted.
func NormalizeLanguage(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := languageAliases[token]; ok {
		return canonical
	}
	return token
}

// DetectLanguage extracts a normalized language/framework token from free
// text, or "" when none is present. Exact whole-word matching runs first to
// avoid false positives ("js" inside "objects"); a substring pass over the
// whole query trades precision for recall when there is no clean word
// boundary ("reactjs file upload").
func DetectLanguage(query string) string {
	lowered := strings.ToLower(query)
	words := strings.Fields(lowered)

	for _, word := range words {
		for _, lang := range detectableLanguages {
			if word == lang {
				return NormalizeLanguage(lang)
			}
		}
	}

	for _, lang := range detectableLanguages {
		if strings.Contains(lowered, lang) {
			return NormalizeLanguage(lang)
		}
	}
	return ""
}
