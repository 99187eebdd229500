package language

import "strings"

var displayNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ru": "Russian",
	"nl": "Dutch",
	"pl": "Polish",
	"sv": "Swedish",
	"da": "Danish",
	"no": "Norwegian",
	"fi": "Finnish",
}

// Display returns the human-readable name for a locale directory code, or the
// input unchanged when the code is not recognized.
func Display(code string) string {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if name, ok := displayNames[normalized]; ok {
		return name
	}
	return code
}

// Known reports whether the code is a recognized locale directory code.
func Known(code string) bool {
	_, ok := displayNames[strings.ToLower(strings.TrimSpace(code))]
	return ok
}
