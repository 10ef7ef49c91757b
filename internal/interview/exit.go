package interview

import "strings"

// exitKeywords lists the tokens that end the interview immediately,
// per language. English keywords are always active; the session
// language adds its own set on top.
var exitKeywords = map[string][]string{
	"en": {"end", "quit", "stop", "exit"},
	"es": {"terminar", "salir", "parar"},
	"fr": {"terminer", "quitter", "arreter"},
	"de": {"beenden", "ende", "aufhoren"},
}

// IsExitCommand reports whether any word of the text matches an exit
// keyword, case-insensitively. The check runs before validation and
// evaluation, so an exit wish is honored regardless of retry counters
// or pending clarifications.
func IsExitCommand(text, language string) bool {
	keywords := exitKeywords["en"]
	if language != "" && language != "en" {
		keywords = append(append([]string{}, keywords...), exitKeywords[language]...)
	}

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		for _, kw := range keywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}
