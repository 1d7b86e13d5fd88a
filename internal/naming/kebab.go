package naming

import (
	"strings"
	"unicode"
)

// ToKebabCase converts a camelCase or PascalCase name to kebab-case.
// Examples:
//   - "myField" -> "my-field"
//   - "expanded" -> "expanded"
//   - "HTMLElement" -> "html-element"
//   - "field5Name" -> "field5-name"
//   - "my-field" -> "my-field"
func ToKebabCase(name string) string {
	words := Tokenize(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, "-")
}

// Tokenize splits a name at case boundaries. Separators already present in
// the name stay inside the words.
// Examples:
//   - "myField" -> ["my", "Field"]
//   - "XMLParser" -> ["XML", "Parser"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && startsNewWord(runes, i) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// startsNewWord determines if a new word starts at position i (i > 0).
func startsNewWord(runes []rune, i int) bool {
	r := runes[i]
	if !unicode.IsUpper(r) {
		return false
	}

	prev := runes[i-1]

	// Transition from lowercase or digit to uppercase
	// e.g., "myField" -> split before 'F', "field5Name" -> split before 'N'
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// End of acronym: "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(prev) && hasNextLower
}
