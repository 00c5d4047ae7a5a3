package strcase

import (
	"strings"
	"unicode"
)

// ToPascalCase joins the words of a parameter name or value into an exported
// Go identifier. Runes that cannot appear in an identifier separate words, and
// a leading digit gets an underscore prefix.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return identifier(b.String())
}

// ToCamelCase is ToPascalCase with the leading upper-case run lowered. The
// last rune of an acronym followed by a lower-case rune starts the next word.
func ToCamelCase(s string) string {
	runes := []rune(ToPascalCase(s))
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func ToSnakeCase(s string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = splitUpper(w)
	}
	return identifier(strings.Join(parts, "_"))
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// splitUpper lowers a camel-cased word, inserting underscores at case
// boundaries. Acronyms stay together.
func splitUpper(s string) string {
	runes := []rune(s)
	var result []rune

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := false
				if i < len(runes)-1 {
					nextLower = unicode.IsLower(runes[i+1])
				}

				if unicode.IsLower(prev) || unicode.IsDigit(prev) || nextLower {
					result = append(result, '_')
				}
			}
			r = unicode.ToLower(r)
		}

		result = append(result, r)
	}

	return string(result)
}

func identifier(s string) string {
	if s != "" && unicode.IsDigit([]rune(s)[0]) {
		return "_" + s
	}
	return s
}
