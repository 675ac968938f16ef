package extractor

import (
	"regexp"
	"strings"
)

// surnameLabel tolerates the usual OCR misreadings of "Apellidos".
const surnameLabel = `Ape(?:llidos|ltidos|lidos)`

var (
	givenNamesLine = regexp.MustCompile(`(?im)^[^\n\r]*\bNombres\b[ \t]*:?[ \t]*([^\n\r]+)$`)
	surnamesLine   = regexp.MustCompile(`(?im)^[^\n\r]*\b` + surnameLabel + `\b[ \t]*:?[ \t]*([^\n\r]+)$`)

	nameQuotes  = strings.NewReplacer(`"`, " ", "'", " ", "`", " ")
	nameSymbols = regexp.MustCompile(`[<>•·*_=:+\-–—]+`)
	nonNameRune = regexp.MustCompile(`[^A-ZÁÉÍÓÚÑ ]+`)
	spaceRuns   = regexp.MustCompile(`\s{2,}`)
)

// NormalizeName reduces a captured name to upper-case Spanish letters
// separated by single spaces. Anything after a vertical bar belongs to a
// neighbouring column and is dropped.
func NormalizeName(v string) string {
	if v == "" {
		return ""
	}
	v, _, _ = strings.Cut(v, "|")
	v = nameQuotes.Replace(v)
	v = nameSymbols.ReplaceAllString(v, " ")
	v = nonNameRune.ReplaceAllString(strings.ToUpper(v), " ")
	v = spaceRuns.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}

// GivenNames extracts "Nombres" from the first line that carries the label.
func GivenNames(text string) string {
	return firstName(givenNamesLine, text)
}

// Surnames extracts "Apellidos" from the first line that carries the label.
func Surnames(text string) string {
	return firstName(surnamesLine, text)
}

func firstName(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return NormalizeName(m[1])
}
