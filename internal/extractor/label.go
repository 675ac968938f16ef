package extractor

import (
	"regexp"
	"strings"
)

// invalidValues are captures that carry no information once trimmed.
var invalidValues = map[string]struct{}{
	"":  {},
	"-": {},
	"=": {},
	":": {},
}

// stopwordPattern lists the section labels of the form. A block value
// runs from its own label to the first of these.
const stopwordPattern = `Unidad\s+de\s+Baja|SERVICIO\s+DE\s+LA\s+RESERVA|SERVICIO\s+EN\s+EL\s+ACTIVO|` +
	`Fecha\s+de\s+Baja|Fecha\s+de\s+Alta|CALIFICACI[ÓO]N|N[º°]?\s+de\s+sorteo|` +
	`Modalidad\s+SMV|INSTITUTO|FILIACI[ÓO]N\s+DEL\s+INSCRITO|Apellidos|Apeltidos|Apelidos|Nombres`

var (
	stopwords         = regexp.MustCompile(`(?i)\b(?:` + stopwordPattern + `)`)
	leadingSeparators = regexp.MustCompile(`^[\s:.\-+*=>]+`)
	symbolsOnly       = regexp.MustCompile(`^[^A-Za-zÁÉÍÓÚÑáéíóúñ0-9]+$`)
)

// valueCutset is trimmed from both ends of every captured value.
const valueCutset = " .:\t\r\n\"'"

// IsInvalid reports whether v, once trimmed, is one of the degenerate
// values an empty form cell produces ("", "-", "=", ":").
func IsInvalid(v string) bool {
	_, ok := invalidValues[strings.TrimSpace(v)]
	return ok
}

// PostClean trims whitespace, dots, colons and quotes from a captured value
// and returns "" for degenerate values.
func PostClean(v string) string {
	v = strings.Trim(v, valueCutset)
	if IsInvalid(v) {
		return ""
	}
	return v
}

// isSymbolsOnly reports whether v is non-empty and has no letter or digit.
func isSymbolsOnly(v string) bool {
	return symbolsOnly.MatchString(v)
}

// SameLine returns the value written after label on the label's own line.
// label is a regular expression fragment; matching is case-insensitive.
// The first line that matches wins. An empty cell yields "" rather than the
// following line.
func SameLine(text, label string) string {
	re, err := regexp.Compile(`(?im)^[ \t]*(?:` + label + `)[ \t]*[:.\-+*]?[ \t]*(.*?)[ \t]*$`)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return PostClean(m[1])
}

// Block returns the value that follows the first occurrence of label,
// anywhere in text, up to the next section label of the form or the end of
// the text. When another section label directly follows (no value in
// between) the remainder of the text is returned instead of nothing.
func Block(text, label string) string {
	re, err := regexp.Compile(`(?is)` + label)
	if err != nil {
		return ""
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	seg := leadingSeparators.ReplaceAllString(text[loc[1]:], "")
	if cut := stopwords.FindStringIndex(seg); cut != nil && cut[0] > 0 {
		seg = seg[:cut[0]]
	}
	return PostClean(seg)
}
