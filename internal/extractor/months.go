package extractor

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// monthTable maps Spanish month tokens, including common OCR misreadings,
// to two-digit month numbers. Keys are lower-case, accent-free and carry
// no trailing period; Month folds its input the same way.
var monthTable = map[string]string{
	"ene": "01", "enero": "01", "eng": "01", "enr": "01",
	"feb": "02", "febrero": "02",
	"mar": "03", "marzo": "03",
	"abr": "04", "abril": "04",
	"may": "05", "mayo": "05",
	"jun": "06", "junio": "06",
	"jul": "07", "julio": "07",
	"ago": "08", "agosto": "08",
	"sep": "09", "sept": "09", "septiembre": "09",
	"set": "09", "setiembre": "09",
	"oct": "10", "octubre": "10",
	"nov": "11", "noviembre": "11",
	"dic": "12", "diciembre": "12",
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// monthKey folds a month token to its table key.
func monthKey(token string) string {
	key := strings.ToLower(strings.TrimSpace(token))
	if folded, _, err := transform.String(stripAccents, key); err == nil {
		key = folded
	}
	return strings.TrimRight(key, ".")
}

// Month resolves a Spanish month token to its two-digit number.
// Lookup ignores case, accents and a trailing period.
func Month(token string) (string, bool) {
	num, ok := monthTable[monthKey(token)]
	return num, ok
}

// MonthTokens returns every token the month table recognises.
func MonthTokens() []string {
	out := make([]string, 0, len(monthTable))
	for k := range monthTable {
		out = append(out, k)
	}
	return out
}
