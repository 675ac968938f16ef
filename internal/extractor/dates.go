package extractor

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// Labels of the two event dates on the form.
const (
	AdmissionDateLabel = `Fecha\s+de\s+Alta`
	DischargeDateLabel = `Fecha\s+de\s+Baja`
)

// birthDateWindow bounds how far apart the Día, Mes and Año cells of the
// birth date may be.
const birthDateWindow = 400

var (
	birthDate = regexp.MustCompile(fmt.Sprintf(
		`(?is)\bD[ií]a\s*:?\s*(\d{1,2}).{0,%[1]d}?Mes\s*:?\s*([A-Za-zÁÉÍÓÚñ.]+).{0,%[1]d}?A(?:n|ñ|fi)[o0]\s*:?\s*(\d{4})`,
		birthDateWindow))
	isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizeDate combines day, month and year tokens into YYYY-MM-DD.
//
// When the month cannot be resolved the tokens are returned verbatim as
// "D-M-Y" so that a reviewer sees what was read; the provenance is then
// ProvenancePassthrough. Such a value is not an ISO date: check it with
// IsISODate before storing it in a date column.
func NormalizeDate(day, month, year string) (string, domain.Provenance) {
	num, ok := Month(month)
	if !ok {
		return fmt.Sprintf("%s-%s-%s", day, month, year), domain.ProvenancePassthrough
	}
	return isoFromNumbers(day, num, year)
}

// isoFromNumbers zero-pads numeric day, month and year tokens.
func isoFromNumbers(day, month, year string) (string, domain.Provenance) {
	d, errD := strconv.Atoi(day)
	m, errM := strconv.Atoi(month)
	y, errY := strconv.Atoi(year)
	if errD != nil || errM != nil || errY != nil {
		return fmt.Sprintf("%s-%s-%s", day, month, year), domain.ProvenancePassthrough
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), domain.ProvenanceLabelled
}

// IsISODate reports whether s has the YYYY-MM-DD shape.
func IsISODate(s string) bool {
	return isoDate.MatchString(s)
}

// DateLine extracts a date written after label, either as
// "D - Mes - YYYY" (month as a word, separators -, / or space) or as
// "D/M/YYYY" (numeric).
func DateLine(text, label string) (string, domain.Provenance) {
	named, err := regexp.Compile(`(?is)` + label +
		`\s*:\s*(\d{1,2})\s*[-/ ]\s*([A-Za-zÁÉÍÓÚñ]{3,}\.?)\s*[-/ ]\s*(\d{4})`)
	if err != nil {
		return "", domain.ProvenanceNotFound
	}
	if m := named.FindStringSubmatch(text); m != nil {
		return NormalizeDate(m[1], m[2], m[3])
	}

	numeric, err := regexp.Compile(`(?is)` + label + `\s*:\s*(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	if err != nil {
		return "", domain.ProvenanceNotFound
	}
	if m := numeric.FindStringSubmatch(text); m != nil {
		return isoFromNumbers(m[1], m[2], m[3])
	}
	return "", domain.ProvenanceNotFound
}

// BirthDate combines the separately labelled Día, Mes and Año cells of the
// birth date. "Año" is often read as "Ano" or "Afio".
func BirthDate(text string) (string, domain.Provenance) {
	m := birthDate.FindStringSubmatch(text)
	if m == nil {
		return "", domain.ProvenanceNotFound
	}
	return NormalizeDate(m[1], m[2], m[3])
}
