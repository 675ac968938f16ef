package extractor

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// DNI length bounds, inclusive.
const (
	dniMinDigits = 8
	dniMaxDigits = 11
)

// headerLines is how many opening lines the unlabelled DNI scan looks at.
const headerLines = 8

var (
	// bloodType matches a blood group cell such as "O +" or "AB-". Lines
	// holding one are ignored: their letter and sign read like DNI digits.
	bloodType = regexp.MustCompile(`(?i)\b(?:AB|A|B|O)\s*[+-]`)

	// dniLine matches the DNI label even when OCR spaces or punctuates
	// its letters ("D N I", "D.N.I.").
	dniLine = regexp.MustCompile(`(?im)^\s*D\s*[^A-Za-z0-9]*\s*N\s*[^A-Za-z0-9]*\s*I\s*[:=]?\s*([^\n\r]+)$`)

	bareDNI = regexp.MustCompile(`\b(\d{8,11})\b`)

	// lookalikeDigits undoes the letter/digit confusions OCR makes on
	// numeric cells.
	lookalikeDigits = strings.NewReplacer("O", "0", "I", "1", "L", "1", "B", "8", "S", "5")
)

// RecoverDigits rebuilds a DNI from an OCR capture: look-alike letters are
// read as digits and everything else is dropped. The result is accepted
// only when it has 8 to 11 digits.
func RecoverDigits(raw string) string {
	if raw == "" {
		return ""
	}
	s := lookalikeDigits.Replace(strings.ToUpper(raw))
	s = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if len(s) < dniMinDigits || len(s) > dniMaxDigits {
		return ""
	}
	return s
}

// DNI finds the identity number. A labelled line is trusted first; failing
// that, the first 8 lines are scanned for any bare 8 to 11 digit run, which
// may pick up page numbers or form codes and is reported as
// ProvenanceHeaderScan.
func DNI(text string) (string, domain.Provenance) {
	lines := strings.Split(text, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if bloodType.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	filtered := strings.Join(kept, "\n")

	if m := dniLine.FindStringSubmatch(filtered); m != nil {
		if dni := RecoverDigits(m[1]); dni != "" {
			return dni, domain.ProvenanceLabelled
		}
	}

	if len(kept) > headerLines {
		kept = kept[:headerLines]
	}
	header := lookalikeDigits.Replace(strings.ToUpper(strings.Join(kept, "\n")))
	if m := bareDNI.FindStringSubmatch(header); m != nil {
		return m[1], domain.ProvenanceHeaderScan
	}
	return "", domain.ProvenanceNotFound
}
