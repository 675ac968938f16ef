package extractor

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
)

// Labels of the organisational fields. The admission label tolerates the
// OCR readings "Unid de alia" and "Unidad de altá".
const (
	AdmissionUnitLabel = `Uni\w*\s+de\s+al[ti][aáf]`
	DischargeUnitLabel = `Unidad\s+de\s+Baja`
)

var (
	libroLabelled = regexp.MustCompile(`(?i)\bLibro\s*:\s*(\d{1,3})\b`)
	folioLabelled = regexp.MustCompile(`(?i)\bFolio\s*:\s*(\d{1,4})\b`)

	// registryHeader is the unlabelled ": LIBRO FOLIO" line some scans
	// produce when the two labels are lost.
	registryHeader = regexp.MustCompile(`(?m)^\s*:\s*(\d{1,3})\s+(\d{1,4})\b`)

	classYear = regexp.MustCompile(`(?i)\bCLASE\s*:\s*(\d{4})\b`)

	unitNoise     = strings.NewReplacer("*", " ", "?", " ")
	unitNumber    = regexp.MustCompile(`\bN\s*°\s*`)
	dischargeDeny = regexp.MustCompile(`(?i)SERVICIO\s+DE\s+LA\s+RESERVA|CALIFICACI[ÓO]N|Modalidad\s+SMV`)

	rankLabel = regexp.MustCompile(`(?i)\bGrado(?:\s*o\s*Clase)?\s*:`)
	rankStop  = regexp.MustCompile(`(?i)^\s*Arma/Especialidad`)
)

// pairMatch is one capture of a scalar field: either a labelled match or
// one column of the ": N1 N2" header line.
type pairMatch struct {
	groups []string
	source domain.Provenance
}

// Group returns capture i, or "" when the match has no such group.
func (p *pairMatch) Group(i int) string {
	if p == nil || i < 0 || i >= len(p.groups) {
		return ""
	}
	return p.groups[i]
}

func labelledMatch(re *regexp.Regexp, text string) *pairMatch {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &pairMatch{groups: m, source: domain.ProvenanceLabelled}
}

// column returns a match whose Group(1) is column i of the header line.
func column(header []string, i int) *pairMatch {
	return &pairMatch{groups: []string{header[0], header[i]}, source: domain.ProvenanceFallback}
}

// LibroFolio extracts the registry book and page numbers. Labelled values
// win; when either is missing the ": N1 N2" header line fills only the
// missing one(s).
func LibroFolio(text string) (libro, folio string, libroSrc, folioSrc domain.Provenance) {
	ml := labelledMatch(libroLabelled, text)
	mf := labelledMatch(folioLabelled, text)
	if ml == nil || mf == nil {
		if hdr := registryHeader.FindStringSubmatch(text); hdr != nil {
			if ml == nil {
				ml = column(hdr, 1)
			}
			if mf == nil {
				mf = column(hdr, 2)
			}
		}
	}
	return ml.Group(1), mf.Group(1), provenanceOf(ml), provenanceOf(mf)
}

func provenanceOf(m *pairMatch) domain.Provenance {
	if m == nil {
		return domain.ProvenanceNotFound
	}
	return m.source
}

// Clase extracts the four digit conscription class.
func Clase(text string) string {
	m := classYear.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// AdmissionUnit extracts "Unidad de alta". The value may wrap over several
// lines, so it is read as a block up to the next section label.
func AdmissionUnit(text string) string {
	v := Block(text, AdmissionUnitLabel)
	if v == "" {
		return ""
	}
	v = strings.TrimLeft(v, "> ")
	v = unitNoise.Replace(v)
	v = strings.TrimSpace(spaceRuns.ReplaceAllString(v, " "))
	v = unitNumber.ReplaceAllString(v, "N° ")
	if isSymbolsOnly(v) {
		return ""
	}
	return v
}

// DischargeUnit extracts "Unidad de Baja" from its own line. Section
// headings that OCR pulls onto the line are not a unit.
func DischargeUnit(text string) string {
	v := SameLine(text, DischargeUnitLabel)
	if v == "" || dischargeDeny.MatchString(v) || isSymbolsOnly(v) {
		return ""
	}
	return v
}

// Grado extracts the rank written between "Grado:" (or "Grado o Clase:")
// and "Arma/Especialidad" or the end of the text. The value never spans a
// colon or a line break.
func Grado(text string) string {
	for _, loc := range rankLabel.FindAllStringIndex(text, -1) {
		if v, ok := rankValue(text, loc[1]); ok {
			v = PostClean(v)
			if strings.HasPrefix(strings.ToLower(v), "arma/especialidad") {
				return ""
			}
			return v
		}
	}
	return ""
}

// rankValue finds the shortest value starting at or after the colon that is
// followed by "Arma/Especialidad" or by the end of the text. Starts are
// tried from the end of the whitespace after the colon back to the colon.
func rankValue(text string, colon int) (string, bool) {
	wsEnd := colon
	for wsEnd < len(text) && isSpace(text[wsEnd]) {
		wsEnd++
	}
	for start := wsEnd; start >= colon; start-- {
		for end := start + 1; end <= len(text); end++ {
			c := text[end-1]
			if c == ':' || c == '\n' {
				break
			}
			if atTextEnd(text, end) || rankStop.MatchString(text[end:]) {
				return text[start:end], true
			}
		}
	}
	return "", false
}

// atTextEnd reports whether i is the end of text or just before a final
// newline.
func atTextEnd(text string, i int) bool {
	return i == len(text) || (i == len(text)-1 && text[i] == '\n')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
