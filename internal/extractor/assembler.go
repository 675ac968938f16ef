package extractor

import (
	"regexp"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
	"github.com/custodia-labs/registro-ocr/internal/logger"
	"github.com/custodia-labs/registro-ocr/internal/normalisers/ocrtext"
)

// Verify interface compliance.
var _ driven.FieldExtractor = (*Extractor)(nil)

// correction rewrites one OCR artefact that would otherwise defeat a
// field pattern.
type correction struct {
	re   *regexp.Regexp
	repl string
}

var corrections = []correction{
	// "CLASE: 12023" is a misread "CLASE: 2023".
	{regexp.MustCompile(`(?i)\bCLASE\s*:\s*1(\d{4})\b`), "CLASE: ${1}"},
	{regexp.MustCompile(`(?i)\bNombres?\s*:\s*-\s*`), "Nombres: "},
	{regexp.MustCompile(`(?i)\b` + surnameLabel + `\s*:\s*-\s*`), "Apellidos: "},
}

// Extractor turns an OCR transcript into a record. It holds no state and is
// safe for concurrent use.
type Extractor struct{}

// New creates a field extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract implements driven.FieldExtractor.
func (e *Extractor) Extract(text string) domain.Extraction {
	return ExtractDetailed(text)
}

// Extract returns the twelve form fields found in text. Fields that cannot
// be read are "".
func Extract(text string) domain.Record {
	return ExtractDetailed(text).Record
}

// ExtractDetailed is Extract plus how each field was obtained.
func ExtractDetailed(text string) domain.Extraction {
	t := correct(ocrtext.Text(text))

	var ex domain.Extraction
	set := func(f domain.Field, v string, p domain.Provenance) {
		ex.Record.Set(f, v)
		ex.SetProvenance(f, p)
		if v != "" {
			logger.Debug("%s = %q (%s)", f, v, p)
		} else {
			logger.Debug("%s not found", f)
		}
	}

	set(domain.FieldNombres, GivenNames(t), domain.ProvenanceLabelled)
	set(domain.FieldApellidos, Surnames(t), domain.ProvenanceLabelled)

	dni, dniSrc := DNI(t)
	set(domain.FieldDNI, dni, dniSrc)

	birth, birthSrc := BirthDate(t)
	set(domain.FieldFechaNacimiento, birth, birthSrc)

	libro, folio, libroSrc, folioSrc := LibroFolio(t)
	set(domain.FieldLibro, libro, libroSrc)
	set(domain.FieldFolio, folio, folioSrc)

	set(domain.FieldClase, Clase(t), domain.ProvenanceLabelled)
	set(domain.FieldUnidadAlta, AdmissionUnit(t), domain.ProvenanceLabelled)

	admitted, admittedSrc := DateLine(t, AdmissionDateLabel)
	set(domain.FieldFechaAlta, admitted, admittedSrc)
	discharged, dischargedSrc := DateLine(t, DischargeDateLabel)
	set(domain.FieldFechaBaja, discharged, dischargedSrc)

	set(domain.FieldUnidadBaja, DischargeUnit(t), domain.ProvenanceLabelled)
	set(domain.FieldGrado, Grado(t), domain.ProvenanceLabelled)

	scrub(&ex.Record)
	return ex
}

// correct applies the built-in OCR corrections.
func correct(t string) string {
	for _, c := range corrections {
		t = c.re.ReplaceAllString(t, c.repl)
	}
	return t
}

// scrub clears free-text fields left holding only symbols or a sentinel.
func scrub(r *domain.Record) {
	for _, f := range []domain.Field{domain.FieldUnidadAlta, domain.FieldUnidadBaja, domain.FieldGrado} {
		if v := r.Get(f); IsInvalid(v) || isSymbolsOnly(v) {
			r.Set(f, "")
		}
	}
}
