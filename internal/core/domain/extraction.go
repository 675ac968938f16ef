package domain

// Provenance records how a field value was obtained.
type Provenance string

const (
	// ProvenanceNotFound means the field is empty.
	ProvenanceNotFound Provenance = "not_found"

	// ProvenanceLabelled means the value was read next to its form label.
	ProvenanceLabelled Provenance = "labelled"

	// ProvenanceFallback means the value came from a layout heuristic
	// (for example Libro/Folio read from a bare ": N1 N2" line).
	ProvenanceFallback Provenance = "fallback"

	// ProvenanceHeaderScan means the DNI was taken from any long digit run
	// in the first lines of the transcript. It may be a page number or a
	// form code.
	ProvenanceHeaderScan Provenance = "header_scan"

	// ProvenancePassthrough means a date's month could not be resolved and
	// the raw "D-M-Y" tokens were kept for manual review.
	ProvenancePassthrough Provenance = "passthrough"
)

// LowConfidence reports whether a value of this provenance should be
// reviewed before it is trusted.
func (p Provenance) LowConfidence() bool {
	switch p {
	case ProvenanceFallback, ProvenanceHeaderScan, ProvenancePassthrough:
		return true
	default:
		return false
	}
}

// Extraction is a Record together with the provenance of each field.
type Extraction struct {
	Record Record

	provenance [fieldCount]Provenance
}

// Provenance returns how f was obtained. Empty fields report
// ProvenanceNotFound regardless of what was recorded.
func (e Extraction) Provenance(f Field) Provenance {
	if !f.Valid() || e.Record.Get(f) == "" {
		return ProvenanceNotFound
	}
	if p := e.provenance[f]; p != "" {
		return p
	}
	return ProvenanceLabelled
}

// SetProvenance records how f was obtained.
func (e *Extraction) SetProvenance(f Field, p Provenance) {
	if !f.Valid() {
		return
	}
	e.provenance[f] = p
}

// ProvenanceMap returns label -> provenance for every field.
func (e Extraction) ProvenanceMap() map[string]Provenance {
	m := make(map[string]Provenance, fieldCount)
	for _, f := range Fields() {
		m[f.String()] = e.Provenance(f)
	}
	return m
}

// LowConfidence returns the non-empty fields whose provenance calls for
// review, in form order.
func (e Extraction) LowConfidence() []Field {
	var out []Field
	for _, f := range Fields() {
		if e.Provenance(f).LowConfidence() {
			out = append(out, f)
		}
	}
	return out
}
