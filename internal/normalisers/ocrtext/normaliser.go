// Package ocrtext canonicalises OCR transcripts of registry forms.
package ocrtext

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles OCR plain-text transcripts.
type Normaliser struct{}

// New creates a new OCR text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "ocrtext"
}

// Normalise converts a raw transcript to a normalised document.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	return &driven.NormaliseResult{
		Document: domain.Document{
			SourceID: raw.SourceID,
			URI:      raw.URI,
			Content:  Text(raw.Text),
		},
	}, nil
}

// lineBreaks folds the line separators OCR engines emit into '\n'.
// Tesseract ends every page with a form feed.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "\n", "\v", "\n")

// canonical drops control and zero-width glyphs, then composes the text.
// Removal comes first so that a mark separated from its base letter by a
// stray glyph is still composed.
var canonical = transform.Chain(
	runes.Remove(runes.Predicate(isStrayGlyph)),
	norm.NFC,
)

func isStrayGlyph(r rune) bool {
	switch r {
	case '\n', '\t':
		return false
	case '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	}
	return unicode.IsControl(r)
}

// punctuation maps visually equivalent glyphs to their ASCII form and
// drops marks that only appear as OCR noise on the form.
var punctuation = strings.NewReplacer(
	"—", "-", "–", "-", "¬", " ", "\u00a0", " ",
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'", "′", "'",
	"¡", "", "«", "", "»", "",
)

var (
	verticalBar     = regexp.MustCompile(`\s*\|\s*`)
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	trailingSpace   = regexp.MustCompile(` \n`)
	blankLines      = regexp.MustCompile(`\n{3,}`)
	numberSignDot   = regexp.MustCompile(`\bNo\.`)
	numberSignSpace = regexp.MustCompile(`\bNo `)
)

// Text returns the canonical form of an OCR transcript.
//
// It composes Unicode (NFC), unifies dashes and quotes, isolates vertical
// bars with one space on each side, collapses horizontal whitespace, trims
// spaces before line breaks, folds three or more line breaks into one blank
// line and writes the "number" abbreviation as "N°".
//
// Text is total and idempotent: Text(Text(s)) == Text(s).
func Text(s string) string {
	if s == "" {
		return ""
	}

	s = lineBreaks.Replace(s)
	s = punctuation.Replace(s)
	if out, _, err := transform.String(canonical, s); err == nil {
		s = out
	}

	s = verticalBar.ReplaceAllString(s, " | ")
	s = horizontalSpace.ReplaceAllString(s, " ")
	s = trailingSpace.ReplaceAllString(s, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")

	// The abbreviation runs last: a bar isolated above may leave a fresh
	// "No " behind it, which would otherwise only be rewritten on a
	// second pass.
	s = strings.ReplaceAll(s, "Nº", "N°")
	s = numberSignDot.ReplaceAllString(s, "N°")
	s = numberSignSpace.ReplaceAllString(s, "N° ")

	return s
}
