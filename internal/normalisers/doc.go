// Package normalisers provides implementations of the Normaliser interface.
// A normaliser canonicalises the text of an OCR transcript so that the
// field extractor can rely on one spelling of punctuation and whitespace.
package normalisers
