// Package extractor reads the fields of a "Hoja de Registro" form out of
// an OCR transcript.
//
// Every function here is pure and total. A field that cannot be recovered
// is "", never an error, and malformed input at worst yields an empty
// record.
package extractor
