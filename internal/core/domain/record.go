package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field identifies one of the twelve fields of the registry form.
// The numeric order of the constants is the form order, which is also the
// order used by every serialisation of a Record.
type Field int

const (
	FieldNombres Field = iota
	FieldApellidos
	FieldDNI
	FieldFechaNacimiento
	FieldLibro
	FieldFolio
	FieldClase
	FieldUnidadAlta
	FieldFechaAlta
	FieldUnidadBaja
	FieldFechaBaja
	FieldGrado

	fieldCount
)

var fieldNames = [fieldCount]string{
	"Nombres",
	"Apellidos",
	"DNI",
	"Fecha de Nacimiento",
	"Libro",
	"Folio",
	"Clase",
	"Unidad de alta",
	"Fecha de alta",
	"Unidad de Baja",
	"Fecha de baja",
	"Grado",
}

// String returns the field's label as written on the form.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Valid reports whether f is one of the twelve form fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// Fields returns all fields in form order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// FieldNames returns the field labels in form order.
// It is the header row of the CSV export.
func FieldNames() []string {
	out := make([]string, fieldCount)
	copy(out, fieldNames[:])
	return out
}

// ParseField maps a form label back to its Field.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Record holds the extracted value of every form field.
// The zero value is a valid record with every field empty; a field that
// could not be extracted is "" and never absent.
type Record struct {
	values [fieldCount]string
}

// Get returns the value of f, or "" for an unknown field.
func (r Record) Get(f Field) string {
	if !f.Valid() {
		return ""
	}
	return r.values[f]
}

// Set assigns the value of f. Unknown fields are ignored.
func (r *Record) Set(f Field, v string) {
	if !f.Valid() {
		return
	}
	r.values[f] = v
}

// Values returns the field values in form order.
func (r Record) Values() []string {
	out := make([]string, fieldCount)
	copy(out, r.values[:])
	return out
}

// Map returns the record as label -> value. Map iteration order is random;
// use Values or MarshalJSON when order matters.
func (r Record) Map() map[string]string {
	m := make(map[string]string, fieldCount)
	for i, v := range r.values {
		m[fieldNames[i]] = v
	}
	return m
}

// IsEmpty reports whether no field was extracted.
func (r Record) IsEmpty() bool {
	for _, v := range r.values {
		if v != "" {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the record as an object with the twelve labels as
// keys, in form order. Non-ASCII and HTML characters are written as-is.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range r.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, fieldNames[i]); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by form labels. Missing keys stay
// empty; unknown keys are rejected so that edited records keep the layout.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var rec Record
	for k, v := range m {
		f, err := ParseField(k)
		if err != nil {
			return err
		}
		rec.values[f] = v
	}
	*r = rec
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
