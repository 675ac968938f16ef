package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/logger"
)

// ValidationError describes one field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors aggregates field errors. It matches domain.ErrInvalidInput
// with errors.Is.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Is reports ValidationErrors as invalid input.
func (v ValidationErrors) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

// storedRecord is the view of a record the persistence layer requires.
// The label tag carries the form label used in error messages.
type storedRecord struct {
	DNI             string `label:"DNI" validate:"required,number,min=8,max=11"`
	FechaNacimiento string `label:"Fecha de Nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Libro           string `label:"Libro" validate:"omitempty,number"`
	Folio           string `label:"Folio" validate:"omitempty,number"`
	Clase           string `label:"Clase" validate:"omitempty,len=4,number"`
	FechaAlta       string `label:"Fecha de alta" validate:"omitempty,datetime=2006-01-02"`
	FechaBaja       string `label:"Fecha de baja" validate:"omitempty,datetime=2006-01-02"`
}

func newStoredRecord(rec domain.Record) *storedRecord {
	return &storedRecord{
		DNI:             rec.Get(domain.FieldDNI),
		FechaNacimiento: rec.Get(domain.FieldFechaNacimiento),
		Libro:           rec.Get(domain.FieldLibro),
		Folio:           rec.Get(domain.FieldFolio),
		Clase:           rec.Get(domain.FieldClase),
		FechaAlta:       rec.Get(domain.FieldFechaAlta),
		FechaBaja:       rec.Get(domain.FieldFechaBaja),
	}
}

// dateFields are repaired rather than rejected: an unresolved date is
// stored empty and the rest of the record is kept.
var dateFields = []domain.Field{domain.FieldFechaNacimiento, domain.FieldFechaAlta, domain.FieldFechaBaja}

// RecordValidator checks records before they are persisted.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator creates a record validator.
func NewRecordValidator() *RecordValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("label")
	})
	return &RecordValidator{validate: v}
}

// Validate returns ValidationErrors listing every field the store would
// reject, or nil.
func (v *RecordValidator) Validate(rec domain.Record) error {
	if err := v.validate.Struct(newStoredRecord(rec)); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

// PrepareForStorage returns rec with every invalid date blanked, logging a
// warning for each. Any other validation failure is returned as
// ValidationErrors.
func (v *RecordValidator) PrepareForStorage(rec domain.Record) (domain.Record, error) {
	err := v.Validate(rec)
	if err == nil {
		return rec, nil
	}
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		return rec, err
	}

	var remaining ValidationErrors
	for _, e := range errs {
		f, perr := domain.ParseField(e.Field)
		if perr == nil && isDateField(f) {
			logger.Warn("%s %q is not a YYYY-MM-DD date; stored empty", f, rec.Get(f))
			rec.Set(f, "")
			continue
		}
		remaining = append(remaining, e)
	}
	if len(remaining) > 0 {
		return rec, remaining
	}
	return rec, nil
}

func isDateField(f domain.Field) bool {
	for _, d := range dateFields {
		if d == f {
			return true
		}
	}
	return false
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = "is required"
		case "number":
			message = "must contain only digits"
		case "min":
			message = fmt.Sprintf("must have at least %s digits", err.Param())
		case "max":
			message = fmt.Sprintf("must have at most %s digits", err.Param())
		case "len":
			message = fmt.Sprintf("must have exactly %s digits", err.Param())
		case "datetime":
			message = "must be a YYYY-MM-DD date"
		}

		out = append(out, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}
	return out
}
