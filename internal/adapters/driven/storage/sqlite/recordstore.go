package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/registro-ocr/internal/core/domain"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
)

// traceKindOCR marks documentos rows written from an OCR transcript.
const traceKindOCR = "OCR"

// recordStore implements driven.RecordStore.
type recordStore struct {
	store *Store
}

var _ driven.RecordStore = (*recordStore)(nil)

// Save upserts the citizen and service rows for rec and appends a document
// trace. Empty fields never overwrite stored values. Dates that are not
// YYYY-MM-DD are stored as NULL.
func (s *recordStore) Save(ctx context.Context, rec domain.Record, sourceID string) error {
	dni := rec.Get(domain.FieldDNI)
	if dni == "" {
		return domain.ErrMissingIdentifier
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ciudadanos (dni, apellidos, nombres, fecha_nacimiento, clase, libro, folio, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(dni) DO UPDATE SET
			apellidos = COALESCE(excluded.apellidos, ciudadanos.apellidos),
			nombres = COALESCE(excluded.nombres, ciudadanos.nombres),
			fecha_nacimiento = COALESCE(excluded.fecha_nacimiento, ciudadanos.fecha_nacimiento),
			clase = COALESCE(excluded.clase, ciudadanos.clase),
			libro = COALESCE(excluded.libro, ciudadanos.libro),
			folio = COALESCE(excluded.folio, ciudadanos.folio),
			updated_at = excluded.updated_at
	`, dni,
		nullString(rec.Get(domain.FieldApellidos)),
		nullString(rec.Get(domain.FieldNombres)),
		nullDate(rec.Get(domain.FieldFechaNacimiento)),
		nullString(rec.Get(domain.FieldClase)),
		nullString(rec.Get(domain.FieldLibro)),
		nullString(rec.Get(domain.FieldFolio)),
		now, now)
	if err != nil {
		return fmt.Errorf("saving ciudadano: %w", err)
	}

	var citizenID int64
	if err := tx.QueryRowContext(ctx, "SELECT id FROM ciudadanos WHERE dni = ?", dni).Scan(&citizenID); err != nil {
		return fmt.Errorf("reading ciudadano id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO servicio_militar (ciudadano_id, unidad_alta, fecha_alta, unidad_baja, fecha_baja, grado_baja)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(ciudadano_id) DO UPDATE SET
			unidad_alta = COALESCE(excluded.unidad_alta, servicio_militar.unidad_alta),
			fecha_alta = COALESCE(excluded.fecha_alta, servicio_militar.fecha_alta),
			unidad_baja = COALESCE(excluded.unidad_baja, servicio_militar.unidad_baja),
			fecha_baja = COALESCE(excluded.fecha_baja, servicio_militar.fecha_baja),
			grado_baja = COALESCE(excluded.grado_baja, servicio_militar.grado_baja)
	`, citizenID,
		nullString(rec.Get(domain.FieldUnidadAlta)),
		nullDate(rec.Get(domain.FieldFechaAlta)),
		nullString(rec.Get(domain.FieldUnidadBaja)),
		nullDate(rec.Get(domain.FieldFechaBaja)),
		nullString(rec.Get(domain.FieldGrado)))
	if err != nil {
		return fmt.Errorf("saving servicio_militar: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documentos (id, ciudadano_id, tipo, ruta, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), citizenID, traceKindOCR, sourceID, now)
	if err != nil {
		return fmt.Errorf("saving documento: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing record: %w", err)
	}
	return nil
}

const selectRecord = `
	SELECT c.dni, c.apellidos, c.nombres, c.fecha_nacimiento, c.clase, c.libro, c.folio,
		s.unidad_alta, s.fecha_alta, s.unidad_baja, s.fecha_baja, s.grado_baja
	FROM ciudadanos c
	LEFT JOIN servicio_militar s ON s.ciudadano_id = c.id`

// Get retrieves the record stored under dni.
func (s *recordStore) Get(ctx context.Context, dni string) (*domain.Record, error) {
	row := s.store.db.QueryRowContext(ctx, selectRecord+" WHERE c.dni = ?", dni)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns all stored records ordered by DNI.
func (s *recordStore) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.store.db.QueryContext(ctx, selectRecord+" ORDER BY c.dni")
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// Documents returns the transcripts saved under dni, oldest first.
func (s *recordStore) Documents(ctx context.Context, dni string) ([]domain.SourceTrace, error) {
	var citizenID int64
	err := s.store.db.QueryRowContext(ctx, "SELECT id FROM ciudadanos WHERE dni = ?", dni).Scan(&citizenID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying ciudadano: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, tipo, ruta, created_at FROM documentos
		WHERE ciudadano_id = ?
		ORDER BY rowid
	`, citizenID)
	if err != nil {
		return nil, fmt.Errorf("querying documentos: %w", err)
	}
	defer rows.Close()

	var traces []domain.SourceTrace //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			trace     domain.SourceTrace
			createdAt string
		)
		if err := rows.Scan(&trace.ID, &trace.Kind, &trace.SourceID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning documento: %w", err)
		}
		trace.DNI = dni
		if trace.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing documento time: %w", err)
		}
		traces = append(traces, trace)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documentos: %w", err)
	}
	return traces, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// recordColumns lists the fields in selectRecord column order.
var recordColumns = []domain.Field{
	domain.FieldDNI,
	domain.FieldApellidos,
	domain.FieldNombres,
	domain.FieldFechaNacimiento,
	domain.FieldClase,
	domain.FieldLibro,
	domain.FieldFolio,
	domain.FieldUnidadAlta,
	domain.FieldFechaAlta,
	domain.FieldUnidadBaja,
	domain.FieldFechaBaja,
	domain.FieldGrado,
}

func scanRecord(row scanner) (*domain.Record, error) {
	values := make([]sql.NullString, len(recordColumns))
	dest := make([]any, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	var rec domain.Record
	for i, f := range recordColumns {
		rec.Set(f, values[i].String)
	}
	return &rec, nil
}

// nullDate returns NULL unless s is a YYYY-MM-DD calendar date.
func nullDate(s string) sql.NullString {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
