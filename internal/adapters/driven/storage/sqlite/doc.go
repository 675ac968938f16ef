// Package sqlite provides the SQLite-based implementation of driven.RecordStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// Records are split the way the paper registry is: a ciudadanos row keyed by
// DNI, a servicio_militar row per citizen, and one documentos row for every
// transcript a citizen was read from. The schema is managed through versioned
// migrations stored in the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.registro/data/registro.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
