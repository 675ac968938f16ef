// Package migrations holds the numbered schema files of the record database.
// Only *.up.sql files are applied; *.down.sql files are kept for manual
// rollback.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
