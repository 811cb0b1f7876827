package migrations

import "embed"

// FS holds the schema migrations applied on every open.
//
//go:embed *.sql
var FS embed.FS
