package migrations

import "embed"

//go:embed *.sql
var migrationFiles embed.FS
