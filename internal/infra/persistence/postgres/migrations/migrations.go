// Package migrations embeds the versioned SQL schema applied by cmd/migrate.
package migrations

import "embed"

// FS holds the golang-migrate style <version>_<name>.{up,down}.sql files.
//
//go:embed *.sql
var FS embed.FS
