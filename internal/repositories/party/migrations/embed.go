package migrations

import "embed"

// FS contains the embedded SQLite schema for party storage.
//
//go:embed *.sql
var FS embed.FS
