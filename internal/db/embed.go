package db

import "embed"

// EmbedMigrations holds the schema migrations compiled into the binary, so
// a deployment is a single executable plus its SQLite file.
//
//go:embed migrations/*.sql
var EmbedMigrations embed.FS
