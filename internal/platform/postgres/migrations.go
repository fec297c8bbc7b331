package postgres

import "embed"

// MigrationsFS embeds the goose SQL migrations so the binary can migrate
// its schema without shipping the files separately.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migrations inside MigrationsFS.
const MigrationsDir = "migrations"
