package migrations

import "embed"

// FS holds the schema migrations for every supported backend, one directory per driver.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SqliteDir   = "sqlite"
)
