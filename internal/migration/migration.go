package migration

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed *.sql
var files embed.FS

const dialect = "postgres"

func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: files,
		Root:       ".",
	}
}

// Run applies up to max migrations in the given direction. max <= 0 means all.
func Run(db *sql.DB, direction migrate.MigrationDirection, max int) (int, error) {
	return migrate.ExecMax(db, dialect, Source(), direction, max)
}

// Pending lists the migration ids not yet applied.
func Pending(db *sql.DB) ([]string, error) {
	planned, _, err := migrate.PlanMigration(db, dialect, Source(), migrate.Up, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(planned))
	for _, m := range planned {
		ids = append(ids, m.Id)
	}
	return ids, nil
}
