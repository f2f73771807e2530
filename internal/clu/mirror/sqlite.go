package mirror

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lemmakit/clu/internal/clu/core"
)

// SQLiteMirror keeps the graph in a local SQLite database.
type SQLiteMirror struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dbPath.
func NewSQLite(ctx context.Context, dbPath string) (*SQLiteMirror, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}

	for _, pragma := range allPragmas() {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}

	return &SQLiteMirror{db: db}, nil
}

// EnsureSchema creates the tables and indexes.
func (m *SQLiteMirror) EnsureSchema(ctx context.Context) error {
	for _, stmt := range allSchemaStatements() {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// SyncAll rebuilds the mirror from the given lemmas in one transaction.
func (m *SQLiteMirror) SyncAll(ctx context.Context, lemmas []core.Lemma) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting sync transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM dependencies"); err != nil {
		return fmt.Errorf("clearing dependencies: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM lemmas"); err != nil {
		return fmt.Errorf("clearing lemmas: %w", err)
	}

	insertLemma, err := tx.PrepareContext(ctx, `
		INSERT INTO lemmas (id, statement, proof, tags, category, notes, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing lemma insert: %w", err)
	}
	defer insertLemma.Close()

	insertEdge, err := tx.PrepareContext(ctx, `
		INSERT INTO dependencies (source_id, target_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing edge insert: %w", err)
	}
	defer insertEdge.Close()

	for _, l := range lemmas {
		// Tags are a JSON array; SQLite has no native list type.
		tagsJSON, err := json.Marshal(l.Tags)
		if err != nil {
			return fmt.Errorf("encoding tags for %s: %w", l.ID, err)
		}
		if _, err := insertLemma.ExecContext(ctx,
			l.ID, l.Statement, l.Proof, string(tagsJSON), l.Category, l.Notes,
			l.Created, l.Modified); err != nil {
			return fmt.Errorf("inserting %s: %w", l.ID, err)
		}
		for _, dep := range l.Dependencies {
			if _, err := insertEdge.ExecContext(ctx, l.ID, dep); err != nil {
				return fmt.Errorf("inserting edge %s -> %s: %w", l.ID, dep, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sync: %w", err)
	}
	return nil
}

// Close closes the database.
func (m *SQLiteMirror) Close(ctx context.Context) error {
	return m.db.Close()
}
