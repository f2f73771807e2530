// Package mirror maintains secondary copies of the dependency graph in
// an external database for visualization and ad-hoc queries. The JSON
// store stays the source of truth; mirrors are rebuilt from it on sync,
// never merged back.
package mirror

import (
	"context"
	"fmt"

	"github.com/lemmakit/clu/internal/clu/config"
	"github.com/lemmakit/clu/internal/clu/core"
)

// Mirror is a graph mirror backend. SQLite and Neo4j implement it.
type Mirror interface {
	// EnsureSchema creates tables, constraints and indexes as needed.
	EnsureSchema(ctx context.Context) error

	// SyncAll replaces the mirror's contents with the given lemmas and
	// their dependency edges.
	SyncAll(ctx context.Context, lemmas []core.Lemma) error

	// Close releases the backend connection.
	Close(ctx context.Context) error
}

// New opens the mirror selected by the configuration.
func New(ctx context.Context, cfg config.Mirror) (Mirror, error) {
	switch cfg.Backend {
	case "sqlite":
		return NewSQLite(ctx, cfg.SQLitePath)
	case "neo4j":
		return NewNeo4j(ctx, Neo4jConfig{
			URI:      cfg.Neo4jURI,
			Username: cfg.Neo4jUser,
			Password: cfg.Neo4jPassword,
		})
	case "":
		return nil, fmt.Errorf("no mirror backend configured")
	}
	return nil, fmt.Errorf("unknown mirror backend %q", cfg.Backend)
}
