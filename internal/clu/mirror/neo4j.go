package mirror

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/lemmakit/clu/internal/clu/core"
)

// Neo4jConfig holds Neo4j connection configuration.
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// Neo4jMirror keeps the graph in a Neo4j database: Lemma nodes linked by
// DEPENDS_ON relationships.
type Neo4jMirror struct {
	driver neo4j.DriverWithContext
}

// NewNeo4j connects to Neo4j and verifies connectivity.
func NewNeo4j(ctx context.Context, cfg Neo4jConfig) (*Neo4jMirror, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}

	return &Neo4jMirror{driver: driver}, nil
}

// EnsureSchema creates the id uniqueness constraint.
func (m *Neo4jMirror) EnsureSchema(ctx context.Context) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: "neo4j"})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			CREATE CONSTRAINT lemma_id IF NOT EXISTS
			FOR (l:Lemma) REQUIRE l.id IS UNIQUE
		`
		_, err := tx.Run(ctx, query, nil)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("creating constraint: %w", err)
	}
	return nil
}

// SyncAll replaces the mirrored graph with the given lemmas.
func (m *Neo4jMirror) SyncAll(ctx context.Context, lemmas []core.Lemma) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: "neo4j"})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `MATCH (l:Lemma) DETACH DELETE l`, nil); err != nil {
			return nil, fmt.Errorf("clearing mirror: %w", err)
		}

		for _, l := range lemmas {
			query := `
				MERGE (l:Lemma {id: $id})
				SET l.statement = $statement,
				    l.proof = $proof,
				    l.tags = $tags,
				    l.category = $category,
				    l.notes = $notes,
				    l.created = datetime($created),
				    l.modified = datetime($modified)
			`
			params := map[string]any{
				"id":        l.ID,
				"statement": l.Statement,
				"proof":     l.Proof,
				"tags":      l.Tags,
				"category":  l.Category,
				"notes":     l.Notes,
				"created":   l.Created.Format("2006-01-02T15:04:05Z"),
				"modified":  l.Modified.Format("2006-01-02T15:04:05Z"),
			}
			if _, err := tx.Run(ctx, query, params); err != nil {
				return nil, fmt.Errorf("syncing %s: %w", l.ID, err)
			}
		}

		for _, l := range lemmas {
			for _, dep := range l.Dependencies {
				query := `
					MATCH (a:Lemma {id: $source}), (b:Lemma {id: $target})
					MERGE (a)-[:DEPENDS_ON]->(b)
				`
				params := map[string]any{"source": l.ID, "target": dep}
				if _, err := tx.Run(ctx, query, params); err != nil {
					return nil, fmt.Errorf("syncing edge %s -> %s: %w", l.ID, dep, err)
				}
			}
		}
		return nil, nil
	})
	return err
}

// Close closes the Neo4j connection.
func (m *Neo4jMirror) Close(ctx context.Context) error {
	return m.driver.Close(ctx)
}
