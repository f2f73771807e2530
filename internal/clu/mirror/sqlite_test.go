package mirror

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemmakit/clu/internal/clu/core"
)

func newTestMirror(t *testing.T) *SQLiteMirror {
	t.Helper()
	ctx := context.Background()
	m, err := NewSQLite(ctx, filepath.Join(t.TempDir(), "lemmas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close(ctx) })
	require.NoError(t, m.EnsureSchema(ctx))
	return m
}

func mirrorLemmas() []core.Lemma {
	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []core.Lemma{
		{
			ID: "L1000", Statement: "base", Proof: "trivial",
			Tags: []string{"x"}, Category: "algebra",
			Created: stamp, Modified: stamp,
		},
		{
			ID: "L1001", Statement: "derived", Category: "algebra",
			Dependencies: []string{"L1000"},
			Created:      stamp, Modified: stamp,
		},
	}
}

func TestSyncAllPopulatesTables(t *testing.T) {
	m := newTestMirror(t)
	ctx := context.Background()

	require.NoError(t, m.SyncAll(ctx, mirrorLemmas()))

	var lemmas, edges int
	require.NoError(t, m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lemmas").Scan(&lemmas))
	require.NoError(t, m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dependencies").Scan(&edges))
	assert.Equal(t, 2, lemmas)
	assert.Equal(t, 1, edges)

	var tags string
	require.NoError(t, m.db.QueryRowContext(ctx,
		"SELECT tags FROM lemmas WHERE id = ?", "L1000").Scan(&tags))
	assert.JSONEq(t, `["x"]`, tags)
}

func TestSyncAllReplacesPreviousState(t *testing.T) {
	m := newTestMirror(t)
	ctx := context.Background()

	require.NoError(t, m.SyncAll(ctx, mirrorLemmas()))
	require.NoError(t, m.SyncAll(ctx, mirrorLemmas()[:1]))

	var lemmas, edges int
	require.NoError(t, m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lemmas").Scan(&lemmas))
	require.NoError(t, m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dependencies").Scan(&edges))
	assert.Equal(t, 1, lemmas)
	assert.Equal(t, 0, edges)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	m := newTestMirror(t)
	assert.NoError(t, m.EnsureSchema(context.Background()))
}
