package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemmakit/clu/internal/clu/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "lemmas.json"))
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t)

	first := s.Add("first", "", nil, "", "")
	second := s.Add("second", "", nil, "", "")
	third := s.Add("third", "", nil, "", "")

	assert.Equal(t, "L1000", first)
	assert.Equal(t, "L1001", second)
	assert.Equal(t, "L1002", third)
}

func TestDeletedIDsAreNeverReused(t *testing.T) {
	s := newTestStore(t)

	id := s.Add("doomed", "", nil, "", "")
	require.True(t, s.Delete(id))

	next := s.Add("successor", "", nil, "", "")
	assert.NotEqual(t, id, next)
	assert.Equal(t, "L1001", next)
}

func TestAddPopulatesDefaults(t *testing.T) {
	s := newTestStore(t)

	id := s.Add("statement only", "", nil, "", "")
	l, ok := s.Get(id)
	require.True(t, ok)

	assert.Equal(t, "statement only", l.Statement)
	assert.Empty(t, l.Proof)
	assert.Equal(t, core.DefaultCategory, l.Category)
	assert.Empty(t, l.Tags)
	assert.Empty(t, l.Dependencies)
	assert.False(t, l.Created.IsZero())
	assert.False(t, l.Modified.IsZero())
}

func TestGetUnknownID(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.Get("L9999")
	assert.False(t, ok)
}

func TestUpdateAppliesOnlySetFields(t *testing.T) {
	s := newTestStore(t)
	id := s.Add("original", "original proof", []string{"a"}, "algebra", "note")

	proof := "revised proof"
	require.True(t, s.Update(id, core.Patch{Proof: &proof}))

	l, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "original", l.Statement)
	assert.Equal(t, "revised proof", l.Proof)
	assert.Equal(t, []string{"a"}, l.Tags)
	assert.Equal(t, "algebra", l.Category)
	assert.Equal(t, "note", l.Notes)
	assert.False(t, l.Modified.Before(l.Created))
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestStore(t)
	statement := "anything"
	assert.False(t, s.Update("L42", core.Patch{Statement: &statement}))
}

func TestDeleteRetractsDependencyEdges(t *testing.T) {
	s := newTestStore(t)
	base := s.Add("base", "", nil, "", "")
	derived := s.Add("derived", "", nil, "", "")
	require.NoError(t, s.SetDependencies(derived, []string{base}))

	require.True(t, s.Delete(base))

	l, ok := s.Get(derived)
	require.True(t, ok)
	assert.Empty(t, l.Dependencies, "deleted id must be retracted from dependency lists")
}

func TestDeleteUnknownID(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Delete("L42"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lemmas.json")

	s := Open(path)
	a := s.Add("a", "proof a", []string{"x", "y"}, "algebra", "")
	b := s.Add("b", "", nil, "", "n")
	require.NoError(t, s.SetDependencies(b, []string{a}))
	counterBefore := s.Counter()

	reloaded := Open(path)
	assert.Equal(t, 2, reloaded.Len())
	assert.GreaterOrEqual(t, reloaded.Counter(), counterBefore)

	la, ok := reloaded.Get(a)
	require.True(t, ok)
	assert.Equal(t, "a", la.Statement)
	assert.Equal(t, "proof a", la.Proof)
	assert.Equal(t, []string{"x", "y"}, la.Tags)
	assert.Equal(t, "algebra", la.Category)

	lb, ok := reloaded.Get(b)
	require.True(t, ok)
	assert.Equal(t, []string{a}, lb.Dependencies)
	assert.Equal(t, "n", lb.Notes)
}

func TestOpenCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lemmas.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0644))

	s := Open(path)
	assert.Equal(t, 0, s.Len())

	// The store stays usable after the failed load.
	id := s.Add("fresh start", "", nil, "", "")
	_, ok := s.Get(id)
	assert.True(t, ok)
}

func TestImportMergesWithoutOverwriting(t *testing.T) {
	dir := t.TempDir()

	other := Open(filepath.Join(dir, "other.json"))
	other.Add("imported one", "", nil, "", "")
	other.Add("imported two", "", nil, "", "")
	require.NoError(t, other.Save())

	s := Open(filepath.Join(dir, "lemmas.json"))
	s.Add("mine", "", nil, "", "") // takes L1000, colliding with the import

	require.NoError(t, s.ImportFile(filepath.Join(dir, "other.json")))

	l, ok := s.Get("L1000")
	require.True(t, ok)
	assert.Equal(t, "mine", l.Statement, "existing ids are never overwritten")

	imported, ok := s.Get("L1001")
	require.True(t, ok)
	assert.Equal(t, "imported two", imported.Statement)
}

func TestImportAdvancesCounter(t *testing.T) {
	dir := t.TempDir()

	other := Open(filepath.Join(dir, "other.json"))
	for i := 0; i < 5; i++ {
		other.Add("filler", "", nil, "", "")
	}
	require.NoError(t, other.Save())

	s := Open(filepath.Join(dir, "lemmas.json"))
	require.NoError(t, s.ImportFile(filepath.Join(dir, "other.json")))

	next := s.Add("after import", "", nil, "", "")
	assert.Equal(t, "L1005", next, "counter must advance past imported ids")
}

func TestImportIgnoresNonNumericSuffixes(t *testing.T) {
	dir := t.TempDir()
	doc := `{
		"metadata": {"created": "2024-01-01T00:00:00Z", "last_modified": "2024-01-01T00:00:00Z", "version": "1.0.0"},
		"code_counter": 1000,
		"lemmas": {
			"EUCLID": {"statement": "legacy id", "proof": "", "tags": [], "category": "general",
			           "notes": "", "dependencies": [],
			           "created": "2024-01-01T00:00:00Z", "modified": "2024-01-01T00:00:00Z"}
		}
	}`
	path := filepath.Join(dir, "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s := Open(filepath.Join(dir, "lemmas.json"))
	require.NoError(t, s.ImportFile(path))

	_, ok := s.Get("EUCLID")
	assert.True(t, ok)
	assert.Equal(t, 1000, s.Counter(), "non-numeric suffixes do not move the counter")
}

func TestConcurrentAddsAssignDistinctIDs(t *testing.T) {
	s := newTestStore(t)

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	ids := make(chan string, writers*perWriter)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				ids <- s.Add("concurrent", "", nil, "", "")
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		require.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, writers*perWriter)
	assert.Equal(t, writers*perWriter, s.Len())
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	s := newTestStore(t)
	id := s.Add("shared", "", nil, "", "")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.Add("writer", "", nil, "", "")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.Get(id)
				s.All()
				s.Stats()
			}
		}()
	}
	wg.Wait()

	l, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "shared", l.Statement)
}

func TestFailedSaveKeepsMemoryIntact(t *testing.T) {
	// The path is a directory, so every write fails.
	s := Open(t.TempDir())

	id := s.Add("survives the failed write", "", nil, "", "")
	l, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "survives the failed write", l.Statement)

	proof := "still applied"
	require.True(t, s.Update(id, core.Patch{Proof: &proof}))
	l, ok = s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "still applied", l.Proof)

	assert.Error(t, s.Save())
}

func TestIDsAreSorted(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 4; i++ {
		s.Add("filler", "", nil, "", "")
	}
	assert.Equal(t, []string{"L1000", "L1001", "L1002", "L1003"}, s.IDs())
}
