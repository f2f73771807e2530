package migration

import (
	"archive/tar"
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemmakit/clu/internal/clu/store"
)

func TestArchiveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	src := store.Open(filepath.Join(dir, "src.json"))
	a := src.Add("base lemma", "trivial", []string{"x"}, "algebra", "")
	b := src.Add("built on it", "", nil, "", "")
	require.NoError(t, src.SetDependencies(b, []string{a}))

	var buf bytes.Buffer
	require.NoError(t, NewExporter(src, &buf).Export())

	dst := store.Open(filepath.Join(dir, "dst.json"))
	manifest, err := NewImporter(dst, bytes.NewReader(buf.Bytes())).Import()
	require.NoError(t, err)

	assert.Equal(t, 2, manifest.Lemmas)
	assert.Equal(t, src.Path(), manifest.Source)
	_, err = uuid.Parse(manifest.ID)
	assert.NoError(t, err)

	require.Equal(t, 2, dst.Len())
	got, ok := dst.Get(b)
	require.True(t, ok)
	assert.Equal(t, "built on it", got.Statement)
	assert.Equal(t, []string{a}, got.Dependencies)
}

func TestImportDoesNotOverwriteExisting(t *testing.T) {
	dir := t.TempDir()

	src := store.Open(filepath.Join(dir, "src.json"))
	src.Add("theirs", "", nil, "", "")

	var buf bytes.Buffer
	require.NoError(t, NewExporter(src, &buf).Export())

	dst := store.Open(filepath.Join(dir, "dst.json"))
	dst.Add("mine", "", nil, "", "") // same id as the archived lemma

	_, err := NewImporter(dst, bytes.NewReader(buf.Bytes())).Import()
	require.NoError(t, err)

	got, ok := dst.Get("L1000")
	require.True(t, ok)
	assert.Equal(t, "mine", got.Statement)
}

func TestImportRejectsMissingManifest(t *testing.T) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	doc := []byte(`{"metadata":{},"code_counter":1000,"lemmas":{}}`)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: documentName, Mode: 0644, Size: int64(len(doc)), ModTime: time.Now()}))
	_, err := tw.Write(doc)
	require.NoError(t, err)
	require.NoError(t, tw.Close())

	dst := store.Open(filepath.Join(t.TempDir(), "dst.json"))
	_, err = NewImporter(dst, bytes.NewReader(buf.Bytes())).Import()
	assert.Error(t, err)
}

func TestImportRejectsUnsupportedVersion(t *testing.T) {
	dir := t.TempDir()

	src := store.Open(filepath.Join(dir, "src.json"))
	var buf bytes.Buffer
	require.NoError(t, NewExporter(src, &buf).Export())

	tampered := bytes.Replace(buf.Bytes(), []byte(`"version": "1"`), []byte(`"version": "9"`), 1)
	dst := store.Open(filepath.Join(dir, "dst.json"))
	_, err := NewImporter(dst, bytes.NewReader(tampered)).Import()
	assert.Error(t, err)
}
