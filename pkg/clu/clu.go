// Package clu is the public face of the codified lemma utility: a
// JSON-backed store of lemmas, the dependency graph over them, search,
// and multi-format export.
package clu

import (
	"fmt"
	"os"

	"github.com/lemmakit/clu/internal/clu/export"
	"github.com/lemmakit/clu/internal/clu/graph"
	"github.com/lemmakit/clu/internal/clu/migration"
	"github.com/lemmakit/clu/internal/clu/search"
	"github.com/lemmakit/clu/internal/clu/store"
)

// CLU bundles a record store with its dependency graph.
type CLU struct {
	store *store.Store
	graph *graph.Graph
}

// Open creates a utility backed by the JSON file at path. Missing or
// unreadable files start an empty collection.
func Open(path string) *CLU {
	s := store.Open(path)
	return &CLU{
		store: s,
		graph: graph.New(s),
	}
}

// Add records a new lemma and returns its assigned id.
func (c *CLU) Add(statement, proof string, tags []string, category, notes string) string {
	return c.store.Add(statement, proof, tags, category, notes)
}

// Get retrieves a lemma by id.
func (c *CLU) Get(id string) (Lemma, bool) {
	l, ok := c.store.Get(id)
	if !ok {
		return Lemma{}, false
	}
	return convertLemma(l), true
}

// Update applies a patch to an existing lemma.
func (c *CLU) Update(id string, patch Patch) bool {
	return c.store.Update(id, convertPatch(patch))
}

// Delete removes a lemma and retracts it from every other lemma's
// dependency list.
func (c *CLU) Delete(id string) bool {
	return c.store.Delete(id)
}

// AddDependency records that id depends on dependsOn.
func (c *CLU) AddDependency(id, dependsOn string) bool {
	return c.graph.AddDependency(id, dependsOn)
}

// RemoveDependency removes the edge from id to dependsOn.
func (c *CLU) RemoveDependency(id, dependsOn string) bool {
	return c.graph.RemoveDependency(id, dependsOn)
}

// DependencyChain returns everything id depends on, directly or
// indirectly, lexicographically ordered.
func (c *CLU) DependencyChain(id string) []string {
	return c.graph.Chain(id)
}

// Dependents returns the lemmas that directly depend on id.
func (c *CLU) Dependents(id string) []string {
	return c.graph.Dependents(id)
}

// Search filters the collection.
func (c *CLU) Search(q Query) []Lemma {
	return convertLemmas(search.Filter(c.store.All(), convertQuery(q)))
}

// SearchByTag returns the lemmas carrying the given tag.
func (c *CLU) SearchByTag(tag string) []Lemma {
	return convertLemmas(search.ByTag(c.store.All(), tag))
}

// All returns every lemma in lexicographic id order.
func (c *CLU) All() []Lemma {
	return convertLemmas(c.store.All())
}

// ListAll maps every id to its statement.
func (c *CLU) ListAll() map[string]string {
	return c.store.ListAll()
}

// ListCategories counts lemmas per category.
func (c *CLU) ListCategories() map[string]int {
	return c.store.Categories()
}

// ListTags counts tag usage.
func (c *CLU) ListTags() map[string]int {
	return c.store.TagCounts()
}

// ExportLemma renders one lemma; false when the id is unknown.
func (c *CLU) ExportLemma(id, format string) (string, bool) {
	l, ok := c.store.Get(id)
	if !ok {
		return "", false
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		f = export.Text
	}
	return export.Render(l, f), true
}

// ExportAll renders the whole collection and, when filename is not
// empty, also writes it there.
func (c *CLU) ExportAll(format, filename string) (string, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return "", err
	}
	content, err := export.RenderAll(c.store.All(), c.store.Metadata(), f)
	if err != nil {
		return "", err
	}
	if filename != "" {
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			return "", fmt.Errorf("writing %s: %w", filename, err)
		}
	}
	return content, nil
}

// ImportFile merges lemmas from another store document. Existing ids
// are never overwritten.
func (c *CLU) ImportFile(path string) error {
	return c.store.ImportFile(path)
}

// ExportArchive writes the collection as a tar archive at path.
func (c *CLU) ExportArchive(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return migration.NewExporter(c.store, f).Export()
}

// ImportArchive merges a tar archive at path into the collection.
func (c *CLU) ImportArchive(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	_, err = migration.NewImporter(c.store, f).Import()
	return err
}

// Stats summarizes the collection.
func (c *CLU) Stats() Stats {
	return convertStats(c.store.Stats())
}

// Metadata returns the collection metadata.
func (c *CLU) Metadata() Metadata {
	return convertMetadata(c.store.Metadata())
}

// Save persists the store explicitly. Mutating operations already
// persist; this is for forcing a write after external edits.
func (c *CLU) Save() error {
	return c.store.Save()
}

// Len returns the number of lemmas.
func (c *CLU) Len() int {
	return c.store.Len()
}
