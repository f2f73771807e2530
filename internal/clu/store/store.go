// Package store owns the id -> lemma mapping, the id allocator, and the
// JSON persistence of the whole collection. Every mutating operation
// writes the full document back to disk before returning.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/lemmakit/clu/internal/clu/core"
	"github.com/lemmakit/clu/internal/clu/logger"
)

// initialCounter is the numeric suffix of the first id ever issued.
const initialCounter = 1000

// idPrefix is prepended to the counter when formatting ids.
const idPrefix = "L"

// Store holds the collection in memory and mirrors it to a JSON file.
// Safe for concurrent use within one process: clud serves a single
// instance across request goroutines. Multi-process access to the same
// file is unsupported (last writer wins, no file locking).
type Store struct {
	path     string
	mu       sync.RWMutex // Mutex for thread safety
	metadata core.Metadata
	counter  int
	lemmas   map[string]*core.Lemma
}

// document is the on-disk layout. The shape is an external contract:
// other tools read and write the same file.
type document struct {
	Metadata    core.Metadata          `json:"metadata"`
	CodeCounter int                    `json:"code_counter"`
	Lemmas      map[string]*core.Lemma `json:"lemmas"`
}

// Open creates a store backed by the given file and loads any existing
// state. An unreadable or malformed file is logged and the store starts
// empty rather than failing.
func Open(path string) *Store {
	now := time.Now()
	s := &Store{
		path: path,
		metadata: core.Metadata{
			Created:      now,
			LastModified: now,
			Version:      core.FormatVersion,
		},
		counter: initialCounter,
		lemmas:  make(map[string]*core.Lemma),
	}
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		logger.Log("loading %s: %v, starting empty", path, err)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Metadata returns the collection metadata.
func (s *Store) Metadata() core.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadata
}

// Counter returns the next numeric suffix to be issued.
func (s *Store) Counter() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counter
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lemmas)
}

// Add creates a new lemma, assigns it a fresh id, persists, and returns
// the id. Deleted ids are never reused; the counter only moves forward.
func (s *Store) Add(statement, proof string, tags []string, category, notes string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s%d", idPrefix, s.counter)
	s.counter++

	if category == "" {
		category = core.DefaultCategory
	}

	now := time.Now()
	s.lemmas[id] = &core.Lemma{
		ID:           id,
		Statement:    statement,
		Proof:        proof,
		Tags:         append([]string{}, tags...),
		Category:     category,
		Notes:        notes,
		Dependencies: []string{},
		Created:      now,
		Modified:     now,
	}

	s.metadata.LastModified = now
	s.persist()
	return id
}

// Get returns a copy of the lemma, or false if the id is unknown.
func (s *Store) Get(id string) (core.Lemma, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lemmas[id]
	if !ok {
		return core.Lemma{}, false
	}
	return l.Clone(), true
}

// Update applies the patch to an existing lemma, stamps its modified
// time, and persists. Returns false if the id is unknown.
func (s *Store) Update(id string, patch core.Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lemmas[id]
	if !ok {
		return false
	}

	if patch.Statement != nil {
		l.Statement = *patch.Statement
	}
	if patch.Proof != nil {
		l.Proof = *patch.Proof
	}
	if patch.Tags != nil {
		l.Tags = append([]string{}, (*patch.Tags)...)
	}
	if patch.Category != nil {
		l.Category = *patch.Category
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}

	now := time.Now()
	l.Modified = now
	s.metadata.LastModified = now
	s.persist()
	return true
}

// Delete removes the lemma and retracts its id from every remaining
// record's dependency list. Dependents are kept; only the edges go.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lemmas[id]; !ok {
		return false
	}

	delete(s.lemmas, id)
	for _, l := range s.lemmas {
		l.Dependencies = remove(l.Dependencies, id)
	}

	s.metadata.LastModified = time.Now()
	s.persist()
	return true
}

// All returns copies of every lemma in lexicographic id order.
func (s *Store) All() []core.Lemma {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Lemma, 0, len(s.lemmas))
	for _, id := range s.ids() {
		out = append(out, s.lemmas[id].Clone())
	}
	return out
}

// ListAll maps every id to its statement.
func (s *Store) ListAll() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.lemmas))
	for id, l := range s.lemmas {
		out[id] = l.Statement
	}
	return out
}

// Categories counts lemmas per category.
func (s *Store) Categories() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories()
}

// TagCounts counts tag usage across the collection.
func (s *Store) TagCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tagCounts()
}

// Stats summarizes the collection.
func (s *Store) Stats() core.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := core.Stats{
		Total:        len(s.lemmas),
		Categories:   s.categories(),
		Tags:         s.tagCounts(),
		Created:      s.metadata.Created,
		LastModified: s.metadata.LastModified,
		Version:      s.metadata.Version,
	}
	for _, l := range s.lemmas {
		if l.Proof != "" {
			st.WithProof++
		}
		if len(l.Dependencies) > 0 {
			st.WithDependencies++
		}
	}
	st.WithoutProof = st.Total - st.WithProof
	return st
}

// Save writes the whole document to the backing file.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

// MarshalDocument encodes the full persisted document.
func (s *Store) MarshalDocument() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marshalDocument()
}

// Load replaces in-memory state with the backing file's contents. The
// in-memory state is only touched once the file has decoded cleanly.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding %s: %w", s.path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Metadata.Version != "" {
		s.metadata = doc.Metadata
	}
	if doc.CodeCounter != 0 {
		s.counter = doc.CodeCounter
	}
	s.lemmas = make(map[string]*core.Lemma, len(doc.Lemmas))
	for id, l := range doc.Lemmas {
		l.ID = id
		if l.Tags == nil {
			l.Tags = []string{}
		}
		if l.Dependencies == nil {
			l.Dependencies = []string{}
		}
		s.lemmas[id] = l
	}
	return nil
}

// ImportFile merges lemmas from another document at path. Existing ids
// are never overwritten.
func (s *Store) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := s.ImportDocument(data); err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}
	return nil
}

// ImportDocument merges lemmas from an encoded document. The counter is
// advanced past the highest numeric suffix seen among imported ids so
// future allocations cannot collide; ids without a numeric suffix are
// skipped for counter purposes.
func (s *Store) ImportDocument(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding import: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range doc.Lemmas {
		if _, exists := s.lemmas[id]; exists {
			continue
		}
		l.ID = id
		if l.Tags == nil {
			l.Tags = []string{}
		}
		if l.Dependencies == nil {
			l.Dependencies = []string{}
		}
		s.lemmas[id] = l

		if len(id) > 1 {
			if n, err := strconv.Atoi(id[1:]); err == nil && n >= s.counter {
				s.counter = n + 1
			}
		}
	}

	s.metadata.LastModified = time.Now()
	return s.save()
}

// save writes the document without locking; callers hold the lock.
func (s *Store) save() error {
	data, err := s.marshalDocument()
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) marshalDocument() ([]byte, error) {
	return json.MarshalIndent(document{
		Metadata:    s.metadata,
		CodeCounter: s.counter,
		Lemmas:      s.lemmas,
	}, "", "  ")
}

// persist saves and logs failures. Mutations keep their in-memory effect
// even when the write fails; the next successful save catches up.
// Callers hold the lock.
func (s *Store) persist() {
	if err := s.save(); err != nil {
		logger.Log("saving store: %v", err)
	}
}

func (s *Store) ids() []string {
	ids := make([]string, 0, len(s.lemmas))
	for id := range s.lemmas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) categories() map[string]int {
	out := make(map[string]int)
	for _, l := range s.lemmas {
		out[l.Category]++
	}
	return out
}

func (s *Store) tagCounts() map[string]int {
	out := make(map[string]int)
	for _, l := range s.lemmas {
		for _, tag := range l.Tags {
			out[tag]++
		}
	}
	return out
}

var _ core.GraphStore = (*Store)(nil)

// Exists implements core.GraphStore.
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lemmas[id]
	return ok
}

// Dependencies implements core.GraphStore.
func (s *Store) Dependencies(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lemmas[id]
	if !ok {
		return nil
	}
	return append([]string{}, l.Dependencies...)
}

// SetDependencies implements core.GraphStore.
func (s *Store) SetDependencies(id string, deps []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lemmas[id]
	if !ok {
		return fmt.Errorf("unknown id %q", id)
	}
	l.Dependencies = append([]string{}, deps...)
	return s.save()
}

// Touch implements core.GraphStore.
func (s *Store) Touch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.lemmas[id]; ok {
		l.Modified = time.Now()
	}
}

// IDs implements core.GraphStore.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids()
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
