package core

import (
	"time"
)

// FormatVersion identifies the persisted document layout.
const FormatVersion = "1.0.0"

// DefaultCategory is assigned when a lemma is created without one.
const DefaultCategory = "general"

// Lemma represents a single recorded result: a statement, its proof, and
// the directed depends-on edges to other lemmas. The ID is the map key in
// the persisted document and is never serialized inline.
type Lemma struct {
	ID           string    `json:"-"`
	Statement    string    `json:"statement"`
	Proof        string    `json:"proof"`
	Tags         []string  `json:"tags"`
	Category     string    `json:"category"`
	Notes        string    `json:"notes"`
	Dependencies []string  `json:"dependencies"`
	Created      time.Time `json:"created"`
	Modified     time.Time `json:"modified"`
}

// Clone returns a deep copy so callers cannot mutate stored slices.
func (l Lemma) Clone() Lemma {
	c := l
	c.Tags = append([]string(nil), l.Tags...)
	c.Dependencies = append([]string(nil), l.Dependencies...)
	return c
}

// DependsOn reports whether the lemma has a direct edge to id.
func (l Lemma) DependsOn(id string) bool {
	for _, dep := range l.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}

// HasTag reports whether the lemma carries the given tag.
func (l Lemma) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Patch describes a partial update to a lemma. Nil fields are left
// untouched. Only these five fields are updatable; id, dependencies and
// timestamps are owned by the store and the graph.
type Patch struct {
	Statement *string
	Proof     *string
	Tags      *[]string
	Category  *string
	Notes     *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Statement == nil && p.Proof == nil && p.Tags == nil &&
		p.Category == nil && p.Notes == nil
}

// Metadata describes the collection as a whole.
type Metadata struct {
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"last_modified"`
	Version      string    `json:"version"`
}

// Stats summarizes the collection.
type Stats struct {
	Total            int            `json:"total_lemmas"`
	WithProof        int            `json:"with_proof"`
	WithoutProof     int            `json:"without_proof"`
	WithDependencies int            `json:"with_dependencies"`
	Categories       map[string]int `json:"categories"`
	Tags             map[string]int `json:"tags"`
	Created          time.Time      `json:"created"`
	LastModified     time.Time      `json:"last_modified"`
	Version          string         `json:"version"`
}

// GraphStore is the view of the record store the dependency graph needs.
// Keeping the graph behind this interface keeps record fields and graph
// topology independently testable.
type GraphStore interface {
	// Exists reports whether a record with the given id is present.
	Exists(id string) bool

	// Dependencies returns a copy of the record's outgoing edges.
	Dependencies(id string) []string

	// SetDependencies replaces the record's outgoing edges and persists
	// the store.
	SetDependencies(id string, deps []string) error

	// Touch stamps the record's modified time without persisting.
	Touch(id string)

	// IDs returns all record ids in lexicographic order.
	IDs() []string
}
