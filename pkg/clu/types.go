package clu

import (
	"time"

	"github.com/lemmakit/clu/internal/clu/core"
	"github.com/lemmakit/clu/internal/clu/search"
)

// Lemma is a recorded result with its proof and dependency edges.
type Lemma struct {
	ID           string
	Statement    string
	Proof        string
	Tags         []string
	Category     string
	Notes        string
	Dependencies []string
	Created      time.Time
	Modified     time.Time
}

// Patch is a partial update to a lemma. Nil fields are left untouched;
// only these five fields can be changed at all.
type Patch struct {
	Statement *string
	Proof     *string
	Tags      *[]string
	Category  *string
	Notes     *string
}

// Query describes search filters, AND-combined.
type Query struct {
	Text     string
	Tags     []string
	Category string
	HasProof *bool
	Regex    bool
}

// Metadata describes the collection as a whole.
type Metadata struct {
	Created      time.Time
	LastModified time.Time
	Version      string
}

// Stats summarizes the collection.
type Stats struct {
	Total            int
	WithProof        int
	WithoutProof     int
	WithDependencies int
	Categories       map[string]int
	Tags             map[string]int
	Created          time.Time
	LastModified     time.Time
	Version          string
}

func convertLemma(l core.Lemma) Lemma {
	return Lemma{
		ID:           l.ID,
		Statement:    l.Statement,
		Proof:        l.Proof,
		Tags:         l.Tags,
		Category:     l.Category,
		Notes:        l.Notes,
		Dependencies: l.Dependencies,
		Created:      l.Created,
		Modified:     l.Modified,
	}
}

func convertLemmas(lemmas []core.Lemma) []Lemma {
	out := make([]Lemma, 0, len(lemmas))
	for _, l := range lemmas {
		out = append(out, convertLemma(l))
	}
	return out
}

func convertPatch(p Patch) core.Patch {
	return core.Patch{
		Statement: p.Statement,
		Proof:     p.Proof,
		Tags:      p.Tags,
		Category:  p.Category,
		Notes:     p.Notes,
	}
}

func convertQuery(q Query) search.Query {
	return search.Query{
		Text:     q.Text,
		Tags:     q.Tags,
		Category: q.Category,
		HasProof: q.HasProof,
		Regex:    q.Regex,
	}
}

func convertMetadata(m core.Metadata) Metadata {
	return Metadata{
		Created:      m.Created,
		LastModified: m.LastModified,
		Version:      m.Version,
	}
}

func convertStats(s core.Stats) Stats {
	return Stats{
		Total:            s.Total,
		WithProof:        s.WithProof,
		WithoutProof:     s.WithoutProof,
		WithDependencies: s.WithDependencies,
		Categories:       s.Categories,
		Tags:             s.Tags,
		Created:          s.Created,
		LastModified:     s.LastModified,
		Version:          s.Version,
	}
}
