// Package graph maintains the directed depends-on edges between lemmas
// and answers closure queries over them. Edges live inline on each
// record; this package is the only place that manipulates them.
package graph

import (
	"sort"

	"github.com/lemmakit/clu/internal/clu/core"
	"github.com/lemmakit/clu/internal/clu/logger"
)

// Graph is an adjacency view over a record store. It owns no state of
// its own; an edge exists exactly when the source record lists it.
type Graph struct {
	store core.GraphStore
}

// New creates a graph over the given store view.
func New(store core.GraphStore) *Graph {
	return &Graph{store: store}
}

// AddDependency records that id depends on dependsOn. Both records must
// exist or the call fails with no mutation. Adding an existing edge is
// an idempotent success: the edge is not duplicated and the record's
// modified time is left alone.
func (g *Graph) AddDependency(id, dependsOn string) bool {
	if !g.store.Exists(id) || !g.store.Exists(dependsOn) {
		return false
	}

	deps := g.store.Dependencies(id)
	for _, dep := range deps {
		if dep == dependsOn {
			return true
		}
	}

	g.store.Touch(id)
	if err := g.store.SetDependencies(id, append(deps, dependsOn)); err != nil {
		logger.Log("persisting edge %s -> %s: %v", id, dependsOn, err)
	}
	return true
}

// RemoveDependency deletes the edge from id to dependsOn. Fails when id
// is unknown or the edge is not present.
func (g *Graph) RemoveDependency(id, dependsOn string) bool {
	if !g.store.Exists(id) {
		return false
	}

	deps := g.store.Dependencies(id)
	found := false
	kept := deps[:0]
	for _, dep := range deps {
		if dep == dependsOn {
			found = true
			continue
		}
		kept = append(kept, dep)
	}
	if !found {
		return false
	}

	if err := g.store.SetDependencies(id, kept); err != nil {
		logger.Log("persisting edge removal %s -> %s: %v", id, dependsOn, err)
	}
	return true
}

// Chain returns everything id depends on, directly or indirectly, in
// lexicographic order. The traversal is an iterative worklist with a
// visited set, so cycles terminate instead of looping; the origin is
// excluded even when a cycle makes it reachable from itself. An unknown
// id yields an empty result, not an error.
func (g *Graph) Chain(id string) []string {
	if !g.store.Exists(id) {
		return []string{}
	}

	visited := make(map[string]bool)
	work := []string{id}

	for len(work) > 0 {
		current := work[len(work)-1]
		work = work[:len(work)-1]
		if visited[current] {
			continue
		}
		visited[current] = true
		work = append(work, g.store.Dependencies(current)...)
	}

	delete(visited, id)

	chain := make([]string, 0, len(visited))
	for dep := range visited {
		chain = append(chain, dep)
	}
	sort.Strings(chain)
	return chain
}

// Dependents returns the ids whose dependency list directly contains id,
// in lexicographic order. Deliberately one hop only: the reverse
// relation is not transitive, unlike Chain.
func (g *Graph) Dependents(id string) []string {
	dependents := []string{}
	for _, other := range g.store.IDs() {
		for _, dep := range g.store.Dependencies(other) {
			if dep == id {
				dependents = append(dependents, other)
				break
			}
		}
	}
	sort.Strings(dependents)
	return dependents
}
