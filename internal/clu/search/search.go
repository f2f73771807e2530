// Package search filters the collection by predicate. It holds no state;
// every call scans the records it is handed.
package search

import (
	"regexp"
	"strings"

	"github.com/lemmakit/clu/internal/clu/core"
	"github.com/lemmakit/clu/internal/clu/logger"
)

// Query describes the filters to apply. Zero-value fields are inactive;
// active filters are AND-combined.
type Query struct {
	// Text is matched against the concatenation of statement, proof and
	// notes: case-insensitive substring, or case-insensitive pattern
	// when Regex is set.
	Text string

	// Tags must all be present on a matching lemma.
	Tags []string

	// Category must match exactly.
	Category string

	// HasProof, when non-nil, selects lemmas with (or without) a proof.
	HasProof *bool

	// Regex switches Text to pattern matching.
	Regex bool
}

// Filter returns the lemmas matching every active predicate. An invalid
// regex pattern disables the text filter for the call rather than
// failing; the compile error is logged.
func Filter(lemmas []core.Lemma, q Query) []core.Lemma {
	var re *regexp.Regexp
	if q.Text != "" && q.Regex {
		var err error
		re, err = regexp.Compile("(?i)" + q.Text)
		if err != nil {
			logger.Log("invalid search pattern %q: %v", q.Text, err)
		}
	}

	results := []core.Lemma{}
	for _, l := range lemmas {
		if q.Category != "" && l.Category != q.Category {
			continue
		}
		if q.HasProof != nil && (l.Proof != "") != *q.HasProof {
			continue
		}
		if !hasAllTags(l, q.Tags) {
			continue
		}
		if q.Text != "" && !matchText(l, q, re) {
			continue
		}
		results = append(results, l)
	}
	return results
}

// ByTag returns the lemmas carrying the given tag.
func ByTag(lemmas []core.Lemma, tag string) []core.Lemma {
	results := []core.Lemma{}
	for _, l := range lemmas {
		if l.HasTag(tag) {
			results = append(results, l)
		}
	}
	return results
}

func hasAllTags(l core.Lemma, tags []string) bool {
	for _, tag := range tags {
		if !l.HasTag(tag) {
			return false
		}
	}
	return true
}

func matchText(l core.Lemma, q Query, re *regexp.Regexp) bool {
	text := l.Statement + " " + l.Proof + " " + l.Notes
	if q.Regex {
		if re == nil {
			// Pattern did not compile; the text filter is skipped.
			return true
		}
		return re.MatchString(text)
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(q.Text))
}
