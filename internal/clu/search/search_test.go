package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemmakit/clu/internal/clu/core"
)

func testLemmas() []core.Lemma {
	return []core.Lemma{
		{
			ID:        "L1000",
			Statement: "The sum of two even numbers is even",
			Proof:     "Let a=2m and b=2n. Then a+b=2(m+n).",
			Tags:      []string{"number-theory", "parity"},
			Category:  "algebra",
		},
		{
			ID:        "L1001",
			Statement: "A finite union of countable sets is countable",
			Tags:      []string{"set-theory"},
			Category:  "analysis",
		},
		{
			ID:        "L1002",
			Statement: "Every natural number is even or odd",
			Proof:     "By induction on n.",
			Tags:      []string{"number-theory", "induction"},
			Category:  "algebra",
			Notes:     "Base case n=0.",
		},
	}
}

func ids(lemmas []core.Lemma) []string {
	out := []string{}
	for _, l := range lemmas {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	got := Filter(testLemmas(), Query{})
	assert.Len(t, got, 3)
}

func TestFilterTextIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(testLemmas(), Query{Text: "INDUCTION"})
	assert.Equal(t, []string{"L1002"}, ids(got))
}

func TestFilterTextSearchesProofAndNotes(t *testing.T) {
	byProof := Filter(testLemmas(), Query{Text: "a+b=2(m+n)"})
	assert.Equal(t, []string{"L1000"}, ids(byProof))

	byNotes := Filter(testLemmas(), Query{Text: "base case"})
	assert.Equal(t, []string{"L1002"}, ids(byNotes))
}

func TestFilterTagsAreANDCombined(t *testing.T) {
	got := Filter(testLemmas(), Query{Tags: []string{"number-theory"}})
	assert.Equal(t, []string{"L1000", "L1002"}, ids(got))

	got = Filter(testLemmas(), Query{Tags: []string{"number-theory", "induction"}})
	assert.Equal(t, []string{"L1002"}, ids(got))
}

func TestFilterCategory(t *testing.T) {
	got := Filter(testLemmas(), Query{Category: "analysis"})
	assert.Equal(t, []string{"L1001"}, ids(got))
}

func TestFilterHasProof(t *testing.T) {
	yes, no := true, false

	got := Filter(testLemmas(), Query{HasProof: &yes})
	assert.Equal(t, []string{"L1000", "L1002"}, ids(got))

	got = Filter(testLemmas(), Query{HasProof: &no})
	assert.Equal(t, []string{"L1001"}, ids(got))
}

func TestFilterCombinesPredicates(t *testing.T) {
	yes := true
	got := Filter(testLemmas(), Query{
		Text:     "even",
		Category: "algebra",
		HasProof: &yes,
		Tags:     []string{"parity"},
	})
	assert.Equal(t, []string{"L1000"}, ids(got))
}

func TestFilterRegex(t *testing.T) {
	got := Filter(testLemmas(), Query{Text: `even|odd`, Regex: true})
	assert.Equal(t, []string{"L1000", "L1002"}, ids(got))

	got = Filter(testLemmas(), Query{Text: `^the sum`, Regex: true})
	require.Len(t, got, 1)
	assert.Equal(t, "L1000", got[0].ID)
}

func TestFilterInvalidRegexSkipsTextFilter(t *testing.T) {
	got := Filter(testLemmas(), Query{Text: `[unclosed`, Regex: true, Category: "algebra"})
	assert.Equal(t, []string{"L1000", "L1002"}, ids(got), "bad pattern disables only the text predicate")
}

func TestByTag(t *testing.T) {
	got := ByTag(testLemmas(), "set-theory")
	assert.Equal(t, []string{"L1001"}, ids(got))

	assert.Empty(t, ByTag(testLemmas(), "topology"))
}
