package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lemmakit/clu/pkg/clu"
)

func runSearch(cmd *cobra.Command, args []string) {
	c := openUtility()

	q := clu.Query{
		Text:     searchText,
		Tags:     searchTags,
		Category: searchCategory,
		Regex:    searchRegex,
	}
	if searchHasProof != "" {
		hasProof, err := strconv.ParseBool(searchHasProof)
		if err != nil {
			fail("--has-proof must be true or false")
		}
		q.HasProof = &hasProof
	}

	results := c.Search(q)
	if len(results) == 0 {
		fmt.Println(dimStyle.Render("No results found"))
		return
	}

	fmt.Printf("Found %d results:\n\n", len(results))
	for _, l := range results {
		fmt.Printf("%s: %s\n", labelStyle.Render(l.ID), l.Statement)
	}
}
