package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lemmakit/clu/pkg/clu"
)

func runStats(cmd *cobra.Command, args []string) {
	printStats(openUtility())
}

func printStats(c *clu.CLU) {
	stats := c.Stats()

	fmt.Println(titleStyle.Render("=== CLU Statistics ==="))
	fmt.Printf("Total Lemmas: %d\n", stats.Total)
	fmt.Printf("With Proof: %d\n", stats.WithProof)
	fmt.Printf("Without Proof: %d\n", stats.WithoutProof)
	fmt.Printf("With Dependencies: %d\n", stats.WithDependencies)

	fmt.Printf("\n%s\n", labelStyle.Render("Categories:"))
	printCounts(stats.Categories)

	fmt.Printf("\n%s\n", labelStyle.Render("Tags:"))
	printCounts(stats.Tags)
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %d\n", k, counts[k])
	}
}
