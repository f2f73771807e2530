package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lemmakit/clu/pkg/clu"
)

// runRoot handles the bare invocation: --stats and --export mirror the
// original flag surface, and with no flags at all a demonstration
// scenario runs against the selected data file.
func runRoot(cmd *cobra.Command, args []string) {
	c := openUtility()

	if rootStats {
		printStats(c)
		return
	}

	if rootExport != "" {
		content, err := c.ExportAll(rootExport, rootOutput)
		if err != nil {
			fail("export failed: %v", err)
		}
		if rootOutput == "" {
			fmt.Print(content)
		} else {
			fmt.Printf("Exported to %s\n", rootOutput)
		}
		return
	}

	runDemo(c)
}

func runDemo(c *clu.CLU) {
	fmt.Println(titleStyle.Render("=== Codified Lemma Utility Demo ==="))
	fmt.Println()

	l1 := c.Add(
		"For all integers n, n + 0 = n",
		"By the identity property of addition",
		[]string{"arithmetic", "basic", "identity"},
		"algebra",
		"",
	)

	l2 := c.Add(
		"For all integers a, b: a + b = b + a",
		"By the commutative property of addition",
		[]string{"arithmetic", "commutative"},
		"algebra",
		"",
	)

	l3 := c.Add(
		"Sum of first n natural numbers = n(n+1)/2",
		"By mathematical induction using base case n=1 and inductive step",
		[]string{"series", "induction"},
		"number_theory",
		"Classic result used in many complexity analyses",
	)

	c.AddDependency(l3, l1)
	c.AddDependency(l3, l2)

	fmt.Println("Added 3 sample lemmas")
	fmt.Println("\nAll lemmas:")
	for _, l := range c.All() {
		fmt.Printf("  %s: %s\n", labelStyle.Render(l.ID), l.Statement)
	}

	if content, ok := c.ExportLemma(l3, "markdown"); ok {
		fmt.Printf("\n\n%s\n", content)
	}

	fmt.Println("Search for 'induction':")
	for _, l := range c.Search(clu.Query{Text: "induction"}) {
		fmt.Printf("  %s: %s\n", labelStyle.Render(l.ID), l.Statement)
	}
}
