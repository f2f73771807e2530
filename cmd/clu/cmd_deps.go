package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func runDepAdd(cmd *cobra.Command, args []string) {
	c := openUtility()
	if !c.AddDependency(args[0], args[1]) {
		fail("both %s and %s must exist", args[0], args[1])
	}
	fmt.Printf("%s now depends on %s\n", args[0], args[1])
}

func runDepRemove(cmd *cobra.Command, args []string) {
	c := openUtility()
	if !c.RemoveDependency(args[0], args[1]) {
		fail("no dependency from %s on %s", args[0], args[1])
	}
	fmt.Printf("%s no longer depends on %s\n", args[0], args[1])
}

func runChain(cmd *cobra.Command, args []string) {
	c := openUtility()
	chain := c.DependencyChain(args[0])
	if len(chain) == 0 {
		fmt.Println(dimStyle.Render("No dependencies"))
		return
	}
	fmt.Printf("%s depends on: %s\n", args[0], strings.Join(chain, ", "))
}

func runDependents(cmd *cobra.Command, args []string) {
	c := openUtility()
	dependents := c.Dependents(args[0])
	if len(dependents) == 0 {
		fmt.Println(dimStyle.Render("No dependents"))
		return
	}
	fmt.Printf("Depended on by: %s\n", strings.Join(dependents, ", "))
}
