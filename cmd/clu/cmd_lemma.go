package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lemmakit/clu/pkg/clu"
)

func runAdd(cmd *cobra.Command, args []string) {
	c := openUtility()
	id := c.Add(args[0], proofFlag, tagsFlag, categoryFlag, notesFlag)
	fmt.Printf("Added %s\n", titleStyle.Render(id))
}

func runShow(cmd *cobra.Command, args []string) {
	c := openUtility()
	content, ok := c.ExportLemma(args[0], showFormat)
	if !ok {
		fail("lemma %s not found", args[0])
	}
	fmt.Print(content)
}

func runUpdate(cmd *cobra.Command, args []string) {
	c := openUtility()

	var patch clu.Patch
	if cmd.Flags().Changed("statement") {
		v, _ := cmd.Flags().GetString("statement")
		patch.Statement = &v
	}
	if cmd.Flags().Changed("proof") {
		v, _ := cmd.Flags().GetString("proof")
		patch.Proof = &v
	}
	if cmd.Flags().Changed("tags") {
		v, _ := cmd.Flags().GetStringSlice("tags")
		patch.Tags = &v
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		patch.Category = &v
	}
	if cmd.Flags().Changed("notes") {
		v, _ := cmd.Flags().GetString("notes")
		patch.Notes = &v
	}

	if !c.Update(args[0], patch) {
		fail("lemma %s not found", args[0])
	}
	fmt.Printf("Updated %s\n", titleStyle.Render(args[0]))
}

func runDelete(cmd *cobra.Command, args []string) {
	c := openUtility()
	if !c.Delete(args[0]) {
		fail("lemma %s not found", args[0])
	}
	fmt.Printf("Deleted %s\n", args[0])
}

func runList(cmd *cobra.Command, args []string) {
	c := openUtility()
	all := c.ListAll()
	if len(all) == 0 {
		fmt.Println(dimStyle.Render("No lemmas recorded"))
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Printf("%s: %s\n", labelStyle.Render(id), all[id])
	}
}
