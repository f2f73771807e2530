package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/lemmakit/clu/internal/clu/config"
)

var (
	dataFile string

	// add/update flags
	proofFlag    string
	tagsFlag     []string
	categoryFlag string
	notesFlag    string

	// search flags
	searchText     string
	searchTags     []string
	searchCategory string
	searchHasProof string
	searchRegex    bool

	// export flags (also on the root command, which mirrors the
	// original surface: clu --export markdown --output file)
	exportFormat string
	exportOutput string
	rootExport   string
	rootOutput   string
	rootStats    bool

	showFormat string

	rootCmd = &cobra.Command{
		Use:   "clu",
		Short: "Codified Lemma Utility: record lemmas, proofs, and the dependencies between them",
		Long: `clu manages a personal collection of mathematical lemmas and
theorems: statements, proofs, tags, and directed depends-on edges,
persisted as a single JSON document.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loaded, err := config.Load()
			if err != nil {
				log.Printf("loading config: %v, using defaults", err)
				loaded = config.Default()
			}
			cfg = loaded
			if dataFile == "" {
				dataFile = cfg.DataFile
			}
		},
		Run: runRoot,
	}

	addCmd = &cobra.Command{
		Use:   "add <statement>",
		Short: "Record a new lemma",
		Args:  cobra.ExactArgs(1),
		Run:   runAdd,
	}
	showCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Print one lemma",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}
	updateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing lemma",
		Args:  cobra.ExactArgs(1),
		Run:   runUpdate,
	}
	deleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lemma and retract it from all dependency lists",
		Args:  cobra.ExactArgs(1),
		Run:   runDelete,
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all lemma ids and statements",
		Args:  cobra.NoArgs,
		Run:   runList,
	}

	depCmd = &cobra.Command{
		Use:   "dep",
		Short: "Manage dependency edges",
	}
	depAddCmd = &cobra.Command{
		Use:   "add <id> <depends-on>",
		Short: "Record that one lemma depends on another",
		Args:  cobra.ExactArgs(2),
		Run:   runDepAdd,
	}
	depRemoveCmd = &cobra.Command{
		Use:   "remove <id> <depends-on>",
		Short: "Remove a dependency edge",
		Args:  cobra.ExactArgs(2),
		Run:   runDepRemove,
	}
	chainCmd = &cobra.Command{
		Use:   "chain <id>",
		Short: "Show everything a lemma depends on, directly or indirectly",
		Args:  cobra.ExactArgs(1),
		Run:   runChain,
	}
	dependentsCmd = &cobra.Command{
		Use:   "dependents <id>",
		Short: "Show the lemmas that directly depend on one",
		Args:  cobra.ExactArgs(1),
		Run:   runDependents,
	}

	searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Filter lemmas by text, tags, category, or proof presence",
		Args:  cobra.NoArgs,
		Run:   runSearch,
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the whole collection in text, markdown, latex, or json",
		Args:  cobra.NoArgs,
		Run:   runExport,
	}
	importCmd = &cobra.Command{
		Use:   "import <path>",
		Short: "Merge lemmas from another store document",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	archiveCmd = &cobra.Command{
		Use:   "archive",
		Short: "Move collections between stores as tar archives",
	}
	archiveCreateCmd = &cobra.Command{
		Use:   "create <path>",
		Short: "Write the collection as a tar archive",
		Args:  cobra.ExactArgs(1),
		Run:   runArchiveCreate,
	}
	archiveRestoreCmd = &cobra.Command{
		Use:   "restore <path>",
		Short: "Merge a tar archive into the collection",
		Args:  cobra.ExactArgs(1),
		Run:   runArchiveRestore,
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print collection statistics",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	syncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Rebuild the configured graph mirror from the store",
		Args:  cobra.NoArgs,
		Run:   runSync,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Data file path (default from config, falls back to lemmas.json)")
	rootCmd.Flags().StringVar(&rootExport, "export", "", "Export all lemmas in the given format (text, markdown, latex, json)")
	rootCmd.Flags().StringVar(&rootOutput, "output", "", "Output filename for --export")
	rootCmd.Flags().BoolVar(&rootStats, "stats", false, "Show statistics")

	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&proofFlag, "proof", "", "Proof or justification")
	addCmd.Flags().StringSliceVar(&tagsFlag, "tags", nil, "Tags for categorization")
	addCmd.Flags().StringVar(&categoryFlag, "category", "", "Primary category (defaults to general)")
	addCmd.Flags().StringVar(&notesFlag, "notes", "", "Additional notes")

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showFormat, "format", "text", "Render format (text, markdown, latex, json)")

	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().String("statement", "", "New statement")
	updateCmd.Flags().String("proof", "", "New proof")
	updateCmd.Flags().StringSlice("tags", nil, "Replacement tag list")
	updateCmd.Flags().String("category", "", "New category")
	updateCmd.Flags().String("notes", "", "New notes")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)

	rootCmd.AddCommand(depCmd)
	depCmd.AddCommand(depAddCmd)
	depCmd.AddCommand(depRemoveCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(dependentsCmd)

	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchText, "query", "", "Text to search in statement, proof, and notes")
	searchCmd.Flags().StringSliceVar(&searchTags, "tags", nil, "Tags the lemma must all carry")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Category to filter by")
	searchCmd.Flags().StringVar(&searchHasProof, "has-proof", "", "Filter by proof presence (true or false)")
	searchCmd.Flags().BoolVar(&searchRegex, "regex", false, "Treat --query as a regular expression")

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "markdown", "Export format (text, markdown, latex, json)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output filename (prints to stdout when empty)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveCreateCmd)
	archiveCmd.AddCommand(archiveRestoreCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
}
