package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runExport(cmd *cobra.Command, args []string) {
	c := openUtility()
	content, err := c.ExportAll(exportFormat, exportOutput)
	if err != nil {
		fail("export failed: %v", err)
	}
	if exportOutput == "" {
		fmt.Print(content)
	} else {
		fmt.Printf("Exported to %s\n", exportOutput)
	}
}

func runImport(cmd *cobra.Command, args []string) {
	c := openUtility()
	before := c.Len()
	if err := c.ImportFile(args[0]); err != nil {
		fail("import failed: %v", err)
	}
	fmt.Printf("Imported %d lemmas from %s\n", c.Len()-before, args[0])
}

func runArchiveCreate(cmd *cobra.Command, args []string) {
	c := openUtility()
	if err := c.ExportArchive(args[0]); err != nil {
		fail("archive failed: %v", err)
	}
	fmt.Printf("Archived %d lemmas to %s\n", c.Len(), args[0])
}

func runArchiveRestore(cmd *cobra.Command, args []string) {
	c := openUtility()
	before := c.Len()
	if err := c.ImportArchive(args[0]); err != nil {
		fail("restore failed: %v", err)
	}
	fmt.Printf("Restored %d lemmas from %s\n", c.Len()-before, args[0])
}
