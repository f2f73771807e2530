package main

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lemmakit/clu/internal/clu/config"
	"github.com/lemmakit/clu/pkg/clu"
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

// openUtility opens the store selected by --file (or the config file).
func openUtility() *clu.CLU {
	return clu.Open(dataFile)
}

func fail(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
	os.Exit(1)
}
