// Package export renders lemmas into the supported textual formats. It
// is pure templating over record content; rendering the collection
// orders records lexicographically by id so output is reproducible.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lemmakit/clu/internal/clu/core"
)

// Format selects an output rendering.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	LaTeX    Format = "latex"
	JSON     Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Text, Markdown, LaTeX, JSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want text, markdown, latex or json)", s)
}

// Render returns one lemma in the given format. Empty proof, tags, notes
// and dependencies are omitted. Unknown formats fall back to text.
func Render(l core.Lemma, f Format) string {
	switch f {
	case Markdown:
		return renderMarkdown(l)
	case LaTeX:
		return renderLaTeX(l)
	case JSON:
		data, err := json.MarshalIndent(map[string]core.Lemma{l.ID: l}, "", "  ")
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return renderText(l)
	}
}

// RenderAll returns the whole collection in the given format. Markdown
// gets a collection header, LaTeX a document preamble and closing; JSON
// emits a {metadata, lemmas} document.
func RenderAll(lemmas []core.Lemma, meta core.Metadata, f Format) (string, error) {
	sort.Slice(lemmas, func(i, j int) bool { return lemmas[i].ID < lemmas[j].ID })

	if f == JSON {
		byID := make(map[string]core.Lemma, len(lemmas))
		for _, l := range lemmas {
			byID[l.ID] = l
		}
		data, err := json.MarshalIndent(struct {
			Metadata core.Metadata         `json:"metadata"`
			Lemmas   map[string]core.Lemma `json:"lemmas"`
		}{meta, byID}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding collection: %w", err)
		}
		return string(data), nil
	}

	var b strings.Builder
	switch f {
	case Markdown:
		b.WriteString("# Codified Lemma Collection\n\n")
		fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
		fmt.Fprintf(&b, "Total Lemmas: %d\n\n", len(lemmas))
		b.WriteString("---\n\n")
	case LaTeX:
		b.WriteString("\\documentclass{article}\n")
		b.WriteString("\\usepackage{amsthm}\n")
		b.WriteString("\\newtheorem{lemma}{Lemma}\n")
		b.WriteString("\\begin{document}\n\n")
	}

	for _, l := range lemmas {
		b.WriteString(Render(l, f))
		b.WriteString("\n")
	}

	if f == LaTeX {
		b.WriteString("\\end{document}\n")
	}
	return b.String(), nil
}

func renderText(l core.Lemma) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Code: %s\n", l.ID)
	fmt.Fprintf(&b, "Category: %s\n", l.Category)
	fmt.Fprintf(&b, "Statement: %s\n", l.Statement)
	if l.Proof != "" {
		fmt.Fprintf(&b, "Proof: %s\n", l.Proof)
	}
	if len(l.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(l.Tags, ", "))
	}
	if l.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", l.Notes)
	}
	if len(l.Dependencies) > 0 {
		fmt.Fprintf(&b, "Depends on: %s\n", strings.Join(l.Dependencies, ", "))
	}
	fmt.Fprintf(&b, "Created: %s\n", l.Created.Format(time.RFC3339))
	fmt.Fprintf(&b, "Modified: %s\n", l.Modified.Format(time.RFC3339))
	return b.String()
}

func renderMarkdown(l core.Lemma) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", l.ID)
	fmt.Fprintf(&b, "**Category:** %s\n\n", l.Category)
	fmt.Fprintf(&b, "**Statement:** %s\n\n", l.Statement)
	if l.Proof != "" {
		fmt.Fprintf(&b, "**Proof:**\n\n%s\n\n", l.Proof)
	}
	if len(l.Tags) > 0 {
		quoted := make([]string, len(l.Tags))
		for i, tag := range l.Tags {
			quoted[i] = "`" + tag + "`"
		}
		fmt.Fprintf(&b, "**Tags:** %s\n\n", strings.Join(quoted, ", "))
	}
	if l.Notes != "" {
		fmt.Fprintf(&b, "**Notes:** %s\n\n", l.Notes)
	}
	if len(l.Dependencies) > 0 {
		linked := make([]string, len(l.Dependencies))
		for i, dep := range l.Dependencies {
			linked[i] = fmt.Sprintf("[%s](#%s)", dep, dep)
		}
		fmt.Fprintf(&b, "**Dependencies:** %s\n\n", strings.Join(linked, ", "))
	}
	fmt.Fprintf(&b, "*Created: %s*\n\n", l.Created.Format(time.RFC3339))
	fmt.Fprintf(&b, "*Modified: %s*\n\n", l.Modified.Format(time.RFC3339))
	return b.String()
}

func renderLaTeX(l core.Lemma) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{lemma}[%s]\n", l.ID)
	fmt.Fprintf(&b, "\\label{lemma:%s}\n", l.ID)
	fmt.Fprintf(&b, "%s\n", l.Statement)
	b.WriteString("\\end{lemma}\n\n")
	if l.Proof != "" {
		b.WriteString("\\begin{proof}\n")
		fmt.Fprintf(&b, "%s\n", l.Proof)
		b.WriteString("\\end{proof}\n\n")
	}
	if len(l.Tags) > 0 {
		fmt.Fprintf(&b, "%% Tags: %s\n", strings.Join(l.Tags, ", "))
	}
	if l.Notes != "" {
		fmt.Fprintf(&b, "%% Notes: %s\n", l.Notes)
	}
	return b.String()
}
