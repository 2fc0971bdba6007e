package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/getlawrence/insert-filename/internal/filecomment"
	"github.com/getlawrence/insert-filename/internal/grammar"
	"github.com/getlawrence/insert-filename/internal/languages"
	"github.com/getlawrence/insert-filename/internal/workspace"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderReport formats the result of apply or check. Unchanged and skipped
// files are only listed when detailed is set.
func RenderReport(r *workspace.Report, detailed bool) string {
	if r == nil {
		return ""
	}
	var b strings.Builder

	title := "📝 Filename headers"
	if r.DryRun {
		title += " (dry run)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 24))
	b.WriteString("\n\n")

	summary := []string{
		fmt.Sprintf("📂 Workspace: %s", r.Root),
		fmt.Sprintf("📄 Files scanned: %d", len(r.Files)),
		fmt.Sprintf("➕ Inserted: %d", r.Count(filecomment.ActionInserted)),
		fmt.Sprintf("✏️  Replaced: %d", r.Count(filecomment.ActionReplaced)),
		fmt.Sprintf("✅ Unchanged: %d", r.Count(filecomment.ActionUnchanged)),
		fmt.Sprintf("⏭️  Skipped: %d", r.Count(filecomment.ActionSkipped)),
	}
	b.WriteString(strings.Join(summary, "\n"))
	b.WriteString("\n")

	if changed := r.Changed(); len(changed) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Changes:"))
		b.WriteString("\n")
		for _, f := range changed {
			style := addedStyle
			if f.Action == filecomment.ActionReplaced {
				style = changedStyle
			}
			fmt.Fprintf(&b, "  %s %s  %s\n", style.Render(fmt.Sprintf("%-8s", f.Action)), f.Path, mutedStyle.Render(f.Comment))
		}
		for _, f := range changed {
			if f.Diff != "" {
				b.WriteString("\n")
				b.WriteString(f.Diff)
			}
		}
	}

	if failed := r.Failed(); len(failed) > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Errors:"))
		b.WriteString("\n")
		for _, f := range failed {
			fmt.Fprintf(&b, "  %s: %s\n", f.Path, f.Error)
		}
	}

	if detailed {
		var rest []string
		for _, f := range r.Files {
			if f.Changed() || f.Error != "" {
				continue
			}
			line := fmt.Sprintf("  %-9s %s", f.Action, f.Path)
			if f.Reason != "" {
				line += "  " + mutedStyle.Render("("+f.Reason+")")
			}
			rest = append(rest, line)
		}
		if len(rest) > 0 {
			b.WriteString("\n")
			b.WriteString(titleStyle.Render("Other files:"))
			b.WriteString("\n")
			b.WriteString(strings.Join(rest, "\n"))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderValidation formats grammar check results.
func RenderValidation(results []grammar.Result) string {
	if len(results) == 0 {
		return "No file extensions configured.\n"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("🔎 Comment style validation"))
	b.WriteString("\n\n")
	for _, r := range results {
		var mark string
		switch r.Verdict {
		case grammar.VerdictOK:
			mark = addedStyle.Render("✓")
		case grammar.VerdictInvalid:
			mark = errorStyle.Render("✗")
		default:
			mark = mutedStyle.Render("?")
		}
		fmt.Fprintf(&b, "  %s %-6s %s", mark, r.Extension, r.Sample)
		if r.Detail != "" {
			b.WriteString("  " + mutedStyle.Render("("+r.Detail+")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSuggestions formats the styles proposed by init.
func RenderSuggestions(suggestions []languages.Suggestion) string {
	if len(suggestions) == 0 {
		return "No known source languages found.\n"
	}
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{s.Extension, s.Language, s.Style, fmt.Sprint(s.Files)})
	}
	return renderTable([]string{"EXTENSION", "LANGUAGE", "STYLE", "FILES"}, rows)
}

// RenderStyles formats the preset table for `list styles`.
func RenderStyles(langs []languages.Language) string {
	rows := make([][]string, 0, len(langs))
	for _, l := range langs {
		rows = append(rows, []string{l.Name, l.Style, strings.Join(l.Extensions, " ")})
	}
	return renderTable([]string{"LANGUAGE", "STYLE", "EXTENSIONS"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render() + "\n"
}
