package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"levantamiento_service/internal/domain/budget"
	"levantamiento_service/internal/domain/entities"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleApproved = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	stylePending  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	styleRejected = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
)

func statusLabel(s entities.BlockStatus) string {
	switch s {
	case entities.BlockStatusApproved:
		return styleApproved.Render("● " + string(s))
	case entities.BlockStatusRejected:
		return styleRejected.Render("● " + string(s))
	default:
		return stylePending.Render("● " + string(s))
	}
}

// renderTable pads columns by visible width so styled cells stay aligned.
func renderTable(headers []string, rows [][]string) string {
	const gap = 2
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if style != nil {
				cell = style.Render(cell)
			}
			b.WriteString(cell)
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", pad+gap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, &styleHeader)
	for i, w := range widths {
		b.WriteString(styleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", gap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}

func printSurvey(out io.Writer, s entities.Survey, adj budget.Adjustment) {
	title := s.Number
	if title == "" {
		title = s.ID
	}
	fmt.Fprintf(out, "Levantamiento %s (obra %s)\n\n", title, s.WorkID)

	rows := make([][]string, 0, len(entities.AllBlocks))
	for _, b := range entities.AllBlocks {
		rev := s.Reviews.Get(b)
		rows = append(rows, []string{b.Title(), statusLabel(rev.Status), deref(rev.Comments)})
	}
	fmt.Fprint(out, renderTable([]string{"BLOCK", "STATUS", "COMMENTS"}, rows))

	fmt.Fprintf(out, "\nall approved: %t  pending: %t\n", s.AllBlocksApproved(), s.AnyBlockPending())
	if rejected := s.RejectedBlocks(); len(rejected) > 0 {
		fmt.Fprintln(out, "rejected:")
		for _, r := range rejected {
			fmt.Fprintf(out, "  - %s: %s\n", r.Title, deref(r.Comments))
		}
	}
	fmt.Fprintf(out, "budget subtotal: %s  factor: %s  adjusted: %s\n",
		adj.Subtotal.StringFixed(2), adj.Factor.String(), adj.AdjustedTotal.StringFixed(2))
}

func printHistory(out io.Writer, events []entities.ReviewEvent) {
	if len(events) == 0 {
		fmt.Fprintln(out, styleDim.Render("no review events"))
		return
	}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.Date.Format(time.RFC3339), string(e.Action), string(e.Block), e.ActorID, deref(e.Comments),
		})
	}
	fmt.Fprint(out, renderTable([]string{"DATE", "ACTION", "BLOCK", "ACTOR", "COMMENTS"}, rows))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
