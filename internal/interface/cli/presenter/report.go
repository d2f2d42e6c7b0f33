// Package presenter formats calculation results for terminal and JSON output.
// Presenters handle the conversion from query results to user-facing text;
// they never compute averages themselves.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/cgpa-hub/cgpa-calculator/config"
	"github.com/cgpa-hub/cgpa-calculator/internal/application/query"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/transcript"
)

// NoDataMessage is shown instead of the breakdown when nothing was included.
const NoDataMessage = "Please enter marks and credits for at least one subject to see detailed results."

// barWidth is the width of the longest bar in text charts.
const barWidth = 30

// ══════════════════════════════════════════════════════════════════════════════
// REPORT PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

// Options controls rendering.
type Options struct {
	// Precision is the number of decimal places shown for averages.
	Precision int

	// Features toggles optional report sections. Nil uses the defaults.
	Features *config.FeatureFlags
}

// DefaultOptions returns two-decimal output with default sections.
func DefaultOptions() Options {
	return Options{
		Precision: 2,
		Features:  config.DefaultFeatureFlags(),
	}
}

func (o Options) enabled(feature string) bool {
	if o.Features == nil {
		return config.DefaultFeatureFlags().IsEnabled(feature)
	}
	return o.Features.IsEnabled(feature)
}

func (o Options) format(v float64) string {
	p := o.Precision
	if p < 0 {
		p = 0
	}
	return fmt.Sprintf("%.*f", p, transcript.Round(v, p))
}

// RenderTable writes a human-readable report.
func RenderTable(w io.Writer, r *query.CalculateGPAResult, opts Options) error {
	var sb strings.Builder

	writeHeadline(&sb, r, opts)

	if !r.HasData() {
		sb.WriteString("\n")
		sb.WriteString(NoDataMessage)
		sb.WriteString("\n")
		writeWarnings(&sb, r)
		_, err := io.WriteString(w, sb.String())
		return err
	}

	writeBreakdown(&sb, r, opts)

	if opts.enabled(config.FeatureReportSubjects) {
		writeSubjects(&sb, r, opts)
	}
	if opts.enabled(config.FeatureReportSummary) {
		writeSummary(&sb, r, opts)
	}
	if opts.enabled(config.FeatureReportTGPAChart) {
		writeChart(&sb, "TGPA by semester", TGPASeries(r), opts)
	}
	if opts.enabled(config.FeatureReportDistribution) {
		writeChart(&sb, "Grade distribution", DistributionSeries(r), Options{Precision: 0})
	}
	if opts.enabled(config.FeatureReportFingerprint) {
		fmt.Fprintf(&sb, "\nScale %s (%s)\n", r.Scale.Name, r.ScaleFingerprint)
	}

	writeWarnings(&sb, r)

	_, err := io.WriteString(w, sb.String())
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// SECTIONS
// ─────────────────────────────────────────────────────────────────────────────

func writeHeadline(sb *strings.Builder, r *query.CalculateGPAResult, opts Options) {
	cgpa := "-"
	if r.Overall.CGPA.Valid {
		cgpa = opts.format(r.Overall.CGPA.Value)
	}

	fmt.Fprintf(sb, "CGPA: %s / %s\n", cgpa, opts.format(r.Scale.MaxPoint))
	fmt.Fprintf(sb, "Total credits: %s across %d %s\n",
		trimNumber(r.Overall.TotalCredits), len(r.Semesters),
		plural(len(r.Semesters), "semester", "semesters"))
	fmt.Fprintf(sb, "Total subjects: %d\n", r.Overall.TotalSubjects)
}

func writeBreakdown(sb *strings.Builder, r *query.CalculateGPAResult, opts Options) {
	showPerformance := opts.enabled(config.FeatureReportPerformance)

	headers := []string{"Semester", "TGPA", "Credits", "Subjects"}
	if showPerformance {
		headers = append(headers, "Performance")
	}

	rows := make([][]string, 0, len(r.Semesters))
	for _, sem := range r.Semesters {
		if !sem.HasData() {
			continue
		}
		row := []string{
			fmt.Sprintf("Semester %d", sem.Index),
			opts.format(sem.TGPA.Value),
			trimNumber(sem.Credits),
			fmt.Sprintf("%d", sem.SubjectCount),
		}
		if showPerformance {
			row = append(row, r.Scale.Performance(sem.TGPA.Rounded(opts.Precision)))
		}
		rows = append(rows, row)
	}

	sb.WriteString("\nSemester-wise breakdown\n")
	writeTable(sb, headers, rows)
}

func writeSubjects(sb *strings.Builder, r *query.CalculateGPAResult, opts Options) {
	for _, sem := range r.Semesters {
		if !sem.HasData() {
			continue
		}
		fmt.Fprintf(sb, "\nSemester %d subjects\n", sem.Index)

		rows := make([][]string, 0, len(sem.Subjects))
		for _, s := range sem.Subjects {
			rows = append(rows, []string{
				s.Name,
				trimNumber(s.Credit),
				s.Grade.Letter.String(),
				trimNumber(s.Grade.Point),
				opts.format(s.WeightedPoints),
			})
		}
		writeTable(sb, []string{"Subject", "Credit", "Grade", "Point", "Weighted"}, rows)
	}
}

func writeSummary(sb *strings.Builder, r *query.CalculateGPAResult, opts Options) {
	s := r.Summary
	sb.WriteString("\nSummary\n")
	fmt.Fprintf(sb, "  Highest TGPA: %s (Semester %d)\n", opts.format(s.Highest.Value), s.HighestIndex)
	fmt.Fprintf(sb, "  Lowest TGPA:  %s (Semester %d)\n", opts.format(s.Lowest.Value), s.LowestIndex)
}

func writeChart(sb *strings.Builder, title string, series Series, opts Options) {
	if len(series.Labels) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n%s\n", title)

	maxValue, labelWidth := 0.0, 0
	for i, v := range series.Values {
		if v > maxValue {
			maxValue = v
		}
		if n := len([]rune(series.Labels[i])); n > labelWidth {
			labelWidth = n
		}
	}

	for i, label := range series.Labels {
		v := series.Values[i]
		n := 0
		if maxValue > 0 {
			n = int(v / maxValue * barWidth)
		}
		fmt.Fprintf(sb, "  %s  %s %s\n", padRight(label, labelWidth), strings.Repeat("#", n), opts.format(v))
	}
}

func writeWarnings(sb *strings.Builder, r *query.CalculateGPAResult) {
	if len(r.Warnings) == 0 {
		return
	}
	sb.WriteString("\nNotes\n")
	for _, w := range r.Warnings {
		fmt.Fprintf(sb, "  - %s\n", w)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// HELPERS
// ─────────────────────────────────────────────────────────────────────────────

func writeTable(sb *strings.Builder, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, widths[i])
		}
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}

	line(headers)
	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	line(sep)
	for _, row := range rows {
		line(row)
	}
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// trimNumber prints credits and points without trailing zeros.
func trimNumber(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
