package outwriter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/prdash/internal/contract"
	"github.com/huangsam/prdash/schema"
)

// Glyphs used by the progress bars.
const (
	emptyEmoji = "⬜"
	chartFull  = "█"
	chartEmpty = "░"
)

// tierEmoji maps a tier to the filled-cell marker of the emoji bars.
var tierEmoji = map[schema.Tier]string{
	schema.FullTier:   "🟩",
	schema.HighTier:   "🟨",
	schema.MediumTier: "🟧",
	schema.LowTier:    "🟥",
}

// chartLineReplacer flattens titles so each chart entry stays on one line.
var chartLineReplacer = strings.NewReplacer("\r", "", "\n", " ", "\t", " ")

// RenderDashboard produces the complete Markdown dashboard.
// The output only depends on its input, so identical inputs give identical bytes.
func RenderDashboard(d schema.Dashboard) string {
	var sb strings.Builder

	writeHeader(&sb, d)
	writeQuickStats(&sb, d.Stats)

	if len(d.Records) == 0 {
		writeGettingStarted(&sb)
	} else {
		writeRecentTable(&sb, d.Records)
	}
	writeDetails(&sb, d)

	writeFooter(&sb)
	return sb.String()
}

func writeHeader(sb *strings.Builder, d schema.Dashboard) {
	sb.WriteString("# 🤖 AI Code Generation Dashboard\n\n")
	fmt.Fprintf(sb, "**Repository:** `%s`\n\n", d.Repo)
	fmt.Fprintf(sb, "**Last updated:** %s\n\n", d.GeneratedAt.UTC().Format(contract.DateFormat))
}

// writeQuickStats renders the six aggregate metrics.
func writeQuickStats(sb *strings.Builder, s schema.StatsSummary) {
	overall := s.OverallAIPercentage()

	sb.WriteString("## 📊 Quick Stats\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(sb, "| Total Merged PRs | %s |\n", formatCount(s.TotalMergedPRs))
	fmt.Fprintf(sb, "| Analyzed PRs | %s |\n", formatCount(s.TotalAnalyzedPRs))
	fmt.Fprintf(sb, "| Files Analyzed | %s |\n", formatCount(s.TotalFiles))
	fmt.Fprintf(sb, "| Total Characters | %s |\n", formatCount(s.TotalCharacters))
	fmt.Fprintf(sb, "| AI-Generated Characters | %s %s (%d%%) |\n",
		EmojiBar(overall, schema.CompactBarWidth), formatCount(s.TotalAICharacters), overall)
	fmt.Fprintf(sb, "| Average AI Percentage | %s %d%% |\n",
		EmojiBar(s.AverageAIPercentage, schema.CompactBarWidth), s.AverageAIPercentage)
	sb.WriteString("\n")
}

func writeGettingStarted(sb *strings.Builder) {
	sb.WriteString("## 🚀 Getting Started\n\n")
	sb.WriteString("No pull requests have been analyzed yet.\n\n")
	sb.WriteString("Once a pull request is merged and analyzed, its AI generation stats will show up here ")
	sb.WriteString("with a breakdown per pull request.\n\n")
}

// writeRecentTable renders at most RecentLimit records in input order.
func writeRecentTable(sb *strings.Builder, records []schema.AnalysisRecord) {
	shown := min(len(records), schema.RecentLimit)

	sb.WriteString("## 📝 Recent Pull Requests\n\n")
	fmt.Fprintf(sb, "_Showing the latest %d of %d merged pull requests._\n\n", shown, len(records))
	sb.WriteString("| Pull Request | Author | Merged | Files | AI / Total | AI Share |\n")
	sb.WriteString("|--------------|--------|--------|-------|------------|----------|\n")

	for _, r := range records[:shown] {
		files := "N/A"
		chars := "Not analyzed"
		if r.Analyzed() {
			files = formatCount(r.FileCount())
			chars = fmt.Sprintf("%s / %s chars", formatCount(r.AICharacters()), formatCount(r.TotalCharacters()))
		}
		pct := r.Percentage()
		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s | %s %3d%% |\n",
			formatPullRequestCell(r),
			formatAuthorCell(r.Author),
			formatDateCell(r),
			files,
			chars,
			EmojiBar(pct, schema.RowBarWidth),
			pct,
		)
	}
	sb.WriteString("\n")
}

// writeDetails renders the collapsible chart and character breakdown.
// Without records the chart is replaced by a placeholder line.
func writeDetails(sb *strings.Builder, d schema.Dashboard) {
	sb.WriteString("<details>\n")
	sb.WriteString("<summary>📈 Detailed Breakdown</summary>\n\n")

	sb.WriteString("### AI Share by Pull Request\n\n")
	sb.WriteString("```text\n")
	if len(d.Records) == 0 {
		sb.WriteString("No data available yet\n")
	}
	for _, r := range d.Records[:min(len(d.Records), schema.ChartLimit)] {
		pct := r.Percentage()
		fmt.Fprintf(sb, "%-8s %s │%s│ %3d%%\n",
			fmt.Sprintf("PR #%d", r.PullRequest),
			schema.TruncateTitle(chartLineReplacer.Replace(r.Title)),
			ChartBar(pct, schema.ChartBarWidth),
			pct,
		)
	}
	sb.WriteString("```\n\n")

	ai, human := d.Stats.CharacterRatio()
	sb.WriteString("### Character Breakdown\n\n")
	sb.WriteString("```text\n")
	fmt.Fprintf(sb, "Total characters:  %s\n", formatCount(d.Stats.TotalCharacters))
	fmt.Fprintf(sb, "AI characters:     %s\n", formatCount(d.Stats.TotalAICharacters))
	fmt.Fprintf(sb, "Human characters:  %s\n", formatCount(d.Stats.HumanCharacters()))
	fmt.Fprintf(sb, "AI : Human ratio:  %d : %d\n", ai, human)
	sb.WriteString("```\n\n")

	sb.WriteString("</details>\n\n")
}

func writeFooter(sb *strings.Builder) {
	sb.WriteString("---\n\n")
	sb.WriteString("_🤖 This dashboard is generated automatically from the AI analysis history of merged pull requests._\n")
}

// EmojiBar renders a width-cell bar whose filled cells all share the tier color of percentage.
func EmojiBar(percentage, width int) string {
	filled := schema.FilledCells(percentage, width)
	return strings.Repeat(tierEmoji[schema.GetTier(percentage)], filled) +
		strings.Repeat(emptyEmoji, width-filled)
}

// ChartBar renders a width-cell bar with plain filled and empty glyphs.
func ChartBar(percentage, width int) string {
	filled := schema.FilledCells(percentage, width)
	return strings.Repeat(chartFull, filled) + strings.Repeat(chartEmpty, width-filled)
}

// formatCount adds thousands separators.
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func formatPullRequestCell(r schema.AnalysisRecord) string {
	label := fmt.Sprintf("#%d", r.PullRequest)
	if r.URL != "" {
		label = fmt.Sprintf("[%s](%s)", label, r.URL)
	}
	if r.Title == "" {
		return label
	}
	return label + " " + schema.EscapeCell(r.Title)
}

func formatAuthorCell(author string) string {
	if author == "" {
		return "-"
	}
	return fmt.Sprintf("[@%s](https://github.com/%s)", schema.EscapeCell(author), schema.EscapeCell(author))
}

// formatDateCell shows the short date, the raw value when it cannot be parsed, or a dash.
func formatDateCell(r schema.AnalysisRecord) string {
	if t, ok := r.DisplayTime(); ok {
		return t.UTC().Format(contract.ShortDateFormat)
	}
	if raw := r.RawTime(); raw != "" {
		return schema.EscapeCell(raw)
	}
	return "-"
}
