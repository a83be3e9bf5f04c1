package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))

	ratingStyles = map[model.Rating]lipgloss.Style{
		model.RatingWeak:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		model.RatingFair:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		model.RatingGood:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		model.RatingStrong: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
)

func (a *App) renderBanner() {
	fmt.Fprintln(a.out, bannerStyle.Render("passforge — passwords, passphrases, strength"))
}

func (a *App) renderResult(resp model.GenerateResponse) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, labelStyle.Render("Generated:"), valueStyle.Render(resp.Value))
	a.renderReport(resp.Strength)
}

func (a *App) renderReport(report model.StrengthReport) {
	rating := ratingStyles[report.Rating].Render(string(report.Rating))

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s %d/100 (%s)\n", labelStyle.Render("Strength:"), report.Score, rating)
	fmt.Fprintln(a.out, labelStyle.Render("Strength bar:"), strengthBar(report.Score))
	fmt.Fprintf(a.out, "%s %.1f bits, crack time %s\n",
		labelStyle.Render("Entropy:"), report.EntropyBits, report.CrackTime)

	if len(report.Suggestions) > 0 {
		fmt.Fprintln(a.out, labelStyle.Render("Suggestions:"))
		for _, tip := range report.Suggestions {
			fmt.Fprintln(a.out, bulletStyle.Render("  • "+tip))
		}
	}
	fmt.Fprintln(a.out)
}

func (a *App) renderHistory(entries []model.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No passwords generated yet.")
		return
	}

	fmt.Fprintln(a.out, labelStyle.Render("Session history (oldest first):"))
	for i, entry := range entries {
		fmt.Fprintf(a.out, "%2d. %-12s %s  %s\n",
			i+1,
			string(entry.Kind),
			valueStyle.Render(entry.Value),
			labelStyle.Render(entry.CreatedAt.Format("15:04:05")),
		)
	}
}

// strengthBar renders the score as a 20-cell bar colored by rating.
func strengthBar(score int) string {
	const cells = 20
	filled := score * cells / 100
	style := ratingStyles[model.RatingFromScore(score)]
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", cells-filled)
}
