package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abylaikhan/uniadvisor/internal/client/api"
	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// moneyPrinter groups thousands in tuition and budget figures.
var moneyPrinter = message.NewPrinter(language.English)

// formatMoney renders a dollar amount like "$12,500". Zero means the
// platform did not report a figure.
func formatMoney(amount float64) string {
	if amount == 0 {
		return "N/A"
	}
	return moneyPrinter.Sprintf("$%.0f", amount)
}

// formatPercent renders an acceptance rate to one decimal, "N/A" when
// unreported. The backend reports rates as fractions (0.45, not 45).
func formatPercent(rate float64) string {
	if rate == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", rate*100)
}

// orNA substitutes "N/A" for empty platform fields.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// detailOr turns an API error into the message shown to the user: the
// platform's detail when one was returned, the fallback otherwise.
func detailOr(err error, fallback string) string {
	return api.DetailMessage(err, fallback)
}

// printUniversityCard renders one university the way the recommendation
// pages list them, with a running number for selection by index.
func printUniversityCard(w io.Writer, n int, u models.University) {
	fmt.Fprintf(w, "%d. %s\n", n, u.Name)
	location := u.Country
	if u.City != "" {
		location = u.City + ", " + u.Country
	}
	fmt.Fprintf(w, "   Location: %s\n", orNA(location))
	fmt.Fprintf(w, "   Tuition: %s/year   Min GPA: %s   Ranking: %s\n",
		formatMoney(u.TuitionFee), orNAFloat(u.MinGPA), orNAInt(u.Ranking))
	if u.ScholarshipAvailable {
		fmt.Fprintln(w, "   Scholarships available")
	}
	if u.RecommendationScore > 0 {
		fmt.Fprintf(w, "   Match score: %.0f\n", u.RecommendationScore)
	}
}

func orNAFloat(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", v)
}

func orNAInt(v int) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("#%d", v)
}
