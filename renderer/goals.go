package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	ensaios "github.com/clebitoo/controle-de-ensaios"
)

// GoalsMarkdown renders the goal-attainment picture: the overall progress,
// the asking-price suggestion for pending folders, and one bar per seller
// and photographer.
func GoalsMarkdown(r *ensaios.Review) string {
	var buf bytes.Buffer
	w := &buf

	g := r.GoalProgress()

	fmt.Fprintf(w, "# Meta do dia %s\n\n", r.Today())
	if g.Goal.IsZero() {
		fmt.Fprintln(w, "Nenhuma meta definida. Use `cde goal -set <valor>`.")
		return buf.String()
	}

	fmt.Fprintln(w, "| Meta | Vendido | Restante | Progresso |")
	fmt.Fprintln(w, "|---:|---:|---:|---:|")
	fmt.Fprintf(w, "| %s | %s | %s | %s |\n\n", g.Goal, g.Revenue, g.Remaining, g.Progress)

	fmt.Fprintf(w, "%s\n\n", bar(g.Progress))

	ConditionalBlock(w, func(w io.Writer) bool {
		if g.PendingSessions == 0 {
			return false
		}
		fmt.Fprintf(w, "Com %d ensaios pendentes, cada um deve ser vendido por aproximadamente %s.\n\n",
			g.PendingSessions, g.SuggestionPerFolder)
		return true
	})

	fmt.Fprint(w, "## Meta por vendedor\n\n")
	progressTable(w, r.SellerProgress())

	fmt.Fprint(w, "\n## Meta por fotógrafo\n\n")
	progressTable(w, r.PhotographerProgress())

	return buf.String()
}

func progressTable(w io.Writer, people []ensaios.PersonProgress) {
	fmt.Fprintln(w, "| Nome | Vendido | Meta | Progresso | Falta |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|---:|")
	for _, p := range people {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", p.Name, p.Revenue, p.Goal, p.Progress, p.Remaining)
	}
}

// bar draws a 20-step text progress bar, clamped at 100%.
func bar(p ensaios.Percent) string {
	const width = 20
	filled := int(float64(p.Clamped()) / 100 * width)
	return "`" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "`"
}
