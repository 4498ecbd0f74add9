package renderer

import (
	"bytes"
	"fmt"
	"io"

	ensaios "github.com/clebitoo/controle-de-ensaios"
)

// RankingsMarkdown renders the day's leaderboards and status counters.
func RankingsMarkdown(r *ensaios.Review) string {
	var buf bytes.Buffer
	w := &buf

	fmt.Fprintf(w, "# Rankings %s\n\n", r.Today())

	tally := r.Tally()
	fmt.Fprintln(w, "| VD | D | NV | Ensaios |")
	fmt.Fprintln(w, "|---:|---:|---:|---:|")
	fmt.Fprintf(w, "| %d | %d | %d | %d |\n", tally.VD, tally.D, tally.NV, tally.Sessions)

	fmt.Fprint(w, "\n## Fotógrafos por pastas\n\n")
	for i, t := range r.PhotographersByFolders() {
		fmt.Fprintf(w, "%d. %s — %d pastas\n", i+1, t.Name, t.Folders)
	}

	fmt.Fprint(w, "\n## Fotógrafos por valor\n\n")
	for i, t := range r.PhotographersByRevenue() {
		fmt.Fprintf(w, "%d. %s — %s\n", i+1, t.Name, t.Revenue)
	}

	fmt.Fprint(w, "\n## Vendedores por quantidade\n\n")
	for i, t := range r.SellersByCount() {
		fmt.Fprintf(w, "%d. %s — %d vendas\n", i+1, t.Name, t.Count)
	}

	fmt.Fprint(w, "\n## Vendedores por valor\n\n")
	for i, t := range r.SellersByRevenue() {
		fmt.Fprintf(w, "%d. %s — %s\n", i+1, t.Name, t.Revenue)
	}

	ConditionalBlock(w, func(w io.Writer) bool {
		top := r.TopSales(3)
		if len(top) == 0 {
			return false
		}
		fmt.Fprint(w, "\n## Top 3 maiores vendas\n\n")
		for i, s := range top {
			fmt.Fprintf(w, "%d. %s — %s (%s/%s)\n", i+1, s.Value, s.Seller, s.Photographer, s.Model)
		}
		return true
	})

	return buf.String()
}
