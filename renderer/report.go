package renderer

import (
	"fmt"
	"strings"
	"time"

	ensaios "github.com/clebitoo/controle-de-ensaios"
)

// The two reports are copy-pasted into messaging apps as-is, so everything
// here must round-trip byte for byte: field order, labels, currency
// formatting, line breaks.

// partialView feeds templates/partial.md with preformatted strings.
type partialView struct {
	Date          string
	Time          string
	Photographers string
	Sellers       string
	FoldersToShow int
	VD, NV, D     int
	TotalFolders  int
	TotalSold     string
}

// Partial renders the in-progress ranking report for the day. now supplies
// the "atualizado" clock shown in the header.
func Partial(r *ensaios.Review, now time.Time) string {
	tally := r.Tally()

	var photographers []string
	for _, t := range r.PhotographerTotals() {
		photographers = append(photographers, photographerLine(t))
	}
	var sellers []string
	for _, t := range r.SellerTotals() {
		sellers = append(sellers, fmt.Sprintf("%s: %s", t.Name, t.Revenue))
	}

	view := partialView{
		Date:          now.Format("02/01/2006"),
		Time:          now.Format("15:04"),
		Photographers: strings.Join(photographers, "\n"),
		Sellers:       strings.Join(sellers, "\n"),
		FoldersToShow: len(r.PendingSessions()),
		VD:            tally.VD,
		NV:            tally.NV,
		D:             tally.D,
		TotalFolders:  tally.Sessions,
		TotalSold:     r.Revenue().String(),
	}
	return renderTemplate("partial", "templates/partial.md", view)
}

// finalView feeds templates/final.md.
type finalView struct {
	Date          string
	TotalRevenue  string
	Card          string
	Pix           string
	Cash          string
	Photographers string
	Sellers       string
	NV, D, VD     int
	TotalFolders  int
	Average       string
}

// Final renders the end-of-day revenue report.
func Final(r *ensaios.Review, now time.Time) string {
	tally := r.Tally()
	payments := r.PaymentTotals()

	var photographers []string
	for _, t := range r.PhotographerTotals() {
		photographers = append(photographers, photographerLine(t))
	}
	// Unlike the partial report, seller lines here carry the folder count.
	var sellers []string
	for _, t := range r.SellerTotals() {
		sellers = append(sellers, fmt.Sprintf("%s: %s / %d pastas", t.Name, t.Revenue, t.Count))
	}

	view := finalView{
		Date:          now.Format("02/01/2006"),
		TotalRevenue:  r.Revenue().String(),
		Card:          payments.Card.String(),
		Pix:           payments.Pix.String(),
		Cash:          payments.Cash.String(),
		Photographers: strings.Join(photographers, "\n"),
		Sellers:       strings.Join(sellers, "\n"),
		NV:            tally.NV,
		D:             tally.D,
		VD:            tally.VD,
		TotalFolders:  tally.Sessions,
		Average:       r.AverageSale().String(),
	}
	return renderTemplate("final", "templates/final.md", view)
}

// photographerLine renders e.g. "Ramon: R$ 150,50 / 2 pastas".
func photographerLine(t ensaios.PhotographerTotal) string {
	return fmt.Sprintf("%s: %s / %d pastas", t.Name, t.Revenue, t.Folders)
}
