package renderer

import (
	"bytes"
	"fmt"

	ensaios "github.com/clebitoo/controle-de-ensaios"
)

// SummaryMarkdown renders the quick day overview shown by `cde summary`.
func SummaryMarkdown(r *ensaios.Review) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Resumo do dia %s\n\n", r.Today())

	tally := r.Tally()
	fmt.Fprintln(&buf, "| Ensaios | Vendas | Faturamento | Vendidos |")
	fmt.Fprintln(&buf, "|---:|---:|---:|---:|")
	fmt.Fprintf(&buf, "| %d | %d | %s | %d |\n", len(r.Sessions()), len(r.Sales()), r.Revenue(), tally.VD)

	return buf.String()
}

// SessionsMarkdown renders every session in the book with its sale outcome,
// the view `cde ls` presents for picking a session to sell.
func SessionsMarkdown(b *ensaios.Book) string {
	var buf bytes.Buffer

	fmt.Fprint(&buf, "# Ensaios\n\n")
	if len(b.Sessions) == 0 {
		fmt.Fprintln(&buf, "Nenhum ensaio cadastrado ainda.")
		return buf.String()
	}

	fmt.Fprintln(&buf, "| ID | Data | Fotógrafo | Modelo | Status | Vendedor | Valor | Entrega |")
	fmt.Fprintln(&buf, "|:---|:---|:---|:---|:---|:---|---:|:---|")
	for _, s := range b.Sessions {
		seller, value, delivery := "-", "-", "-"
		if sale := b.SaleFor(s.ID); sale != nil {
			if sale.Seller != "" {
				seller = sale.Seller
			}
			value = sale.Value.String()
			if sale.DeliveryStatus != "" {
				delivery = string(sale.DeliveryStatus)
			}
		}
		fmt.Fprintf(&buf, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			s.ID, s.Date, s.Photographer, s.Model, s.Status, seller, value, delivery)
	}
	return buf.String()
}
