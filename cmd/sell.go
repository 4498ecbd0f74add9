package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	ensaios "github.com/clebitoo/controle-de-ensaios"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	id     string
	status string
	seller string
	photos string

	pix      string
	cartao   string
	dinheiro string

	client   string
	email    string
	whatsapp string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale outcome of a session" }
func (*sellCmd) Usage() string {
	return `cde sell -id <session> -status VD|D|NV [flags]

  Records the outcome of a sale attempt. Recording again for the same session
  replaces the previous outcome entirely.

  VD (sold) requires -seller, -photos selected|complete and at least one of
  -pix, -cartao, -dinheiro. The sale value is the sum of the payments.
  D (gave up) requires -seller and -photos courtesy|none.
  NV (not seen) requires nothing; seller and payments are left empty.

Usage Examples:
# A R$ 350,00 sale split between pix and card.
$ cde sell -id 1756500000000 -status VD -seller Ingrid -photos selected -pix 200 -cartao 150
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Session identifier (see 'cde ls')")
	f.StringVar(&c.status, "status", "", "Sale outcome: VD, D or NV")
	f.StringVar(&c.seller, "seller", "", "Seller name")
	f.StringVar(&c.photos, "photos", "", "Delivered photo set: selected, complete, courtesy or none")
	f.StringVar(&c.pix, "pix", "", "Amount paid by pix")
	f.StringVar(&c.cartao, "cartao", "", "Amount paid by card")
	f.StringVar(&c.dinheiro, "dinheiro", "", "Amount paid in cash")
	f.StringVar(&c.client, "client", "", "Client name (optional)")
	f.StringVar(&c.email, "email", "", "Client e-mail (optional)")
	f.StringVar(&c.whatsapp, "whatsapp", "", "Client WhatsApp (optional)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := ensaios.ParseSaleStatus(c.status)
	if err != nil {
		return fail(err)
	}

	draft := ensaios.SaleDraft{
		SessionID:      c.id,
		Status:         status,
		Seller:         c.seller,
		ClientName:     c.client,
		ClientEmail:    c.email,
		ClientWhatsApp: c.whatsapp,
	}
	if c.photos != "" {
		delivery, err := ensaios.ParseDeliveryType(c.photos)
		if err != nil {
			return fail(err)
		}
		draft.Delivery = delivery
	}
	draft.Payments, err = c.payments()
	if err != nil {
		return fail(err)
	}

	book, store, err := loadBook()
	if err != nil {
		return fail(err)
	}
	sale, err := book.RecordSale(draft, time.Now())
	if err != nil {
		return fail(err)
	}
	if err := store.Save(book); err != nil {
		return fail(err)
	}
	if sale.Status == ensaios.Sold {
		fmt.Printf("Recorded %s sale of %s for session %s\n", sale.Status, sale.Value, sale.SessionID)
	} else {
		fmt.Printf("Recorded %s outcome for session %s\n", sale.Status, sale.SessionID)
	}
	return subcommands.ExitSuccess
}

// payments turns the per-method flags into the ordered payment list.
func (c *sellCmd) payments() ([]ensaios.Payment, error) {
	var payments []ensaios.Payment
	for _, p := range []struct {
		method ensaios.PaymentMethod
		raw    string
	}{
		{ensaios.Pix, c.pix},
		{ensaios.Card, c.cartao},
		{ensaios.Cash, c.dinheiro},
	} {
		if p.raw == "" {
			continue
		}
		value, err := ensaios.ParseMoney(p.raw)
		if err != nil {
			return nil, err
		}
		payments = append(payments, ensaios.Payment{Method: p.method, Value: value})
	}
	return payments, nil
}
