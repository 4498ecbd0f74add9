package ensaios

import (
	"log"
	"slices"
	"time"
)

// Default rosters seeded on first use and after a full wipe.
var (
	DefaultPhotographers = Roster{"Ramon", "Anne", "Gabriel", "Fabricio"}
	DefaultSellers       = Roster{"Ingrid", "Wiliam"}
)

// Book holds the studio's records: sessions, their sale outcomes, the two
// rosters, and the daily revenue goal. It is the single aggregate every
// command loads, mutates and stores back whole.
type Book struct {
	Sessions      []Session
	Sales         []Sale
	Photographers Roster
	Sellers       Roster
	DailyGoal     Money
}

// NewBook creates an empty book with the default rosters.
func NewBook() *Book {
	return &Book{
		Photographers: slices.Clone(DefaultPhotographers),
		Sellers:       slices.Clone(DefaultSellers),
	}
}

// Session returns the session with the given id, or nil if unknown.
func (b *Book) Session(id string) *Session {
	for i := range b.Sessions {
		if b.Sessions[i].ID == id {
			return &b.Sessions[i]
		}
	}
	return nil
}

// SaleFor returns the sale recorded for a session, or nil if there is none.
func (b *Book) SaleFor(sessionID string) *Sale {
	for i := range b.Sales {
		if b.Sales[i].SessionID == sessionID {
			return &b.Sales[i]
		}
	}
	return nil
}

// AddSession books a new photo session for today. The photographer must be on
// the roster at creation time; the model name is free text.
func (b *Book) AddSession(photographer, model string, now time.Time) (Session, error) {
	if photographer == "" {
		return Session{}, verrf("photographer is required")
	}
	if !b.Photographers.Contains(photographer) {
		return Session{}, verrf("photographer %q is not on the roster", photographer)
	}
	if model == "" {
		return Session{}, verrf("model name is required")
	}
	s := Session{
		ID:           NewSessionID(now),
		Photographer: photographer,
		Model:        model,
		Date:         DayOf(now),
		Status:       StatusPending,
	}
	b.Sessions = append(b.Sessions, s)
	return s, nil
}

// DeleteSession removes a session from the book. A sale recorded for it is
// kept; it simply stops matching any session.
func (b *Book) DeleteSession(id string) error {
	for i := range b.Sessions {
		if b.Sessions[i].ID == id {
			b.Sessions = slices.Delete(b.Sessions, i, i+1)
			return nil
		}
	}
	return verrf("unknown session %q", id)
}

// SaleDraft carries the fields of a sale attempt before validation. Which
// fields are required depends on Status; RecordSale enforces that.
type SaleDraft struct {
	SessionID string
	Status    SaleStatus
	Seller    string
	Payments  []Payment
	Delivery  DeliveryType

	ClientName     string
	ClientEmail    string
	ClientWhatsApp string
}

// RecordSale validates a sale attempt and records it, replacing any prior
// sale for the same session in full. It also moves the parent session's
// status: completed on VD, in_progress on D, back to pending on NV.
// On a validation error nothing is mutated.
func (b *Book) RecordSale(draft SaleDraft, now time.Time) (Sale, error) {
	session := b.Session(draft.SessionID)
	if session == nil {
		return Sale{}, verrf("unknown session %q", draft.SessionID)
	}

	sale := Sale{
		SessionID:      draft.SessionID,
		Status:         draft.Status,
		ClientName:     draft.ClientName,
		ClientEmail:    draft.ClientEmail,
		ClientWhatsApp: draft.ClientWhatsApp,
		Timestamp:      now,
	}

	switch draft.Status {
	case Sold:
		if draft.Seller == "" {
			return Sale{}, verrf("a VD sale requires a seller")
		}
		if draft.Delivery != DeliverySelected && draft.Delivery != DeliveryComplete {
			return Sale{}, verrf("a VD sale requires a photo set (selected or complete)")
		}
		total, err := validatePayments(draft.Payments)
		if err != nil {
			return Sale{}, err
		}
		sale.Seller = draft.Seller
		sale.Delivery = draft.Delivery
		sale.Payments = slices.Clone(draft.Payments)
		sale.Value = total
		sale.DeliveryStatus = DeliveryPending
	case GaveUp:
		if draft.Seller == "" {
			return Sale{}, verrf("a D sale requires a seller")
		}
		if draft.Delivery != DeliveryCourtesy && draft.Delivery != DeliveryNone {
			return Sale{}, verrf("a D sale requires a delivery type (courtesy or none)")
		}
		sale.Seller = draft.Seller
		sale.Delivery = draft.Delivery
	case NotSeen:
		// Seller and payment data are forced empty: the client was never seen.
	default:
		return Sale{}, verrf("unknown sale status %q", draft.Status)
	}

	// Full overwrite of any prior sale for this session.
	b.Sales = slices.DeleteFunc(b.Sales, func(s Sale) bool {
		return s.SessionID == draft.SessionID
	})
	b.Sales = append(b.Sales, sale)

	switch draft.Status {
	case Sold:
		session.Status = StatusCompleted
	case GaveUp:
		session.Status = StatusInProgress
	case NotSeen:
		session.Status = StatusPending
	}
	log.Printf("%s: recorded %s sale for session %s (%s)", sale.Day(), sale.Status, session.ID, session.Model)
	return sale, nil
}

// validatePayments checks a split payment and returns its total.
func validatePayments(payments []Payment) (Money, error) {
	if len(payments) == 0 {
		return Money{}, verrf("a VD sale requires at least one payment")
	}
	if len(payments) > MaxPayments {
		return Money{}, verrf("at most %d payment methods are supported", MaxPayments)
	}
	var total Money
	for _, p := range payments {
		if _, err := ParsePaymentMethod(string(p.Method)); err != nil {
			return Money{}, verrf("%v", err)
		}
		if !p.Value.IsPositive() {
			return Money{}, verrf("payment value for %s must be positive", p.Method)
		}
		total = total.Add(p.Value)
	}
	return total, nil
}

// MarkDelivered flips a sold session's delivery status to sent.
func (b *Book) MarkDelivered(sessionID string) error {
	sale := b.SaleFor(sessionID)
	if sale == nil {
		return verrf("no sale recorded for session %q", sessionID)
	}
	if sale.Status != Sold {
		return verrf("session %q has no photos to deliver (status %s)", sessionID, sale.Status)
	}
	sale.DeliveryStatus = DeliverySent
	return nil
}

// SetDailyGoal sets today's revenue target.
func (b *Book) SetDailyGoal(goal Money) error {
	if goal.IsNegative() {
		return verrf("the daily goal cannot be negative")
	}
	b.DailyGoal = goal
	return nil
}
