package ensaios

import (
	"testing"
)

func TestBook_AddSession(t *testing.T) {
	b := NewBook()

	s, err := b.AddSession("Ramon", "Clara", at(10))
	if err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}
	if s.Photographer != "Ramon" || s.Model != "Clara" {
		t.Errorf("AddSession() = %+v", s)
	}
	if s.Status != StatusPending {
		t.Errorf("new session status = %q, want %q", s.Status, StatusPending)
	}
	if s.Date != DayOf(at(10)) {
		t.Errorf("new session date = %v, want %v", s.Date, DayOf(at(10)))
	}
	if b.Session(s.ID) == nil {
		t.Errorf("Session(%q) not found after AddSession", s.ID)
	}

	if _, err := b.AddSession("Nobody", "Clara", at(10)); !IsValidation(err) {
		t.Errorf("AddSession(off-roster) error = %v, want a validation error", err)
	}
	if _, err := b.AddSession("Ramon", "", at(10)); !IsValidation(err) {
		t.Errorf("AddSession(no model) error = %v, want a validation error", err)
	}
}

func TestBook_DeleteSession(t *testing.T) {
	b := testBook()
	id := b.Sessions[0].ID

	if err := b.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if b.Session(id) != nil {
		t.Errorf("Session(%q) still present after delete", id)
	}
	if err := b.DeleteSession(id); !IsValidation(err) {
		t.Errorf("DeleteSession(unknown) error = %v, want a validation error", err)
	}
}

func TestBook_RecordSale_sold(t *testing.T) {
	b := testBook()
	id := b.Sessions[0].ID

	sale, err := b.RecordSale(SaleDraft{
		SessionID: id,
		Status:    Sold,
		Seller:    "Ingrid",
		Delivery:  DeliverySelected,
		Payments: []Payment{
			{Method: Pix, Value: R(200)},
			{Method: Card, Value: R(150.50)},
		},
	}, at(14))
	if err != nil {
		t.Fatalf("RecordSale() error = %v", err)
	}
	// The sale value is always the sum of the payment split.
	if got, want := sale.Value, R(350.50); !got.Equal(want) {
		t.Errorf("sale value = %v, want %v", got, want)
	}
	if sale.DeliveryStatus != DeliveryPending {
		t.Errorf("delivery status = %q, want %q", sale.DeliveryStatus, DeliveryPending)
	}
	if got := b.Session(id).Status; got != StatusCompleted {
		t.Errorf("session status after VD = %q, want %q", got, StatusCompleted)
	}
}

func TestBook_RecordSale_replacesPrior(t *testing.T) {
	b := testBook()
	id := b.Sessions[0].ID

	if _, err := b.RecordSale(SaleDraft{
		SessionID: id, Status: Sold, Seller: "Ingrid", Delivery: DeliveryComplete,
		Payments: []Payment{{Method: Cash, Value: R(300)}},
	}, at(14)); err != nil {
		t.Fatalf("RecordSale() error = %v", err)
	}

	// Recording again for the same session replaces the sale in full.
	if _, err := b.RecordSale(SaleDraft{SessionID: id, Status: NotSeen}, at(15)); err != nil {
		t.Fatalf("RecordSale() error = %v", err)
	}
	if got := len(b.Sales); got != 1 {
		t.Fatalf("len(Sales) = %d, want 1", got)
	}
	sale := b.SaleFor(id)
	if sale.Status != NotSeen {
		t.Errorf("sale status = %q, want %q", sale.Status, NotSeen)
	}
	// NV forces the seller and payment data empty, whatever came before.
	if sale.Seller != "" || len(sale.Payments) != 0 || !sale.Value.IsZero() {
		t.Errorf("NV sale kept sold fields: %+v", sale)
	}
	if got := b.Session(id).Status; got != StatusPending {
		t.Errorf("session status after NV = %q, want %q", got, StatusPending)
	}
}

func TestBook_RecordSale_gaveUp(t *testing.T) {
	b := testBook()
	id := b.Sessions[0].ID

	sale, err := b.RecordSale(SaleDraft{
		SessionID: id, Status: GaveUp, Seller: "Wiliam", Delivery: DeliveryCourtesy,
	}, at(14))
	if err != nil {
		t.Fatalf("RecordSale() error = %v", err)
	}
	if !sale.Value.IsZero() {
		t.Errorf("D sale value = %v, want zero", sale.Value)
	}
	if got := b.Session(id).Status; got != StatusInProgress {
		t.Errorf("session status after D = %q, want %q", got, StatusInProgress)
	}
}

func TestBook_RecordSale_validation(t *testing.T) {
	b := testBook()
	id := b.Sessions[0].ID
	pay := func(values ...float64) []Payment {
		var payments []Payment
		for _, v := range values {
			payments = append(payments, Payment{Method: Pix, Value: R(v)})
		}
		return payments
	}

	tests := []struct {
		name  string
		draft SaleDraft
	}{
		{"unknown session", SaleDraft{SessionID: "999", Status: Sold, Seller: "Ingrid", Delivery: DeliverySelected, Payments: pay(100)}},
		{"VD without seller", SaleDraft{SessionID: id, Status: Sold, Delivery: DeliverySelected, Payments: pay(100)}},
		{"VD without delivery", SaleDraft{SessionID: id, Status: Sold, Seller: "Ingrid", Payments: pay(100)}},
		{"VD with courtesy delivery", SaleDraft{SessionID: id, Status: Sold, Seller: "Ingrid", Delivery: DeliveryCourtesy, Payments: pay(100)}},
		{"VD without payments", SaleDraft{SessionID: id, Status: Sold, Seller: "Ingrid", Delivery: DeliverySelected}},
		{"VD with too many payments", SaleDraft{SessionID: id, Status: Sold, Seller: "Ingrid", Delivery: DeliverySelected, Payments: pay(1, 2, 3, 4)}},
		{"VD with zero payment", SaleDraft{SessionID: id, Status: Sold, Seller: "Ingrid", Delivery: DeliverySelected, Payments: pay(0)}},
		{"D without seller", SaleDraft{SessionID: id, Status: GaveUp, Delivery: DeliveryNone}},
		{"D with selected delivery", SaleDraft{SessionID: id, Status: GaveUp, Seller: "Ingrid", Delivery: DeliverySelected}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.RecordSale(tt.draft, at(14)); !IsValidation(err) {
				t.Errorf("RecordSale() error = %v, want a validation error", err)
			}
		})
	}

	// Nothing was recorded, nothing moved.
	if len(b.Sales) != 0 {
		t.Errorf("len(Sales) = %d after failed attempts, want 0", len(b.Sales))
	}
	if got := b.Session(id).Status; got != StatusPending {
		t.Errorf("session status = %q after failed attempts, want %q", got, StatusPending)
	}
}

func TestBook_MarkDelivered(t *testing.T) {
	b := testBook()
	sold, gaveUp := b.Sessions[0].ID, b.Sessions[1].ID

	if _, err := b.RecordSale(SaleDraft{
		SessionID: sold, Status: Sold, Seller: "Ingrid", Delivery: DeliverySelected,
		Payments: []Payment{{Method: Pix, Value: R(100)}},
	}, at(14)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecordSale(SaleDraft{
		SessionID: gaveUp, Status: GaveUp, Seller: "Ingrid", Delivery: DeliveryNone,
	}, at(14)); err != nil {
		t.Fatal(err)
	}

	if err := b.MarkDelivered(sold); err != nil {
		t.Fatalf("MarkDelivered() error = %v", err)
	}
	if got := b.SaleFor(sold).DeliveryStatus; got != DeliverySent {
		t.Errorf("delivery status = %q, want %q", got, DeliverySent)
	}
	if err := b.MarkDelivered(gaveUp); !IsValidation(err) {
		t.Errorf("MarkDelivered(D sale) error = %v, want a validation error", err)
	}
	if err := b.MarkDelivered("999"); !IsValidation(err) {
		t.Errorf("MarkDelivered(no sale) error = %v, want a validation error", err)
	}
}

func TestBook_SetDailyGoal(t *testing.T) {
	b := NewBook()
	if err := b.SetDailyGoal(R(1500)); err != nil {
		t.Fatalf("SetDailyGoal() error = %v", err)
	}
	if !b.DailyGoal.Equal(R(1500)) {
		t.Errorf("DailyGoal = %v, want %v", b.DailyGoal, R(1500))
	}
	if err := b.SetDailyGoal(R(-1)); !IsValidation(err) {
		t.Errorf("SetDailyGoal(negative) error = %v, want a validation error", err)
	}
}

func TestRoster(t *testing.T) {
	r := Roster{"Ingrid", "Wiliam"}

	if err := r.Add("Carla"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got, want := len(r), 3; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	// Insertion order is preserved.
	if r[2] != "Carla" {
		t.Errorf("r[2] = %q, want %q", r[2], "Carla")
	}
	if err := r.Add("Ingrid"); !IsValidation(err) {
		t.Errorf("Add(duplicate) error = %v, want a validation error", err)
	}
	if err := r.Add(""); !IsValidation(err) {
		t.Errorf("Add(empty) error = %v, want a validation error", err)
	}
	if err := r.Remove("Wiliam"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if r.Contains("Wiliam") {
		t.Errorf("Contains(%q) = true after Remove", "Wiliam")
	}
	if err := r.Remove("Wiliam"); !IsValidation(err) {
		t.Errorf("Remove(unknown) error = %v, want a validation error", err)
	}
}
