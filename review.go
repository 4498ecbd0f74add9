package ensaios

import "slices"

// Review is the day's derived view over a book: today's subsets, per-person
// totals, rankings, goal progress and the numbers both reports are built
// from. It is computed from its inputs alone and never reads a clock, so the
// same book and day always produce the same review.
type Review struct {
	book  *Book
	today Date

	sessions []Session // today's sessions, by Session.Date
	sales    []Sale    // today's sales, by the sale timestamp's day
}

// NewReview computes the day view of a book for the given day.
func NewReview(b *Book, today Date) *Review {
	r := &Review{book: b, today: today}
	for _, s := range b.Sessions {
		if s.Date == today {
			r.sessions = append(r.sessions, s)
		}
	}
	for _, s := range b.Sales {
		if s.Day() == today {
			r.sales = append(r.sales, s)
		}
	}
	return r
}

// Today returns the day the review was computed for.
func (r *Review) Today() Date { return r.today }

// Sessions returns today's sessions.
func (r *Review) Sessions() []Session { return r.sessions }

// Sales returns today's sales.
func (r *Review) Sales() []Sale { return r.sales }

// sessionOf resolves a sale's session from the whole book, today or not.
func (r *Review) sessionOf(sale Sale) *Session { return r.book.Session(sale.SessionID) }

// PhotographerTotal is a photographer's day: revenue from sales of their
// sessions and the number of folders (sessions) they shot.
type PhotographerTotal struct {
	Name    string
	Revenue Money
	Folders int
}

// PhotographerTotals computes per-photographer totals in roster order.
// Photographers with no activity appear with zero values.
func (r *Review) PhotographerTotals() []PhotographerTotal {
	totals := make([]PhotographerTotal, 0, len(r.book.Photographers))
	for _, name := range r.book.Photographers {
		t := PhotographerTotal{Name: name}
		for _, s := range r.sessions {
			if s.Photographer == name {
				t.Folders++
			}
		}
		for _, sale := range r.sales {
			if session := r.sessionOf(sale); session != nil && session.Photographer == name {
				t.Revenue = t.Revenue.Add(sale.Value)
			}
		}
		totals = append(totals, t)
	}
	return totals
}

// SellerTotal is a seller's day: revenue and number of sales handled.
type SellerTotal struct {
	Name    string
	Revenue Money
	Count   int
}

// SellerTotals computes per-seller totals in roster order.
// Sellers with no activity appear with zero values.
func (r *Review) SellerTotals() []SellerTotal {
	totals := make([]SellerTotal, 0, len(r.book.Sellers))
	for _, name := range r.book.Sellers {
		t := SellerTotal{Name: name}
		for _, sale := range r.sales {
			if sale.Seller == name {
				t.Revenue = t.Revenue.Add(sale.Value)
				t.Count++
			}
		}
		totals = append(totals, t)
	}
	return totals
}

// Rankings are strictly descending; equal values keep roster order (stable
// sort, no secondary key).

// PhotographersByFolders ranks photographers by folder count.
func (r *Review) PhotographersByFolders() []PhotographerTotal {
	ranked := r.PhotographerTotals()
	slices.SortStableFunc(ranked, func(a, b PhotographerTotal) int { return b.Folders - a.Folders })
	return ranked
}

// PhotographersByRevenue ranks photographers by revenue.
func (r *Review) PhotographersByRevenue() []PhotographerTotal {
	ranked := r.PhotographerTotals()
	slices.SortStableFunc(ranked, func(a, b PhotographerTotal) int { return b.Revenue.Cmp(a.Revenue) })
	return ranked
}

// SellersByCount ranks sellers by number of sales.
func (r *Review) SellersByCount() []SellerTotal {
	ranked := r.SellerTotals()
	slices.SortStableFunc(ranked, func(a, b SellerTotal) int { return b.Count - a.Count })
	return ranked
}

// SellersByRevenue ranks sellers by revenue.
func (r *Review) SellersByRevenue() []SellerTotal {
	ranked := r.SellerTotals()
	slices.SortStableFunc(ranked, func(a, b SellerTotal) int { return b.Revenue.Cmp(a.Revenue) })
	return ranked
}

// TopSale is one entry of the biggest-sales leaderboard, enriched with the
// session's model and photographer.
type TopSale struct {
	Seller       string
	Value        Money
	Model        string
	Photographer string
}

// TopSales returns today's n biggest sales by value, stable on ties.
// Sales whose session has been deleted render as "N/A".
func (r *Review) TopSales(n int) []TopSale {
	ranked := slices.Clone(r.sales)
	slices.SortStableFunc(ranked, func(a, b Sale) int { return b.Value.Cmp(a.Value) })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	top := make([]TopSale, 0, len(ranked))
	for _, sale := range ranked {
		t := TopSale{Seller: sale.Seller, Value: sale.Value, Model: "N/A", Photographer: "N/A"}
		if session := r.sessionOf(sale); session != nil {
			t.Model = session.Model
			t.Photographer = session.Photographer
		}
		top = append(top, t)
	}
	return top
}

// Tally counts today's sales per outcome, next to the total session count.
// A session may have no sale yet, so VD+D+NV need not equal Sessions.
type Tally struct {
	VD, D, NV int
	Sessions  int
}

// Tally computes the day's status counters.
func (r *Review) Tally() Tally {
	t := Tally{Sessions: len(r.sessions)}
	for _, sale := range r.sales {
		switch sale.Status {
		case Sold:
			t.VD++
		case GaveUp:
			t.D++
		case NotSeen:
			t.NV++
		}
	}
	return t
}

// Revenue sums today's sale values.
func (r *Review) Revenue() Money {
	var total Money
	for _, sale := range r.sales {
		total = total.Add(sale.Value)
	}
	return total
}

// PendingSessions returns today's sessions with no sale recorded at all.
// Any sale, whatever its outcome, removes a session from this list.
func (r *Review) PendingSessions() []Session {
	var pending []Session
	for _, s := range r.sessions {
		if r.book.SaleFor(s.ID) == nil {
			pending = append(pending, s)
		}
	}
	return pending
}

// GoalProgress is the day's goal-attainment picture.
type GoalProgress struct {
	Goal    Money
	Revenue Money
	// Remaining is signed: it goes negative once the goal is exceeded.
	Remaining           Money
	Progress            Percent
	PendingSessions     int
	SuggestionPerFolder Money // asking price per pending session to still hit the goal
	GoalPerSeller       Money
	GoalPerPhotographer Money
}

// GoalProgress computes goal-attainment statistics. Per-person goals divide
// by the roster size with a floor of one, so an empty roster never divides
// by zero.
func (r *Review) GoalProgress() GoalProgress {
	goal := r.book.DailyGoal
	revenue := r.Revenue()
	pending := len(r.PendingSessions())

	g := GoalProgress{
		Goal:                goal,
		Revenue:             revenue,
		Remaining:           goal.Sub(revenue),
		Progress:            revenue.PercentOf(goal),
		PendingSessions:     pending,
		GoalPerSeller:       goal.DivInt(max(len(r.book.Sellers), 1)),
		GoalPerPhotographer: goal.DivInt(max(len(r.book.Photographers), 1)),
	}
	if pending > 0 {
		g.SuggestionPerFolder = g.Remaining.DivInt(pending)
	}
	return g
}

// PersonProgress is one person's revenue against their share of the goal.
// Unlike the overall remaining, this one is clamped at zero.
type PersonProgress struct {
	Name      string
	Revenue   Money
	Goal      Money
	Progress  Percent
	Remaining Money
}

// SellerProgress reports each seller's progress toward the per-seller goal,
// in roster order.
func (r *Review) SellerProgress() []PersonProgress {
	share := r.GoalProgress().GoalPerSeller
	var progress []PersonProgress
	for _, t := range r.SellerTotals() {
		progress = append(progress, personProgress(t.Name, t.Revenue, share))
	}
	return progress
}

// PhotographerProgress reports each photographer's progress toward the
// per-photographer goal, in roster order.
func (r *Review) PhotographerProgress() []PersonProgress {
	share := r.GoalProgress().GoalPerPhotographer
	var progress []PersonProgress
	for _, t := range r.PhotographerTotals() {
		progress = append(progress, personProgress(t.Name, t.Revenue, share))
	}
	return progress
}

func personProgress(name string, revenue, goal Money) PersonProgress {
	remaining := goal.Sub(revenue)
	if remaining.IsNegative() {
		remaining = Money{}
	}
	return PersonProgress{
		Name:      name,
		Revenue:   revenue,
		Goal:      goal,
		Progress:  revenue.PercentOf(goal),
		Remaining: remaining,
	}
}

// PaymentTotals is today's revenue split by payment method.
type PaymentTotals struct {
	Pix  Money
	Card Money
	Cash Money
}

// PaymentTotals sums every payment entry of today's sales per method.
func (r *Review) PaymentTotals() PaymentTotals {
	var t PaymentTotals
	for _, sale := range r.sales {
		for _, p := range sale.Payments {
			switch p.Method {
			case Pix:
				t.Pix = t.Pix.Add(p.Value)
			case Card:
				t.Card = t.Card.Add(p.Value)
			case Cash:
				t.Cash = t.Cash.Add(p.Value)
			}
		}
	}
	return t
}

// AverageSale is today's revenue averaged over sold (VD) sales only,
// zero when nothing was sold yet.
func (r *Review) AverageSale() Money {
	vd := r.Tally().VD
	if vd == 0 {
		return Money{}
	}
	return r.Revenue().DivInt(vd)
}
