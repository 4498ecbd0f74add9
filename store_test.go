package ensaios

import (
	"slices"
	"testing"
)

func TestDirStore_firstRun(t *testing.T) {
	store := NewDirStore(t.TempDir())

	// An empty directory loads like a first run: default rosters, nothing else.
	book, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(book.Photographers, DefaultPhotographers) {
		t.Errorf("Photographers = %v, want defaults", book.Photographers)
	}
	if !slices.Equal(book.Sellers, DefaultSellers) {
		t.Errorf("Sellers = %v, want defaults", book.Sellers)
	}
	if len(book.Sessions) != 0 || len(book.Sales) != 0 || !book.DailyGoal.IsZero() {
		t.Errorf("first run book is not empty: %+v", book)
	}
}

func TestDirStore_roundTrip(t *testing.T) {
	store := NewDirStore(t.TempDir())

	book := reviewBook(t)
	if err := book.SetDailyGoal(R(1234.56)); err != nil {
		t.Fatal(err)
	}
	if err := book.Photographers.Add("Marina"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(book); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Sessions) != len(book.Sessions) {
		t.Fatalf("len(Sessions) = %d, want %d", len(got.Sessions), len(book.Sessions))
	}
	for i := range book.Sessions {
		if got.Sessions[i] != book.Sessions[i] {
			t.Errorf("Sessions[%d] = %+v, want %+v", i, got.Sessions[i], book.Sessions[i])
		}
	}
	if len(got.Sales) != len(book.Sales) {
		t.Fatalf("len(Sales) = %d, want %d", len(got.Sales), len(book.Sales))
	}
	for i := range book.Sales {
		g, w := got.Sales[i], book.Sales[i]
		if g.SessionID != w.SessionID || g.Status != w.Status || g.Seller != w.Seller {
			t.Errorf("Sales[%d] = %+v, want %+v", i, g, w)
		}
		if !g.Value.Equal(w.Value) {
			t.Errorf("Sales[%d].Value = %v, want %v", i, g.Value, w.Value)
		}
		if !g.Timestamp.Equal(w.Timestamp) {
			t.Errorf("Sales[%d].Timestamp = %v, want %v", i, g.Timestamp, w.Timestamp)
		}
	}
	if !slices.Equal(got.Photographers, book.Photographers) {
		t.Errorf("Photographers = %v, want %v", got.Photographers, book.Photographers)
	}
	if !got.DailyGoal.Equal(book.DailyGoal) {
		t.Errorf("DailyGoal = %v, want %v", got.DailyGoal, book.DailyGoal)
	}
}

func TestDirStore_Clear(t *testing.T) {
	store := NewDirStore(t.TempDir())

	book := reviewBook(t)
	if err := book.Sellers.Remove("Wiliam"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(book); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	// After a wipe the next load reseeds the default rosters.
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Sessions) != 0 || len(got.Sales) != 0 {
		t.Errorf("book not empty after Clear: %+v", got)
	}
	if !slices.Equal(got.Sellers, DefaultSellers) {
		t.Errorf("Sellers = %v, want defaults back", got.Sellers)
	}

	// Clearing an already empty store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
}

func TestDirStore_Subscribe(t *testing.T) {
	store := NewDirStore(t.TempDir())

	var calls int
	store.Subscribe(func() { calls++ })

	if err := store.Save(NewBook()); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls after Save = %d, want 1", calls)
	}
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls after Clear = %d, want 2", calls)
	}
}
