package ensaios

import "time"

// R is a helper for tests to create amounts from const
func R(v float64) Money { return M(v) }

// at builds a timestamp on the fixture day at the given hour.
func at(hour int) time.Time {
	return time.Date(2026, 8, 29, hour, 0, 0, 0, time.Local)
}

// testBook builds a book with one session per photographer booked on the
// fixture day, no sales yet.
func testBook() *Book {
	b := NewBook()
	for i, name := range b.Photographers {
		if _, err := b.AddSession(name, "Model "+name, at(9).Add(time.Duration(i)*time.Minute)); err != nil {
			panic(err)
		}
	}
	return b
}
