package ensaios

import (
	"time"

	"github.com/clebitoo/controle-de-ensaios/date"
)

// Date aliases date.Date so the domain types read naturally.
type Date = date.Date

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a Date from its canonical string form.
func ParseDate(s string) (Date, error) { return date.Parse(s) }

// DayOf returns the calendar date a timestamp falls on, in local time.
func DayOf(t time.Time) Date { return date.DayOf(t) }
