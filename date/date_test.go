package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_normalizes(t *testing.T) {
	// Day 32 of January must roll over into February.
	got := New(2025, time.January, 32)
	if want := New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, January, 32) = %v, want %v", got, want)
	}
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, time.August, 30, 23, 59, 59, 0, time.UTC)
	if got, want := DayOf(ts), New(2025, time.August, 30); got != want {
		t.Errorf("DayOf(%v) = %v, want %v", ts, got, want)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-08-30", want: New(2025, time.August, 30)},
		{in: "2025-8-3", want: New(2025, time.August, 3)}, // lenient form
		{in: "30/08/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): want error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.August, 30)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-08-30"` {
		t.Errorf("Marshal = %s, want %q", b, `"2025-08-30"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
