package ensaios

import "fmt"

// Percent is a goal-attainment ratio expressed in percent. Display clamps
// progress bars at 100 but the value itself is unclamped.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String renders with one decimal, the precision used on the goal screens.
func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// Clamped returns the value capped at 100 for progress bars.
func (p Percent) Clamped() Percent {
	if p > 100 {
		return 100
	}
	return p
}
