package ensaios

import "slices"

// Roster is the ordered list of photographer or seller names available for
// assignment. Insertion order is preserved; names are unique, case-sensitive.
type Roster []string

// Contains reports whether name is on the roster.
func (r Roster) Contains(name string) bool {
	return slices.Contains(r, name)
}

// Add appends a new name. Empty and duplicate names are rejected.
func (r *Roster) Add(name string) error {
	if name == "" {
		return verrf("name cannot be empty")
	}
	if r.Contains(name) {
		return verrf("%q is already on the roster", name)
	}
	*r = append(*r, name)
	return nil
}

// Remove deletes a name from the roster. Sessions and sales recorded with the
// name keep it as a plain string; removal never cascades.
func (r *Roster) Remove(name string) error {
	i := slices.Index(*r, name)
	if i < 0 {
		return verrf("%q is not on the roster", name)
	}
	*r = slices.Delete(*r, i, i+1)
	return nil
}
