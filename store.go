package ensaios

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store is the record store the commands talk to: load the whole book,
// store it back whole, or wipe everything. There is exactly one writer at a
// time, so a load-mutate-save round trip is all the atomicity needed.
// Subscribers are told after every successful Save or Clear, so a long-lived
// presentation layer can re-read instead of polling.
type Store interface {
	Load() (*Book, error)
	Save(*Book) error
	Clear() error
	Subscribe(func())
}

// Collection file names inside the store directory.
const (
	sessionsFile      = "sessions.jsonl"
	salesFile         = "sales.jsonl"
	photographersFile = "photographers.json"
	sellersFile       = "sellers.json"
	goalFile          = "goal"
)

// DirStore persists each collection as its own file under a directory.
type DirStore struct {
	dir  string
	subs []func()
}

// NewDirStore returns a store rooted at dir. The directory is created on the
// first save.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Subscribe registers a callback invoked after every Save or Clear.
func (d *DirStore) Subscribe(fn func()) {
	d.subs = append(d.subs, fn)
}

func (d *DirStore) notify() {
	for _, fn := range d.subs {
		fn()
	}
}

// Load reads the whole book. Missing files mean empty collections; a missing
// roster file yields the default roster, like a first run would.
func (d *DirStore) Load() (*Book, error) {
	book := NewBook()

	if err := d.loadJSONL(sessionsFile, func(r *os.File) error {
		sessions, err := DecodeSessions(r)
		book.Sessions = sessions
		return err
	}); err != nil {
		return nil, err
	}

	if err := d.loadJSONL(salesFile, func(r *os.File) error {
		sales, err := DecodeSales(r)
		book.Sales = sales
		return err
	}); err != nil {
		return nil, err
	}

	for _, c := range []struct {
		file   string
		roster *Roster
	}{
		{photographersFile, &book.Photographers},
		{sellersFile, &book.Sellers},
	} {
		raw, err := os.ReadFile(filepath.Join(d.dir, c.file))
		if errors.Is(err, fs.ErrNotExist) {
			continue // keep the default roster
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", c.file, err)
		}
		if err := json.Unmarshal(raw, c.roster); err != nil {
			return nil, fmt.Errorf("format error in %q: %w", c.file, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(d.dir, goalFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no goal set yet
	case err != nil:
		return nil, fmt.Errorf("could not read %q: %w", goalFile, err)
	default:
		goal, err := ParseMoney(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, fmt.Errorf("format error in %q: %w", goalFile, err)
		}
		book.DailyGoal = goal
	}

	return book, nil
}

func (d *DirStore) loadJSONL(name string, decode func(*os.File) error) error {
	f, err := os.Open(filepath.Join(d.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", name, err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("could not decode %q: %w", name, err)
	}
	return nil
}

// Save writes the whole book back, one file per collection.
func (d *DirStore) Save(book *Book) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", d.dir, err)
	}

	if err := d.writeFile(sessionsFile, func(f *os.File) error {
		return EncodeSessions(f, book.Sessions)
	}); err != nil {
		return err
	}
	if err := d.writeFile(salesFile, func(f *os.File) error {
		return EncodeSales(f, book.Sales)
	}); err != nil {
		return err
	}

	for _, c := range []struct {
		file   string
		roster Roster
	}{
		{photographersFile, book.Photographers},
		{sellersFile, book.Sellers},
	} {
		raw, err := json.Marshal(c.roster)
		if err != nil {
			return fmt.Errorf("could not encode %q: %w", c.file, err)
		}
		if err := os.WriteFile(filepath.Join(d.dir, c.file), append(raw, '\n'), 0644); err != nil {
			return fmt.Errorf("could not write %q: %w", c.file, err)
		}
	}

	goal := []byte(book.DailyGoal.AsDecimalString() + "\n")
	if err := os.WriteFile(filepath.Join(d.dir, goalFile), goal, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", goalFile, err)
	}

	d.notify()
	return nil
}

func (d *DirStore) writeFile(name string, encode func(*os.File) error) error {
	path := filepath.Join(d.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// Clear wipes every collection and the goal. The next Load starts over with
// the default rosters.
func (d *DirStore) Clear() error {
	for _, name := range []string{sessionsFile, salesFile, photographersFile, sellersFile, goalFile} {
		err := os.Remove(filepath.Join(d.dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not remove %q: %w", name, err)
		}
	}
	d.notify()
	return nil
}

var _ Store = (*DirStore)(nil)
