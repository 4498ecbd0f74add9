package ensaios

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The book is persisted in a way that stays human-readable and git-friendly:
// sessions and sales are JSONL streams, one record per line, so a day of work
// diffs as a handful of added lines.

// EncodeSessions writes sessions as JSONL.
func EncodeSessions(w io.Writer, sessions []Session) error {
	enc := json.NewEncoder(w)
	for _, s := range sessions {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("could not encode session %q: %w", s.ID, err)
		}
	}
	return nil
}

// DecodeSessions reads a JSONL stream of sessions.
func DecodeSessions(r io.Reader) ([]Session, error) {
	var sessions []Session
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var s Session
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("format error in sessions line %q: %w", string(line), err)
		}
		sessions = append(sessions, s)
	}
	return sessions, scanner.Err()
}

// EncodeSales writes sales as JSONL.
func EncodeSales(w io.Writer, sales []Sale) error {
	enc := json.NewEncoder(w)
	for _, s := range sales {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("could not encode sale for session %q: %w", s.SessionID, err)
		}
	}
	return nil
}

// DecodeSales reads a JSONL stream of sales.
func DecodeSales(r io.Reader) ([]Sale, error) {
	var sales []Sale
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s Sale
		if err := json.Unmarshal(line, &s); err != nil {
			return nil, fmt.Errorf("format error in sales line %q: %w", string(line), err)
		}
		sales = append(sales, s)
	}
	return sales, scanner.Err()
}
