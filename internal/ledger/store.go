// Package ledger owns the in-memory expense sequence and its flat-file
// persistence. The FileStore is the only writer of the backing file; every
// add rewrites the whole file, so a concurrent external edit is never
// merged, the last full write wins.
package ledger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tally/internal/codec"
	"tally/internal/core"
)

type FileStore struct {
	path  string
	items []core.Expense
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the backing file into memory and returns the record count.
// A missing file is not an error: the store starts empty with no prior
// data. Blank and whitespace-only lines are skipped. Any line that fails
// to decode aborts the whole load and leaves the store empty; corrupt
// data is never partially trusted.
func (s *FileStore) Load() (int, error) {
	s.items = nil

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("open ledger %s: %w", s.path, err)
	}
	defer f.Close()

	var items []core.Expense
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := codec.Decode(line)
		if err != nil {
			return 0, fmt.Errorf("ledger %s line %d: %w", s.path, lineNo, err)
		}
		items = append(items, e)
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read ledger %s: %w", s.path, err)
	}

	s.items = items
	return len(items), nil
}

// Add validates the expense, appends it in insertion order and persists
// the whole sequence. On a persist failure the record stays in memory so
// a later successful save still includes it; the error is returned for
// the caller to report.
func (s *FileStore) Add(_ context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.items = append(s.items, e)
	if err := s.Save(); err != nil {
		return fmt.Errorf("persist expense: %w", err)
	}
	return nil
}

// Save encodes every record one per line and rewrites the backing file.
// The write goes through a temp file in the same directory followed by a
// rename, so a failed write cannot truncate the previous ledger.
func (s *FileStore) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create ledger directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, e := range s.items {
		if _, err := w.WriteString(codec.Encode(e) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("write ledger: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace ledger %s: %w", s.path, err)
	}
	return nil
}

// All returns a snapshot of the records in insertion order, which is the
// order of entry, not date order.
func (s *FileStore) All(_ context.Context) ([]core.Expense, error) {
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *FileStore) Close() error {
	return nil
}
