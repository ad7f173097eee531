// Package session holds the state shared by every request served by one process:
// the most recent conversion table and the active theme.
package session

import (
	"sync"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
)

// Session is safe for concurrent use
type Session struct {
	mu    sync.RWMutex
	table *entity.ConversionTable
	dark  bool
}

// New creates a session with no table, starting in the given theme mode
func New(dark bool) *Session {
	return &Session{dark: dark}
}

// SetTable replaces the current table. Earlier rows are discarded.
func (s *Session) SetTable(table *entity.ConversionTable) {
	var stored *entity.ConversionTable
	if table != nil {
		stored = copyTable(table)
	}

	s.mu.Lock()
	s.table = stored
	s.mu.Unlock()
}

// Table returns a copy of the current table, if one has been built
func (s *Session) Table() (*entity.ConversionTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.table == nil {
		return nil, false
	}
	return copyTable(s.table), true
}

// Theme returns the active palette
func (s *Session) Theme() entity.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.ThemeFor(s.dark)
}

// ToggleTheme flips between light and dark and returns the new palette
func (s *Session) ToggleTheme() entity.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = !s.dark
	return entity.ThemeFor(s.dark)
}

func copyTable(t *entity.ConversionTable) *entity.ConversionTable {
	c := *t
	c.Rows = append([]entity.TableRow(nil), t.Rows...)
	return &c
}
