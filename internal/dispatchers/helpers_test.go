package dispatchers

import (
	"errors"
	"strings"
	"sync"

	"github.com/footprint-tools/repl/internal/domain"
)

// screen is a console surface that marks line clears as "<clear>".
type screen struct {
	mu sync.Mutex
	sb strings.Builder
}

func (s *screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sb.Write(p)
}

func (s *screen) ClearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sb.WriteString("<clear>")
}

func (s *screen) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sb.String()
}

// lines collects Println/Printf output of a command under test.
type lines struct {
	mu  sync.Mutex
	out []string
}

func (l *lines) Println(a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.(string)
	}
	l.out = append(l.out, strings.Join(parts, " "))
}

func (l *lines) Printf(format string, a ...any) {
	l.Println(format)
}

func (l *lines) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.out...)
}

type memoryHistory struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	fail    bool
}

func (m *memoryHistory) Record(e domain.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("disk full")
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryHistory) Recent(limit int) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return append([]domain.HistoryEntry(nil), m.entries[len(m.entries)-limit:]...), nil
}

func (m *memoryHistory) Clear() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.entries))
	m.entries = nil
	return n, nil
}

func (m *memoryHistory) Close() error { return nil }
