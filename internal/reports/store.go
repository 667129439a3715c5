package reports

import "sync"

// Store remembers the last generated dataset per admin session so the
// export endpoints can serve it. Exporting with no prior report yields an
// empty artifact, not an error.
type Store struct {
	mu   sync.RWMutex
	last map[string]generated
}

type generated struct {
	reportType string
	data       []ChartData
}

func NewStore() *Store {
	return &Store{last: make(map[string]generated)}
}

// Put records the dataset.
func (s *Store) Put(userID, reportType string, data []ChartData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[userID] = generated{reportType: reportType, data: data}
}

// Get returns the last dataset generated by this user, or an empty one.
func (s *Store) Get(userID string) (string, []ChartData) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.last[userID]
	if !ok {
		return "Report", []ChartData{}
	}
	return g.reportType, g.data
}
