package repository

import "FinTab/internal/domain/models"

// TableStore keeps every loaded table in declaration order plus a name
// lookup. When two tables share a name the lookup returns the later one;
// both stay in the ordered listing.
type TableStore struct {
	tables []*models.Table
	byName map[string]*models.Table
}

func NewTableStore() *TableStore {
	return &TableStore{byName: make(map[string]*models.Table)}
}

func (s *TableStore) Add(t *models.Table) {
	s.tables = append(s.tables, t)
	s.byName[t.Name()] = t
}

func (s *TableStore) Table(name string) (*models.Table, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// TableNames lists table names in declaration order, duplicates included.
func (s *TableStore) TableNames() []string {
	names := make([]string, len(s.tables))
	for i, t := range s.tables {
		names[i] = t.Name()
	}
	return names
}

// Tables lists the stored tables in declaration order.
func (s *TableStore) Tables() []*models.Table {
	return s.tables
}

func (s *TableStore) Len() int { return len(s.tables) }
