package expense

import (
	"context"
	"sort"
)

type StubRepository struct {
	nextId int
	data   map[int]Entry
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]Entry{}}
}

func (s *StubRepository) Store(ctx context.Context, entry Entry) (int, error) {
	s.nextId++
	entry.ID = s.nextId
	s.data[entry.ID] = entry
	return entry.ID, nil
}

func (s *StubRepository) ListForItem(ctx context.Context, itemId int) ([]Entry, error) {
	var entries []Entry
	for _, entry := range s.data {
		if entry.ItemId == itemId {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) Reset() {
	s.data = map[int]Entry{}
	s.nextId = 0
}
