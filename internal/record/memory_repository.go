package record

import (
	"context"
	"sync"
)

// MemoryRepository keeps both sequences in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	checkIns []CheckIn
	journals []Journal
}

// NewMemoryRepository creates a MemoryRepository seeded with copies of the given records.
func NewMemoryRepository(checkIns []CheckIn, journals []Journal) *MemoryRepository {
	return &MemoryRepository{
		checkIns: append([]CheckIn(nil), checkIns...),
		journals: append([]Journal(nil), journals...),
	}
}

// LoadCheckIns returns a copy of the stored check-ins.
func (r *MemoryRepository) LoadCheckIns(ctx context.Context) ([]CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]CheckIn, 0, len(r.checkIns)), r.checkIns...), nil
}

// LoadJournals returns a copy of the stored journals.
func (r *MemoryRepository) LoadJournals(ctx context.Context) ([]Journal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]Journal, 0, len(r.journals)), r.journals...), nil
}

// AppendCheckIn appends one check-in.
func (r *MemoryRepository) AppendCheckIn(ctx context.Context, c CheckIn) error {
	return r.BatchAppendCheckIns(ctx, []CheckIn{c})
}

// AppendJournal appends one journal.
func (r *MemoryRepository) AppendJournal(ctx context.Context, j Journal) error {
	return r.BatchAppendJournals(ctx, []Journal{j})
}

// BatchAppendCheckIns appends check-ins in the given order.
func (r *MemoryRepository) BatchAppendCheckIns(ctx context.Context, checkIns []CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkIns = append(r.checkIns, checkIns...)
	return nil
}

// BatchAppendJournals appends journals in the given order.
func (r *MemoryRepository) BatchAppendJournals(ctx context.Context, journals []Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.journals = append(r.journals, journals...)
	return nil
}
