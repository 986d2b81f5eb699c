package repository

import (
	"sync"

	"finance-calculator/domain"
)

// MemoryCalculationRepository is an in-memory implementation of CalculationRepository.
type MemoryCalculationRepository struct {
	mu    sync.Mutex
	data  []domain.CalculationRecord
	limit int
}

// NewMemoryCalculationRepository keeps at most limit records, dropping the
// oldest first. A limit of zero or less keeps everything.
func NewMemoryCalculationRepository(limit int) *MemoryCalculationRepository {
	return &MemoryCalculationRepository{
		data:  []domain.CalculationRecord{},
		limit: limit,
	}
}

// Save stores the record in memory.
func (r *MemoryCalculationRepository) Save(record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if r.limit > 0 && len(r.data) > r.limit {
		r.data = r.data[len(r.data)-r.limit:]
	}
	return nil
}

// List returns a copy of the stored records, oldest first.
func (r *MemoryCalculationRepository) List() ([]domain.CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.CalculationRecord, len(r.data))
	copy(out, r.data)
	return out, nil
}
