package db

import (
	"context"
	"sync"

	"go-emotive/types"
)

// MemoryStore keeps the last size analyses in process. The oldest entry is
// evicted once the store is full.
type MemoryStore struct {
	mu      sync.RWMutex
	size    int
	entries []types.AnalysisResult
}

func NewMemoryStore(size int) *MemoryStore {
	if size <= 0 {
		size = 1
	}
	return &MemoryStore{size: size, entries: make([]types.AnalysisResult, 0, size)}
}

func (m *MemoryStore) Save(ctx context.Context, result types.AnalysisResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) >= m.size {
		copy(m.entries, m.entries[1:])
		m.entries = m.entries[:len(m.entries)-1]
	}
	m.entries = append(m.entries, result)
	return nil
}

// Recent returns up to limit entries, newest first.
func (m *MemoryStore) Recent(ctx context.Context, limit int) ([]types.AnalysisResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]types.AnalysisResult, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}
