package communitystore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store, useful for tests and for running
// cnm-server without a Postgres instance on hand.
type MemoryStore struct {
	mu          sync.Mutex
	jobs        map[uuid.UUID]*JobRecord
	communities map[uuid.UUID][]CommunityRow
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:        make(map[uuid.UUID]*JobRecord),
		communities: make(map[uuid.UUID][]CommunityRow),
	}
}

func (m *MemoryStore) CreateJob(_ context.Context) (*JobRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	job := &JobRecord{ID: uuid.New(), Status: JobPending, CreatedAt: now, UpdatedAt: now}
	m.jobs[job.ID] = job

	cp := *job
	return &cp, nil
}

func (m *MemoryStore) UpdateJobStatus(_ context.Context, id uuid.UUID, status JobStatus, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return fmt.Errorf("communitystore: job %s not found", id)
	}
	job.Status = status
	job.Error = errMsg
	job.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) GetJob(_ context.Context, id uuid.UUID) (*JobRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("communitystore: job %s not found", id)
	}
	cp := *job
	return &cp, nil
}

func (m *MemoryStore) SaveCommunities(_ context.Context, jobID uuid.UUID, mergesDone int, rows []CommunityRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return fmt.Errorf("communitystore: job %s not found", jobID)
	}
	job.MergesDone = mergesDone
	job.UpdatedAt = time.Now()

	cp := make([]CommunityRow, len(rows))
	copy(cp, rows)
	m.communities[jobID] = cp
	return nil
}

func (m *MemoryStore) ListCommunities(_ context.Context, jobID uuid.UUID) ([]CommunityRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.communities[jobID]
	if !ok {
		return nil, nil
	}
	cp := make([]CommunityRow, len(rows))
	copy(cp, rows)
	return cp, nil
}

var _ Store = (*MemoryStore)(nil)
var _ Store = (*PostgresStore)(nil)
