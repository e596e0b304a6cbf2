// Package communitystore persists the partitions pkg/cnm produces, keyed by
// a job id, so an HTTP client can submit a graph and poll for the result
// later instead of holding a connection open for the whole computation.
package communitystore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommunityRow is one persisted community: its position in a job's result
// set, the original vertex ids it contains, and its cached degree.
type CommunityRow struct {
	JobID     uuid.UUID `json:"jobId"`
	Ordinal   int       `json:"ordinal"` // position in Result.Communities, for stable ordering on read
	VertexIDs []int     `json:"vertexIds"`
	Degree    int       `json:"degree"`
}

// JobRecord tracks a submitted computation's lifecycle.
type JobRecord struct {
	ID         uuid.UUID `json:"id"`
	Status     JobStatus `json:"status"`
	MergesDone int       `json:"mergesDone"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// JobStatus enumerates a JobRecord's lifecycle states.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Store is the persistence boundary for jobs and their community results.
type Store interface {
	CreateJob(ctx context.Context) (*JobRecord, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status JobStatus, errMsg string) error
	GetJob(ctx context.Context, id uuid.UUID) (*JobRecord, error)
	SaveCommunities(ctx context.Context, jobID uuid.UUID, mergesDone int, rows []CommunityRow) error
	ListCommunities(ctx context.Context, jobID uuid.UUID) ([]CommunityRow, error)
}
