package communitystore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a PostgresStore against db, ensuring its schema
// exists first.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	store := &PostgresStore{db: db}
	if err := store.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cnm_jobs (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		merges_done INTEGER NOT NULL DEFAULT 0,
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS cnm_communities (
		job_id TEXT NOT NULL REFERENCES cnm_jobs(id) ON DELETE CASCADE,
		ordinal INTEGER NOT NULL,
		vertex_ids INTEGER[] NOT NULL,
		degree INTEGER NOT NULL,
		PRIMARY KEY (job_id, ordinal)
	);

	CREATE INDEX IF NOT EXISTS idx_cnm_communities_job ON cnm_communities(job_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateJob inserts a new job row in JobPending state.
func (s *PostgresStore) CreateJob(ctx context.Context) (*JobRecord, error) {
	now := time.Now()
	job := &JobRecord{
		ID:        uuid.New(),
		Status:    JobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cnm_jobs (id, status, merges_done, error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, job.ID.String(), string(job.Status), 0, "", job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}
	return job, nil
}

// UpdateJobStatus transitions a job's status and sets its error text to
// errMsg, whatever the status.
func (s *PostgresStore) UpdateJobStatus(ctx context.Context, id uuid.UUID, status JobStatus, errMsg string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE cnm_jobs SET status = $1, error = $2, updated_at = $3 WHERE id = $4
	`, string(status), errMsg, time.Now(), id.String())
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return nil
}

// GetJob fetches a job by id.
func (s *PostgresStore) GetJob(ctx context.Context, id uuid.UUID) (*JobRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, status, merges_done, error, created_at, updated_at FROM cnm_jobs WHERE id = $1
	`, id.String())

	var job JobRecord
	var idStr, status string
	if err := row.Scan(&idStr, &status, &job.MergesDone, &job.Error, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	parsed, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job id: %w", err)
	}
	job.ID = parsed
	job.Status = JobStatus(status)
	return &job, nil
}

// SaveCommunities replaces a job's community rows and records how many
// merges the run performed, inside a single transaction.
func (s *PostgresStore) SaveCommunities(ctx context.Context, jobID uuid.UUID, mergesDone int, rows []CommunityRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cnm_communities WHERE job_id = $1`, jobID.String()); err != nil {
		return fmt.Errorf("failed to clear previous communities: %w", err)
	}

	for _, row := range rows {
		vertexIDs := make([]int64, len(row.VertexIDs))
		for i, v := range row.VertexIDs {
			vertexIDs[i] = int64(v)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cnm_communities (job_id, ordinal, vertex_ids, degree)
			VALUES ($1, $2, $3, $4)
		`, jobID.String(), row.Ordinal, pq.Array(vertexIDs), row.Degree)
		if err != nil {
			return fmt.Errorf("failed to insert community %d: %w", row.Ordinal, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE cnm_jobs SET merges_done = $1, updated_at = $2 WHERE id = $3
	`, mergesDone, time.Now(), jobID.String()); err != nil {
		return fmt.Errorf("failed to update merges_done: %w", err)
	}

	return tx.Commit()
}

// ListCommunities returns every community row for jobID, ordered ascending
// by ordinal.
func (s *PostgresStore) ListCommunities(ctx context.Context, jobID uuid.UUID) ([]CommunityRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ordinal, vertex_ids, degree FROM cnm_communities WHERE job_id = $1 ORDER BY ordinal
	`, jobID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query communities: %w", err)
	}
	defer rows.Close()

	var out []CommunityRow
	for rows.Next() {
		var ordinal, degree int
		var vertexIDs pq.Int64Array
		if err := rows.Scan(&ordinal, &vertexIDs, &degree); err != nil {
			return nil, fmt.Errorf("failed to scan community row: %w", err)
		}
		ids := make([]int, len(vertexIDs))
		for i, v := range vertexIDs {
			ids[i] = int(v)
		}
		out = append(out, CommunityRow{JobID: jobID, Ordinal: ordinal, VertexIDs: ids, Degree: degree})
	}
	return out, rows.Err()
}
