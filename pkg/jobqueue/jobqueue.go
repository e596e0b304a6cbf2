// Package jobqueue runs cnm.TryCompute calls asynchronously so an HTTP
// client can submit a large graph, get a job id back immediately, and poll
// for the result instead of holding a request open for the whole
// computation.
package jobqueue

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nucleus/cnm-core/pkg/cnm"
	"github.com/nucleus/cnm-core/pkg/communitystore"
)

// Queue dispatches submitted graphs onto a bounded pool of worker
// goroutines, coordinated with an errgroup so an early Close waits for
// in-flight work to settle instead of abandoning it.
type Queue struct {
	store          communitystore.Store
	workers        int
	reportInterval int

	mu     sync.Mutex
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

// New returns a Queue that persists results to store and runs at most
// workers computations concurrently. reportInterval is forwarded to every
// cnm.TryCompute call as cnm.Options.ReportInterval; zero or negative means
// let the engine use its own default.
func New(store communitystore.Store, workers int, reportInterval int) *Queue {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	return &Queue{
		store:          store,
		workers:        workers,
		reportInterval: reportInterval,
		group:          group,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Submit creates a job record, then schedules graph's computation to run
// asynchronously. It returns the job id immediately; the caller polls
// communitystore.Store for the outcome.
func (q *Queue) Submit(ctx context.Context, graph cnm.Graph) (uuid.UUID, error) {
	job, err := q.store.CreateJob(ctx)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("jobqueue: create job: %w", err)
	}

	q.mu.Lock()
	q.group.Go(func() error {
		return q.run(job.ID, graph)
	})
	q.mu.Unlock()

	return job.ID, nil
}

func (q *Queue) run(jobID uuid.UUID, graph cnm.Graph) error {
	if err := q.store.UpdateJobStatus(q.ctx, jobID, communitystore.JobRunning, ""); err != nil {
		log.Printf("jobqueue: job %s: failed to mark running: %v", jobID, err)
	}

	result, err := cnm.TryCompute(graph, cnm.Options{
		Cancel: func() bool {
			return q.ctx.Err() != nil
		},
		ReportInterval: q.reportInterval,
	})
	if err != nil {
		log.Printf("jobqueue: job %s: computation failed: %v", jobID, err)
		if uerr := q.store.UpdateJobStatus(q.ctx, jobID, communitystore.JobFailed, err.Error()); uerr != nil {
			log.Printf("jobqueue: job %s: failed to record failure: %v", jobID, uerr)
		}
		return nil
	}

	rows := make([]communitystore.CommunityRow, len(result.Communities))
	for i, c := range result.Communities {
		ids := make([]int, len(c.Vertices()))
		for j, v := range c.Vertices() {
			ids[j] = int(v)
		}
		rows[i] = communitystore.CommunityRow{JobID: jobID, Ordinal: i, VertexIDs: ids, Degree: c.Degree()}
	}

	if err := q.store.SaveCommunities(q.ctx, jobID, result.MergesDone, rows); err != nil {
		log.Printf("jobqueue: job %s: failed to save result: %v", jobID, err)
		return nil
	}
	if err := q.store.UpdateJobStatus(q.ctx, jobID, communitystore.JobSucceeded, ""); err != nil {
		log.Printf("jobqueue: job %s: failed to mark succeeded: %v", jobID, err)
	}
	log.Printf("jobqueue: job %s: completed, %d merges, %d communities", jobID, result.MergesDone, len(result.Communities))
	return nil
}

// Close cancels any in-flight computations and waits for their worker
// goroutines to return.
func (q *Queue) Close() error {
	q.cancel()
	return q.group.Wait()
}
