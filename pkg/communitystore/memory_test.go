package communitystore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucleus/cnm-core/pkg/communitystore"
)

func TestMemoryStoreJobLifecycle(t *testing.T) {
	ctx := context.Background()
	store := communitystore.NewMemoryStore()

	job, err := store.CreateJob(ctx)
	require.NoError(t, err)
	require.Equal(t, communitystore.JobPending, job.Status)

	require.NoError(t, store.UpdateJobStatus(ctx, job.ID, communitystore.JobRunning, ""))
	got, err := store.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, communitystore.JobRunning, got.Status)

	rows := []communitystore.CommunityRow{
		{Ordinal: 0, VertexIDs: []int{1, 2}, Degree: 3},
		{Ordinal: 1, VertexIDs: []int{3}, Degree: 0},
	}
	require.NoError(t, store.SaveCommunities(ctx, job.ID, 2, rows))
	require.NoError(t, store.UpdateJobStatus(ctx, job.ID, communitystore.JobSucceeded, ""))

	got, err = store.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, communitystore.JobSucceeded, got.Status)
	require.Equal(t, 2, got.MergesDone)

	listed, err := store.ListCommunities(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, rows, listed)
}

func TestMemoryStoreGetUnknownJobErrors(t *testing.T) {
	ctx := context.Background()
	store := communitystore.NewMemoryStore()
	_, err := store.GetJob(ctx, [16]byte{})
	require.Error(t, err)
}

func TestMemoryStoreListCommunitiesUnknownJobReturnsNil(t *testing.T) {
	ctx := context.Background()
	store := communitystore.NewMemoryStore()
	rows, err := store.ListCommunities(ctx, [16]byte{})
	require.NoError(t, err)
	require.Nil(t, rows)
}
