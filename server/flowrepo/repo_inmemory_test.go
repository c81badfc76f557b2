package flowrepo_test

import (
	"testing"
	"time"

	"github.com/complyatlas/console/server/flowrepo"
	"github.com/stretchr/testify/require"
)

func TestUpsertGetDelete(t *testing.T) {
	repo := flowrepo.NewInMemoryRepo()

	created := time.Now()
	err := repo.Upsert("state-1", &flowrepo.FlowState{
		Flow:      flowrepo.FlowGitHubConnection,
		CreatedAt: created,
	})
	require.NoError(t, err)

	state, err := repo.Get("state-1")
	require.NoError(t, err)
	require.Equal(t, flowrepo.FlowGitHubConnection, state.Flow)
	require.Equal(t, created, state.CreatedAt)

	require.NoError(t, repo.Delete("state-1"))
	_, err = repo.Get("state-1")
	require.Error(t, err)
}

func TestUpsert_Validation(t *testing.T) {
	repo := flowrepo.NewInMemoryRepo()

	require.Error(t, repo.Upsert("", &flowrepo.FlowState{Flow: flowrepo.FlowPrimary}))
	require.Error(t, repo.Upsert("state-1", nil))
}

func TestGet_ReturnsCopy(t *testing.T) {
	repo := flowrepo.NewInMemoryRepo()

	require.NoError(t, repo.Upsert("state-1", &flowrepo.FlowState{Flow: flowrepo.FlowPrimary}))

	state, err := repo.Get("state-1")
	require.NoError(t, err)
	state.Flow = "mutated"

	again, err := repo.Get("state-1")
	require.NoError(t, err)
	require.Equal(t, flowrepo.FlowPrimary, again.Flow)
}

func TestConsumeCode_OneShot(t *testing.T) {
	repo := flowrepo.NewInMemoryRepo()

	require.True(t, repo.ConsumeCode("code-1"), "first delivery wins")
	require.False(t, repo.ConsumeCode("code-1"), "second delivery is a no-op")
	require.False(t, repo.ConsumeCode("code-1"))

	require.True(t, repo.ConsumeCode("code-2"), "distinct codes are independent")
}

func TestConsumeCode_EmptyCode(t *testing.T) {
	repo := flowrepo.NewInMemoryRepo()

	require.False(t, repo.ConsumeCode(""))
}
