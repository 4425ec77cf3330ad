package repositoryImp

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlink/pkg/apperr"
	"farmlink/pkg/testutil"
)

func TestFarmersOfAgentScoping(t *testing.T) {
	db := testutil.DB(t)
	repo := New(db)

	a1 := testutil.Agent(t, db, "AgentOne")
	a2 := testutil.Agent(t, db, "AgentTwo")
	f1 := testutil.Farmer(t, db, "Somchai", a1)
	testutil.Farmer(t, db, "Somsak", a2)

	got, err := repo.FarmersOfAgent(a1.ID, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f1.ID, got[0].ID)
}

func TestFarmersOfAgentSearch(t *testing.T) {
	db := testutil.DB(t)
	repo := New(db)

	a := testutil.Agent(t, db, "AgentOne")
	testutil.Farmer(t, db, "Somchai", a)
	testutil.Farmer(t, db, "Pranee", a)

	got, err := repo.FarmersOfAgent(a.ID, "SOMCH")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Somchai", got[0].Name)

	// matches on email too
	got, err = repo.FarmersOfAgent(a.ID, "pranee@")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pranee", got[0].Name)
}

func TestCoFarmersAndAgent(t *testing.T) {
	db := testutil.DB(t)
	repo := New(db)

	a1 := testutil.Agent(t, db, "AgentOne")
	a2 := testutil.Agent(t, db, "AgentTwo")
	caller := testutil.Farmer(t, db, "Somchai", a1)
	peer := testutil.Farmer(t, db, "Pranee", a1)
	testutil.Farmer(t, db, "Somsak", a2)

	got, err := repo.CoFarmersAndAgent(caller, "")
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool, len(got))
	for _, u := range got {
		ids[u.ID] = true
	}
	assert.True(t, ids[a1.ID], "assigned agent must be included")
	assert.True(t, ids[peer.ID], "co-farmer of same agent must be included")
	assert.False(t, ids[caller.ID], "caller must never see itself")
	assert.Len(t, got, 2)
}

func TestFarmsOfFarmerEmptyIsNotAnError(t *testing.T) {
	db := testutil.DB(t)
	repo := New(db)

	farms, err := repo.FarmsOfFarmer(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, farms)
}

func TestFarmByIDAndIsOwnedBy(t *testing.T) {
	db := testutil.DB(t)
	repo := New(db)

	a := testutil.Agent(t, db, "AgentOne")
	farmer := testutil.Farmer(t, db, "Somchai", a)
	other := testutil.Farmer(t, db, "Pranee", a)
	farm := testutil.Farm(t, db, farmer, 2.5)

	got, err := repo.FarmByID(farm.FarmID)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.AreaRai)

	_, err = repo.FarmByID(uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	owned, err := repo.IsOwnedBy(farm.FarmID, farmer.ID)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = repo.IsOwnedBy(farm.FarmID, other.ID)
	require.NoError(t, err)
	assert.False(t, owned)
}
