package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caterops/staffdesk/internal/models"
)

func TestStaffRepositoryCRUD(t *testing.T) {
	p := NewProvider()
	repo := p.Staff()
	ctx := context.Background()

	boy := models.StaffMember{
		BoyID:    "boy-x",
		Name:     "Test Boy",
		Category: models.CategoryB,
		Wage:     decimal.NewFromInt(800),
		Status:   models.StaffActive,
	}
	require.NoError(t, repo.SaveStaff(ctx, boy))

	found, err := repo.FindStaffByID(ctx, "boy-x")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Test Boy", found.Name)

	boy.Name = "Renamed"
	require.NoError(t, repo.UpdateStaff(ctx, boy))
	found, err = repo.FindStaffByID(ctx, "boy-x")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)

	require.NoError(t, repo.DeleteStaff(ctx, "boy-x"))
	found, err = repo.FindStaffByID(ctx, "boy-x")
	require.NoError(t, err)
	assert.Nil(t, found, "missing records are nil, nil")
}

func TestFindStaffPreservesInsertionOrder(t *testing.T) {
	p := NewProvider()
	repo := p.Staff()
	ctx := context.Background()

	for _, id := range []string{"c-boy", "a-boy", "b-boy"} {
		require.NoError(t, repo.SaveStaff(ctx, models.StaffMember{BoyID: id, Name: id}))
	}

	boys, err := repo.FindStaff(ctx)
	require.NoError(t, err)
	require.Len(t, boys, 3)
	assert.Equal(t, "c-boy", boys[0].BoyID)
	assert.Equal(t, "a-boy", boys[1].BoyID)
	assert.Equal(t, "b-boy", boys[2].BoyID)
}

func TestUserRepositoryEmailLookup(t *testing.T) {
	p := NewSeededProvider()
	repo := p.User()
	ctx := context.Background()

	user, err := repo.FindUserByEmail(ctx, "admin@staffdesk.local")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)

	missing, err := repo.FindUserByEmail(ctx, "nobody@staffdesk.local")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryDeleteHidesUser(t *testing.T) {
	p := NewSeededProvider()
	repo := p.User()
	ctx := context.Background()

	require.NoError(t, repo.DeleteUser(ctx, "user-admin"))

	user, err := repo.FindUserByEmail(ctx, "admin@staffdesk.local")
	require.NoError(t, err)
	assert.Nil(t, user, "deleted users must not resolve by email")

	byID, err := repo.FindUserByID(ctx, "user-admin")
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestEventRepositorySaveIsUpsert(t *testing.T) {
	p := NewProvider()
	repo := p.Event()
	ctx := context.Background()

	event := models.Event{EventID: "e-x", Title: "First", Date: "2026-01-01", Status: "Upcoming"}
	require.NoError(t, repo.SaveEvent(ctx, event))

	event.Title = "Second"
	event.LastUpdatedAt = time.Now()
	require.NoError(t, repo.SaveEvent(ctx, event))

	events, err := repo.FindEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Second", events[0].Title)
}
