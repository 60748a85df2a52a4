package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caterops/staffdesk/pkg/apiclient"
	"github.com/caterops/staffdesk/pkg/credstore"
)

func newTestStore(t *testing.T) (*Store, credstore.Store) {
	t.Helper()
	creds := credstore.NewMemoryStore()
	return New(creds), creds
}

func TestAddBoyAssignsUniqueID(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed()
	before := len(s.Snapshot().Boys)

	added := s.AddBoy(apiclient.Boy{Name: "New Boy", Category: "B"})
	require.NotEmpty(t, added.ID)

	snapshot := s.Snapshot()
	assert.Len(t, snapshot.Boys, before+1)

	seen := make(map[string]bool)
	for _, boy := range snapshot.Boys {
		assert.False(t, seen[boy.ID], "duplicate id %s", boy.ID)
		seen[boy.ID] = true
	}
}

func TestUpdateBoyMissingIDLeavesStateUnchanged(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed()
	before := s.Snapshot()

	ok := s.UpdateBoy(apiclient.Boy{ID: "nope", Name: "Ghost"})
	assert.False(t, ok)
	assert.Equal(t, before.Boys, s.Snapshot().Boys)
}

func TestDeleteBoyReportsFound(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed()

	assert.True(t, s.DeleteBoy("b1"))
	assert.False(t, s.DeleteBoy("b1"))
}

func TestUpdateBookingStatus(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed()

	assert.True(t, s.UpdateBookingStatus("bk2", "Approved"))
	for _, b := range s.Snapshot().Bookings {
		if b.ID == "bk2" {
			assert.Equal(t, "Approved", b.Status)
		}
	}

	assert.False(t, s.UpdateBookingStatus("missing", "Approved"))
}

func TestToggleThemeIsInvolution(t *testing.T) {
	s, _ := newTestStore(t)
	original := s.Snapshot().Theme

	first := s.ToggleTheme()
	assert.NotEqual(t, original, first)
	second := s.ToggleTheme()
	assert.Equal(t, original, second)
}

func TestLoginSuccessPersistsCredentials(t *testing.T) {
	s, creds := newTestStore(t)

	s.LoginStart()
	assert.Equal(t, AuthPending, s.Snapshot().Auth.Status)

	user := apiclient.User{ID: "u1", Name: "Admin", Email: "admin@staffdesk.local"}
	s.LoginSuccess("t1", user)

	auth := s.Snapshot().Auth
	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "t1", auth.Token)
	require.NotNil(t, auth.User)
	assert.Equal(t, "u1", auth.User.ID)

	token, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, "t1", token)

	raw, ok := creds.User()
	require.True(t, ok)
	var stored apiclient.User
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "admin@staffdesk.local", stored.Email)
}

func TestLoginFailureRecordsMessage(t *testing.T) {
	s, creds := newTestStore(t)

	s.LoginFailure("bad creds")

	auth := s.Snapshot().Auth
	assert.False(t, auth.IsAuthenticated())
	assert.Equal(t, "bad creds", auth.Error)

	_, ok := creds.Token()
	assert.False(t, ok)
}

func TestLogoutClearsSessionAndStorage(t *testing.T) {
	s, creds := newTestStore(t)
	s.LoginSuccess("t1", apiclient.User{ID: "u1"})

	s.Logout()

	auth := s.Snapshot().Auth
	assert.False(t, auth.IsAuthenticated())
	assert.Empty(t, auth.Token)
	assert.Nil(t, auth.User)

	_, ok := creds.Token()
	assert.False(t, ok)
	_, ok = creds.User()
	assert.False(t, ok)
}

func TestNewHydratesFromCredentialStore(t *testing.T) {
	creds := credstore.NewMemoryStore()
	userJSON, _ := json.Marshal(apiclient.User{ID: "u1", Email: "admin@staffdesk.local"})
	require.NoError(t, creds.Save("t1", userJSON))

	s := New(creds)
	auth := s.Snapshot().Auth
	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "t1", auth.Token)
	require.NotNil(t, auth.User)
	assert.Equal(t, "admin@staffdesk.local", auth.User.Email)
}

func TestSubscribersNotifiedAfterTransition(t *testing.T) {
	s, _ := newTestStore(t)

	var got []State
	unsubscribe := s.Subscribe(func(state State) {
		got = append(got, state)
	})

	s.ToggleTheme()
	require.Len(t, got, 1)
	assert.Equal(t, ThemeDark, got[0].Theme)

	unsubscribe()
	s.ToggleTheme()
	assert.Len(t, got, 1)
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed()

	snapshot := s.Snapshot()
	snapshot.Boys[0].Name = "mutated"

	assert.NotEqual(t, "mutated", s.Snapshot().Boys[0].Name)
}
