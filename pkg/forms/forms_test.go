package forms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caterops/staffdesk/pkg/apiclient"
	"github.com/caterops/staffdesk/pkg/notify"
)

func TestParseSlotCount(t *testing.T) {
	assert.Equal(t, 5, ParseSlotCount("5"))
	assert.Equal(t, 12, ParseSlotCount(" 12 "))
	assert.Equal(t, 0, ParseSlotCount("abc"))
	assert.Equal(t, 0, ParseSlotCount(""))
	assert.Equal(t, 0, ParseSlotCount("-3"))
	assert.Equal(t, 0, ParseSlotCount("3.5"))
}

func TestEventFormBeginCreateInstallsSlotTemplate(t *testing.T) {
	f := NewEventForm(nil, notify.New(), nil)

	f.BeginCreate()

	assert.True(t, f.Open())
	assert.Empty(t, f.EditingID())
	require.Len(t, f.Values.Slots, 3)
	assert.Equal(t, "A", f.Values.Slots[0].Name)
	assert.Equal(t, "B", f.Values.Slots[1].Name)
	assert.Equal(t, "C", f.Values.Slots[2].Name)
	for _, slot := range f.Values.Slots {
		assert.Zero(t, slot.Total)
		assert.Zero(t, slot.Booked)
	}
}

func TestEventFormBeginEditNormalizesDateAndDefaultsSlots(t *testing.T) {
	f := NewEventForm(nil, notify.New(), nil)

	f.BeginEdit(apiclient.Event{
		ID:    "e1",
		Title: "Gala",
		Date:  "2025-11-15T18:00:00Z",
	})

	assert.Equal(t, "e1", f.EditingID())
	assert.Equal(t, "2025-11-15", f.Values.Date)
	require.Len(t, f.Values.Slots, 3)

	f.BeginEdit(apiclient.Event{
		ID:    "e2",
		Date:  "2025-10-02",
		Slots: []apiclient.EventSlot{{Name: "A", Total: 4, Booked: 1}},
	})
	require.Len(t, f.Values.Slots, 1)
	assert.Equal(t, 4, f.Values.Slots[0].Total)
}

func TestEventFormSubmitCreateVsUpdate(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Write([]byte(`{"id":"e1","title":"Gala"}`))
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	refreshed := 0
	f := NewEventForm(client, notify.New(), func() { refreshed++ })

	f.BeginCreate()
	f.Values.Title = "Gala"
	f.Values.Date = "2025-11-15"
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/api/events/create", path)
	assert.Equal(t, 1, refreshed)
	assert.False(t, f.Open())

	f.BeginEdit(apiclient.Event{ID: "e1", Title: "Gala", Date: "2025-11-15"})
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/events/update/e1", path)
	assert.Equal(t, 2, refreshed)
}

func TestEventFormSubmitFailureKeepsFormOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"status \"Bogus\" is not allowed"}`))
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	reporter := notify.New(notify.WithAutoDismiss(time.Hour))
	f := NewEventForm(client, reporter, nil)

	f.BeginCreate()
	f.Values.Title = "Gala"
	f.Values.Date = "2025-11-15"
	f.Values.Status = "Bogus"

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, f.Open(), "form must stay open so the draft survives")

	current := reporter.Current()
	assert.True(t, current.Visible)
	assert.Equal(t, notify.KindError, current.Kind)
	assert.Equal(t, `status "Bogus" is not allowed`, current.Message)
}

func TestEventFormSubmitValidatesRequiredFields(t *testing.T) {
	reporter := notify.New(notify.WithAutoDismiss(time.Hour))
	f := NewEventForm(nil, reporter, nil)

	f.BeginCreate()
	f.Values.Title = "" // missing required field

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, f.Open())
	assert.Equal(t, "title is required", reporter.Current().Message)
}

func TestEventFormCancelDiscardsDraft(t *testing.T) {
	f := NewEventForm(nil, notify.New(), nil)

	f.BeginEdit(apiclient.Event{ID: "e1", Title: "Gala", Date: "2025-11-15"})
	f.Cancel()

	assert.False(t, f.Open())
	assert.Empty(t, f.EditingID())
	assert.Empty(t, f.Values.Title)
}

func TestUserFormRequiresPasswordOnCreateOnly(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"id":"u1"}`))
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	reporter := notify.New(notify.WithAutoDismiss(time.Hour))
	f := NewUserForm(client, reporter, nil)

	f.BeginCreate()
	f.Values.Name = "Admin"
	f.Values.Email = "admin@staffdesk.local"
	f.Values.UserType = "Admin"

	require.Error(t, f.Submit(context.Background()), "create without password must fail")
	assert.Equal(t, "password is required", reporter.Current().Message)

	f.Values.Password = "secret"
	require.NoError(t, f.Submit(context.Background()))

	// Editing an existing user needs no password.
	f.BeginEdit(apiclient.User{ID: "u1", Name: "Admin", Email: "admin@staffdesk.local", UserType: "Admin"})
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, paths, 2)
	assert.Equal(t, "POST /api/users", paths[0])
	assert.Equal(t, "PUT /api/users/u1", paths[1])
}
