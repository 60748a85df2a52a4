package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRetriesFallbackExactlyOnceOn404(t *testing.T) {
	var pluralHits, singularHits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/events":
			pluralHits++
			w.WriteHeader(http.StatusNotFound)
		case "/api/event":
			singularHits++
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"events":[{"id":"e1","title":"Gala"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := New(server.URL)
	events, err := List(context.Background(), client, Events)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, 1, pluralHits)
	assert.Equal(t, 1, singularHits)
}

func TestListDoesNotFallBackOnOtherStatuses(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		require.Equal(t, "/api/events", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := List(context.Background(), client, Events)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Equal(t, "boom", statusErr.Message)
	assert.Equal(t, 1, hits)
}

func TestListResourceWithoutFallbackPropagates404(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := List(context.Background(), client, Users)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	assert.Equal(t, 1, hits)
}

func TestListNormalizesEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantIDs []string
	}{
		{"bare array", `[{"id":"e2"}]`, []string{"e2"}},
		{"resource key", `{"events":[{"id":"e1"}]}`, []string{"e1"}},
		{"data key", `{"data":[{"id":"e3"}]}`, []string{"e3"}},
		{"unknown key", `{"unexpectedKey":[]}`, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := New(server.URL)
			events, err := List(context.Background(), client, Events)
			require.NoError(t, err)
			require.Len(t, events, len(tc.wantIDs))
			for i, id := range tc.wantIDs {
				assert.Equal(t, id, events[i].ID)
			}
		})
	}
}

func TestListStrictReturnsShapeMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"unexpectedKey":[]}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := ListStrict(context.Background(), client, Events)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestCreateUsesActionPathAndBearerHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/events/create", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"e9","title":"New"}`))
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(TokenFunc(func() (string, bool) {
		return "tok-123", true
	})))
	created, err := Create(context.Background(), client, Events, Event{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "e9", created.ID)
}

func TestUpdateFallsBackOnSingularPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/events/update/e1":
			w.WriteHeader(http.StatusNotFound)
		case "/api/event/update/e1":
			require.Equal(t, http.MethodPut, r.Method)
			w.Write([]byte(`{"id":"e1","title":"Renamed"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := New(server.URL)
	updated, err := Update(context.Background(), client, Events, "e1", Event{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestRemoveUsesDeletePath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"id":"e1"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	require.NoError(t, Remove(context.Background(), client, Events, "e1"))
	assert.Equal(t, "/api/events/delete/e1", gotPath)
}

func TestStatusErrorMessageSniffing(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error key", `{"error":"event not found"}`, "event not found"},
		{"message key", `{"message":"bad creds"}`, "bad creds"},
		{"no keys", `{}`, "Server Error: 500"},
		{"not json", `oops`, "Server Error: 500"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := New(server.URL)
			_, err := List(context.Background(), client, Users)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tc.want, statusErr.Message)
		})
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before the request

	client := New(server.URL)
	_, err := List(context.Background(), client, Events)

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestLoginSuccessAndFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		var req map[string]string
		require.NoError(t, decodeJSONBody(r, &req))
		if req["password"] == "right" {
			w.Write([]byte(`{"token":"t1","user":{"id":"u1","email":"a@b.c"}}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))
	defer server.Close()

	client := New(server.URL)

	result, err := client.Login(context.Background(), "a@b.c", "right")
	require.NoError(t, err)
	assert.Equal(t, "t1", result.Token)
	assert.Equal(t, "u1", result.User.ID)

	_, err = client.Login(context.Background(), "a@b.c", "wrong")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
	assert.Equal(t, "Invalid email or password", statusErr.Message)
}

func decodeJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
