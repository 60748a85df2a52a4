// Package apiclient talks to the StaffDesk HTTP API. It tolerates the
// endpoint naming drift the dashboard shipped with: event routes exist under
// both a plural and a singular prefix, so every event request that 404s on the
// primary path is retried exactly once against the fallback path. List bodies
// arrive in several envelope shapes and are normalized to a plain slice.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// TokenSource yields the bearer token to attach to authenticated requests.
// A false return means the request goes out unauthenticated.
type TokenSource interface {
	Token() (string, bool)
}

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func() (string, bool)

func (f TokenFunc) Token() (string, bool) { return f() }

// Resource describes one API collection. ActionPaths selects the dashboard's
// mutation convention (POST /create, PUT /update/:id, DELETE /delete/:id)
// instead of RESTful verbs on /:id. Fallback is empty when the resource has no
// alternate path family.
type Resource[T any] struct {
	Name     string
	Path     string
	Fallback string
	// ActionPaths selects /create, /update/:id, /delete/:id mutation routes.
	ActionPaths bool
}

// Events is the event collection with its singular-path fallback.
var Events = Resource[Event]{
	Name:        "events",
	Path:        "/api/events",
	Fallback:    "/api/event",
	ActionPaths: true,
}

// Users is the user collection. No fallback path family exists for it.
var Users = Resource[User]{
	Name: "users",
	Path: "/api/users",
}

// Boys is the staff roster collection.
var Boys = Resource[Boy]{
	Name: "boys",
	Path: "/api/boys",
}

// Bookings is the booking collection.
var Bookings = Resource[Booking]{
	Name: "bookings",
	Path: "/api/bookings",
}

// Client issues JSON requests against a StaffDesk server. It imposes no
// timeout and no retry beyond the single fallback-path attempt; cancellation
// is the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the structured logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches the full collection, normalizing the response envelope. A body
// that matches no recognized shape yields an empty slice, mirroring the
// dashboard's lenient behavior; use ListStrict to fail loudly instead.
func List[T any](ctx context.Context, c *Client, r Resource[T]) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, r.Path, fallbackPath(r.Fallback, ""), nil)
	if err != nil {
		return nil, err
	}
	items, err := normalizeList[T](body, r.Name)
	if err != nil {
		c.logger.Warn("Unrecognized list payload shape, returning empty collection",
			slog.String("resource", r.Name))
		return []T{}, nil
	}
	return items, nil
}

// ListStrict is List with ErrShapeMismatch instead of the silent empty slice.
func ListStrict[T any](ctx context.Context, c *Client, r Resource[T]) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, r.Path, fallbackPath(r.Fallback, ""), nil)
	if err != nil {
		return nil, err
	}
	return normalizeList[T](body, r.Name)
}

// Create posts a new entity and returns the server's representation of it.
func Create[T any](ctx context.Context, c *Client, r Resource[T], payload T) (T, error) {
	var created T
	path, fallback := r.Path, fallbackPath(r.Fallback, "")
	if r.ActionPaths {
		path += "/create"
		fallback = fallbackPath(r.Fallback, "/create")
	}
	body, err := c.do(ctx, http.MethodPost, path, fallback, payload)
	if err != nil {
		return created, err
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return created, fmt.Errorf("failed to decode created %s: %w", r.Name, err)
	}
	return created, nil
}

// Update replaces the entity with the given id.
func Update[T any](ctx context.Context, c *Client, r Resource[T], id string, payload T) (T, error) {
	var updated T
	path, fallback := r.Path+"/"+id, fallbackPath(r.Fallback, "/"+id)
	if r.ActionPaths {
		path = r.Path + "/update/" + id
		fallback = fallbackPath(r.Fallback, "/update/"+id)
	}
	body, err := c.do(ctx, http.MethodPut, path, fallback, payload)
	if err != nil {
		return updated, err
	}
	if err := json.Unmarshal(body, &updated); err != nil {
		return updated, fmt.Errorf("failed to decode updated %s: %w", r.Name, err)
	}
	return updated, nil
}

// Remove deletes the entity with the given id.
func Remove[T any](ctx context.Context, c *Client, r Resource[T], id string) error {
	path, fallback := r.Path+"/"+id, fallbackPath(r.Fallback, "/"+id)
	if r.ActionPaths {
		path = r.Path + "/delete/" + id
		fallback = fallbackPath(r.Fallback, "/delete/"+id)
	}
	_, err := c.do(ctx, http.MethodDelete, path, fallback, nil)
	return err
}

// Login authenticates and returns the token plus user profile. Failures keep
// the {"message": ...} body shape, surfaced through StatusError.Message.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	payload := map[string]string{"email": email, "password": password}
	body, err := c.do(ctx, http.MethodPost, "/api/login", "", payload)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("failed to decode login response: %w", err)
	}
	return result, nil
}

// do runs one request, retrying exactly once on the fallback path when the
// primary answers 404 and a fallback exists. Any other non-2xx becomes a
// StatusError; transport failures become NetworkError.
func (c *Client) do(ctx context.Context, method, path, fallback string, payload any) ([]byte, error) {
	body, status, err := c.roundTrip(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound && fallback != "" {
		c.logger.Debug("Primary path returned 404, retrying fallback",
			slog.String("path", path), slog.String("fallback", fallback))
		body, status, err = c.roundTrip(ctx, method, fallback, payload)
		if err != nil {
			return nil, err
		}
	}
	if status < 200 || status > 299 {
		return nil, &StatusError{Status: status, Message: sniffErrorMessage(body, status)}
	}
	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &NetworkError{Err: err}
	}
	return body, resp.StatusCode, nil
}

func fallbackPath(prefix, suffix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + suffix
}

// normalizeList accepts a bare array, or an object wrapping the array under
// the resource's own key or "data", and returns the ordered slice.
func normalizeList[T any](body []byte, resourceKey string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, ErrShapeMismatch
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, ErrShapeMismatch
	}
	for _, key := range []string{resourceKey, "data"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, ErrShapeMismatch
		}
		return items, nil
	}
	return nil, ErrShapeMismatch
}

// sniffErrorMessage pulls a human-readable message out of an error body,
// checking "error" then "message", else a generic status string.
func sniffErrorMessage(body []byte, status int) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return fmt.Sprintf("Server Error: %d", status)
}
