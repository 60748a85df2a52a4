// Package credstore persists login credentials between sessions, the way the
// dashboard keeps its token and serialized user profile in durable storage.
package credstore

// Store is the durable credential port used by the state store. The token is
// the opaque bearer credential; the user is the serialized profile blob.
type Store interface {
	Save(token string, user []byte) error
	Token() (string, bool)
	User() ([]byte, bool)
	Clear() error
}
