package mock

import (
	"sort"

	"github.com/tarmac-project/weblog/kv"
)

// Operation names recorded in Call.Op.
const (
	OpGet    = "GET"
	OpSet    = "SET"
	OpDelete = "DELETE"
	OpKeys   = "KEYS"
)

// Config configures the mock client.
type Config struct {
	// Seed pre-populates the in-memory store.
	Seed map[string][]byte
}

// Call records an operation performed against the mock.
type Call struct {
	Op    string
	Key   string
	Value []byte
}

// Client implements kv.KV for tests.
type Client struct {
	store    map[string][]byte
	failures map[string]error

	// Calls stores a history of operations for assertions.
	Calls []Call
}

var _ kv.KV = (*Client)(nil)

// New creates a new mock KV client.
func New(cfg Config) *Client {
	st := make(map[string][]byte, len(cfg.Seed))
	for k, v := range cfg.Seed {
		st[k] = append([]byte(nil), v...)
	}
	return &Client{store: st, failures: make(map[string]error)}
}

// FailGet makes Get for key return err.
func (m *Client) FailGet(key string, err error) *Client { return m.fail(OpGet, key, err) }

// FailSet makes Set for key return err without storing anything.
func (m *Client) FailSet(key string, err error) *Client { return m.fail(OpSet, key, err) }

// FailDelete makes Delete for key return err without removing anything.
func (m *Client) FailDelete(key string, err error) *Client { return m.fail(OpDelete, key, err) }

func (m *Client) fail(op, key string, err error) *Client {
	m.failures[op+" "+key] = err
	return m
}

// Value returns the stored bytes for key without recording a call.
func (m *Client) Value(key string) ([]byte, bool) {
	v, ok := m.store[key]
	return v, ok
}

// Count returns how many calls of op were made for key.
func (m *Client) Count(op, key string) int {
	n := 0
	for _, c := range m.Calls {
		if c.Op == op && c.Key == key {
			n++
		}
	}
	return n
}

// Get implements kv.KV.
func (m *Client) Get(key string) ([]byte, error) {
	m.Calls = append(m.Calls, Call{Op: OpGet, Key: key})
	if key == "" {
		return nil, kv.ErrInvalidKey
	}
	if err, ok := m.failures[OpGet+" "+key]; ok {
		return nil, err
	}
	v, ok := m.store[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements kv.KV.
func (m *Client) Set(key string, value []byte) error {
	m.Calls = append(m.Calls, Call{Op: OpSet, Key: key, Value: append([]byte(nil), value...)})
	if key == "" {
		return kv.ErrInvalidKey
	}
	if value == nil {
		return kv.ErrInvalidValue
	}
	if err, ok := m.failures[OpSet+" "+key]; ok {
		return err
	}
	m.store[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements kv.KV.
func (m *Client) Delete(key string) error {
	m.Calls = append(m.Calls, Call{Op: OpDelete, Key: key})
	if key == "" {
		return kv.ErrInvalidKey
	}
	if err, ok := m.failures[OpDelete+" "+key]; ok {
		return err
	}
	if _, ok := m.store[key]; !ok {
		return kv.ErrKeyNotFound
	}
	delete(m.store, key)
	return nil
}

// Keys implements kv.KV. Keys are returned sorted.
func (m *Client) Keys() ([]string, error) {
	m.Calls = append(m.Calls, Call{Op: OpKeys})
	keys := make([]string, 0, len(m.store))
	for k := range m.store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close implements kv.KV.
func (m *Client) Close() error { return nil }
