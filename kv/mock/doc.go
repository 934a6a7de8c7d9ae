/*
Package mock provides an in-memory implementation of the kv.KV interface.

It stands in for the host store in logger and registry tests: it can be seeded,
told to fail individual operations, and it records every call.

	m := mock.New(mock.Config{Seed: map[string][]byte{"app": []byte("[]")}})
	m.FailSet("app", errors.New("disk full"))
*/
package mock
