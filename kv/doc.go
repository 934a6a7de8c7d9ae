/*
Package kv provides a client for the host key-value capability.

Loggers use it to persist their entries under their own name. The client
serializes requests with the Tarmac kvstore protobufs, forwards them to the host
with waPC, and maps the host status onto errors. Zero-value Config options fall
back to weblog.DefaultNamespace and the default waPC host call.

Tests can inject host behaviour with Config.HostCall (see package hostmock) or
skip the host entirely with the in-memory kv/mock package.
*/
package kv
