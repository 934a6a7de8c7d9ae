/*
Package weblog provides leveled, in-memory logging for WebAssembly guest
functions running under a Tarmac-style host.

Loggers live in the logger package and are usually created through a
registry.Registry. Entries are kept in memory, can be persisted to the host
key-value capability (package kv) and rendered to the host console (package
console). This package holds the pieces shared by every host capability
client: the RuntimeConfig namespace and the host error sentinels.
*/
package weblog
