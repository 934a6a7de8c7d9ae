/*
Package logger implements a leveled, in-memory logger.

A Logger keeps an ordered, append-only sequence of entries. Each call to Error,
Warning, Info, Debug or Trace appends an entry only when its level is within
the current threshold; everything else is dropped silently. The threshold can
be changed with SetLevel and paused and resumed with one level of memory.

Entries can be rendered to a console.Console with Print, joined into text with
Text, and persisted as a JSON array to an optional Store under the logger's
name. When no Store is configured, persistence degrades to in-memory only.

A Logger is not safe for concurrent use. It is meant for single-threaded
guests where every call runs to completion.
*/
package logger
