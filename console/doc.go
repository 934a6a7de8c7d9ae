/*
Package console renders log lines to a debugging console.

A Console receives one Line at a time: the text, the level it belongs to and a
Style describing how it should look. Three implementations are provided:

  - Host forwards lines to the host logging capability over waPC. The host
    picks its own presentation from the level, so Style is not transmitted.
  - Writer renders lines to an io.Writer, colouring them with 24-bit ANSI
    escapes derived from Style.Color.
  - Discard drops everything.

StyleFor returns the fixed per-level style used by loggers; its String method
yields the CSS directive a browser console expects after a "%c" marker.
*/
package console
