package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level is a severity rank. Higher ranks are more verbose.
type Level int

const (
	// Off disables logging. It never labels an entry.
	Off Level = iota
	// Error records failures.
	Error
	// Warning records recoverable problems.
	Warning
	// Info records normal progress.
	Info
	// Debug records diagnostic detail.
	Debug
	// Trace records everything.
	Trace
)

// ErrInvalidLevel is returned when a value is not one of the entry levels Error through Trace.
var ErrInvalidLevel = errors.New("log level is invalid")

var names = [...]string{
	Off:     "OFF",
	Error:   "ERROR",
	Warning: "WARNING",
	Info:    "INFO",
	Debug:   "DEBUG",
	Trace:   "TRACE",
}

// Rank returns the numeric rank of the level.
func (l Level) Rank() int { return int(l) }

// String returns the display name of the level.
func (l Level) String() string {
	if l >= Off && l <= Trace {
		return names[l]
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Valid reports whether l is an entry level, Error through Trace.
func (l Level) Valid() bool { return l >= Error && l <= Trace }

// Enabled reports whether an entry of level l passes the given threshold.
func (l Level) Enabled(threshold Level) bool { return l.Valid() && l <= threshold }

// All returns the entry levels in rank order.
func All() []Level { return []Level{Error, Warning, Info, Debug, Trace} }

// Parse returns the entry level named by s. Names are case-insensitive and
// the decimal ranks 1 through 5 are accepted too.
func Parse(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range All() {
		if strings.EqualFold(s, names[l]) {
			return l, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return Off, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
