package logger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tarmac-project/weblog/console"
	"github.com/tarmac-project/weblog/level"
)

// DefaultTimeLayout renders timestamps the way an en-US locale does.
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

var (
	// ErrStoreUnavailable is returned by Persist when no Store is configured.
	ErrStoreUnavailable = errors.New("persistence store is unavailable")

	// ErrPersist wraps failures while writing entries to the Store.
	ErrPersist = errors.New("failed to persist entries")
)

// Store is the key-value facility entries are persisted to. kv.Client satisfies it.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Metrics receives entry lifecycle events. metrics.Recorder satisfies it.
type Metrics interface {
	EntryAppended(l level.Level)
	EntryDropped(l level.Level)
	Persisted(size int)
}

// Config controls a Logger. Zero values fall back to defaults.
type Config struct {
	// Level is the initial threshold. Anything outside Error..Trace becomes level.Error.
	Level level.Level

	// Store persists entries. Nil disables persistence.
	Store Store

	// Console renders Print output. Defaults to an ANSI writer on stderr.
	Console console.Console

	// Metrics is notified of appends, drops and writes. Nil disables it.
	Metrics Metrics

	// Clock stamps new entries. Defaults to time.Now.
	Clock func() time.Time

	// TimeLayout formats timestamps in Print and Text. Defaults to DefaultTimeLayout.
	TimeLayout string

	// Location is the time zone used for formatting. Defaults to time.Local.
	Location *time.Location
}

// Logger records leveled entries in memory.
type Logger struct {
	name    string
	store   Store
	console console.Console
	metrics Metrics
	clock   func() time.Time
	layout  string
	loc     *time.Location

	// current gates appends; saved is what Resume restores.
	current  level.Level
	saved    level.Level
	hasSaved bool

	entries []Entry
}

// New creates a Logger named name.
func New(name string, cfg Config) *Logger {
	l := &Logger{
		name:    name,
		store:   cfg.Store,
		console: cfg.Console,
		metrics: cfg.Metrics,
		clock:   cfg.Clock,
		layout:  cfg.TimeLayout,
		loc:     cfg.Location,
		current: cfg.Level,
	}

	if !l.current.Valid() {
		l.current = level.Error
	}
	if l.console == nil {
		l.console = console.NewWriter(console.WriterConfig{})
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.layout == "" {
		l.layout = DefaultTimeLayout
	}
	if l.loc == nil {
		l.loc = time.Local
	}

	return l
}

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// Level returns the current threshold.
func (l *Logger) Level() level.Level { return l.current }

// Len returns the number of recorded entries.
func (l *Logger) Len() int { return len(l.entries) }

// Entries returns a copy of the recorded entries in insertion order.
func (l *Logger) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

func (l *Logger) Error(msg string)   { l.log(level.Error, msg) }
func (l *Logger) Warning(msg string) { l.log(level.Warning, msg) }
func (l *Logger) Info(msg string)    { l.log(level.Info, msg) }
func (l *Logger) Debug(msg string)   { l.log(level.Debug, msg) }
func (l *Logger) Trace(msg string)   { l.log(level.Trace, msg) }

func (l *Logger) Errorf(format string, args ...any)   { l.logf(level.Error, format, args...) }
func (l *Logger) Warningf(format string, args ...any) { l.logf(level.Warning, format, args...) }
func (l *Logger) Infof(format string, args ...any)    { l.logf(level.Info, format, args...) }
func (l *Logger) Debugf(format string, args ...any)   { l.logf(level.Debug, format, args...) }
func (l *Logger) Tracef(format string, args ...any)   { l.logf(level.Trace, format, args...) }

func (l *Logger) log(lvl level.Level, msg string) {
	if l.allow(lvl) {
		l.record(lvl, msg)
	}
}

func (l *Logger) logf(lvl level.Level, format string, args ...any) {
	if l.allow(lvl) {
		l.record(lvl, fmt.Sprintf(format, args...))
	}
}

// allow reports whether lvl passes the threshold and counts the drop when it does not.
func (l *Logger) allow(lvl level.Level) bool {
	if lvl.Enabled(l.current) {
		return true
	}
	if l.metrics != nil {
		l.metrics.EntryDropped(lvl)
	}
	return false
}

func (l *Logger) record(lvl level.Level, msg string) {
	// Round(0) strips the monotonic reading so entries compare equal after a round trip.
	l.entries = append(l.entries, Entry{Time: l.clock().Round(0), Level: lvl, Message: msg})
	if l.metrics != nil {
		l.metrics.EntryAppended(lvl)
	}
}

// Print renders a header followed by every entry to the console.
func (l *Logger) Print() {
	l.console.Print(console.Line{
		Level: level.Off,
		Text:  "Printing logs for - " + l.name,
		Style: console.HeaderStyle,
	})
	for _, e := range l.entries {
		l.console.Print(console.Line{
			Level: e.Level,
			Text:  e.Format(l.layout, l.loc),
			Style: console.StyleFor(e.Level),
		})
	}
}

// Text returns the formatted entries joined by newlines.
func (l *Logger) Text() string {
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		lines[i] = e.Format(l.layout, l.loc)
	}
	return strings.Join(lines, "\n")
}

// Clear drops every entry and removes the persisted copy, if any.
// Removal is best-effort: a store that cannot delete leaves its copy behind.
func (l *Logger) Clear() {
	l.entries = nil
	if l.store == nil {
		return
	}
	_ = l.store.Delete(l.name)
}

// SetLevel installs a new threshold and remembers the previous one.
// It returns level.ErrInvalidLevel, and changes nothing, for levels outside Error..Trace.
func (l *Logger) SetLevel(lvl level.Level) error {
	if !lvl.Valid() {
		return fmt.Errorf("%w: %d", level.ErrInvalidLevel, lvl.Rank())
	}
	l.saved, l.hasSaved = l.current, true
	l.current = lvl
	return nil
}

// Pause stops recording and remembers the current threshold.
// Pausing a paused logger does nothing, so the remembered threshold survives.
func (l *Logger) Pause() {
	if l.current == level.Off {
		return
	}
	l.saved, l.hasSaved = l.current, true
	l.current = level.Off
}

// Resume installs lvl when it is a valid entry level. Otherwise it restores
// the threshold remembered by the last Pause or SetLevel, if there is one.
func (l *Logger) Resume(lvl level.Level) {
	if lvl.Valid() {
		l.current = lvl
		return
	}
	if l.hasSaved {
		l.current = l.saved
	}
}

// Persist writes every entry to the Store under the logger name.
func (l *Logger) Persist() error {
	if l.store == nil {
		return ErrStoreUnavailable
	}

	data, err := Encode(l.entries)
	if err != nil {
		return errors.Join(ErrPersist, err)
	}
	if err := l.store.Set(l.name, data); err != nil {
		return errors.Join(ErrPersist, err)
	}

	if l.metrics != nil {
		l.metrics.Persisted(len(data))
	}
	return nil
}

// LoadPersisted returns the stored encoding for this logger. When there is no
// Store, or it holds nothing for the name, the in-memory entries are encoded
// instead. It never fails; "[]" is returned when nothing can be produced.
func (l *Logger) LoadPersisted() string {
	if l.store != nil {
		data, err := l.store.Get(l.name)
		if err == nil && len(data) > 0 {
			return string(data)
		}
	}

	data, err := Encode(l.entries)
	if err != nil || len(data) == 0 {
		return "[]"
	}
	return string(data)
}
