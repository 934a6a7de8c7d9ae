package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tarmac-project/weblog/console"
	"github.com/tarmac-project/weblog/level"
	"github.com/tarmac-project/weblog/logger"
)

// DefaultNamePrefix starts the names generated for unnamed loggers.
const DefaultNamePrefix = "WebAppLog_"

// ErrAlreadyExists is returned by Create when the name is taken and Override is not set.
var ErrAlreadyExists = errors.New("a logger by this name already exists")

// Metrics receives logger and registry lifecycle events. metrics.Recorder satisfies it.
type Metrics interface {
	logger.Metrics
	LoggerCreated()
	LoggerRemoved()
}

// Config holds the collaborators shared by every logger of a Registry.
type Config struct {
	// Store persists entries. Nil keeps loggers in memory only.
	Store logger.Store

	// Console renders Print output.
	Console console.Console

	// Metrics is notified of logger and entry activity. Nil disables it.
	Metrics Metrics

	// Clock stamps entries. Defaults to time.Now.
	Clock func() time.Time

	// TimeLayout and Location control timestamp formatting. See logger.Config.
	TimeLayout string
	Location   *time.Location

	// NamePrefix starts generated names. Defaults to DefaultNamePrefix.
	NamePrefix string
}

// Options controls a single Create call.
type Options struct {
	// Level is the initial threshold. Values outside Error..Trace mean level.Error.
	Level level.Level

	// Override replaces an existing logger of the same name after clearing it.
	Override bool
}

// Registry owns named loggers. It is not safe for concurrent use.
type Registry struct {
	cfg     Config
	loggers map[string]*logger.Logger
	newID   func() (uuid.UUID, error)
}

// New creates an empty Registry.
func New(cfg Config) *Registry {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.NamePrefix == "" {
		cfg.NamePrefix = DefaultNamePrefix
	}
	return &Registry{cfg: cfg, loggers: make(map[string]*logger.Logger), newID: uuid.NewV7}
}

// Create registers a new logger. An empty name gets a generated, time-ordered one.
func (r *Registry) Create(name string, opts Options) (*logger.Logger, error) {
	if name == "" {
		name = r.generateName()
	}

	if prior, ok := r.loggers[name]; ok {
		if !opts.Override {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
		}
		prior.Clear()
		r.drop(name)
	}

	l := logger.New(name, logger.Config{
		Level:      opts.Level,
		Store:      r.cfg.Store,
		Console:    r.cfg.Console,
		Metrics:    r.cfg.Metrics,
		Clock:      r.cfg.Clock,
		TimeLayout: r.cfg.TimeLayout,
		Location:   r.cfg.Location,
	})
	r.loggers[name] = l
	if r.cfg.Metrics != nil {
		r.cfg.Metrics.LoggerCreated()
	}
	return l, nil
}

// Get returns the logger registered under name.
func (r *Registry) Get(name string) (*logger.Logger, bool) {
	l, ok := r.loggers[name]
	return l, ok
}

// Remove forgets the logger registered under name. Persisted data is kept.
func (r *Registry) Remove(name string) {
	if _, ok := r.loggers[name]; ok {
		r.drop(name)
	}
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) drop(name string) {
	delete(r.loggers, name)
	if r.cfg.Metrics != nil {
		r.cfg.Metrics.LoggerRemoved()
	}
}

// generateName returns a prefixed UUIDv7, falling back to the clock in milliseconds.
func (r *Registry) generateName() string {
	if id, err := r.newID(); err == nil {
		return r.cfg.NamePrefix + id.String()
	}
	stem := r.cfg.NamePrefix + strconv.FormatInt(r.cfg.Clock().UnixMilli(), 10)
	name := stem
	for i := 1; ; i++ {
		if _, taken := r.loggers[name]; !taken {
			return name
		}
		name = stem + "_" + strconv.Itoa(i)
	}
}
