package metrics

import (
	"errors"
	"strings"

	"github.com/tarmac-project/weblog/level"
)

// Metric names emitted by Recorder.
const (
	MetricDropped      = "weblog_entries_dropped_total"
	MetricPersisted    = "weblog_persist_total"
	MetricPersistBytes = "weblog_persist_bytes"
	MetricLoggers      = "weblog_loggers"
)

// EntriesMetric returns the name of the counter tracking appended entries of level l.
func EntriesMetric(l level.Level) string {
	return "weblog_entries_" + strings.ToLower(l.String()) + "_total"
}

// Recorder reports logger and registry activity through a Client.
type Recorder struct {
	appended     map[level.Level]*Counter
	dropped      *Counter
	persisted    *Counter
	persistBytes *Histogram
	loggers      *Gauge
}

// NewRecorder creates every handle up front so that a bad name fails here, not while logging.
func NewRecorder(c Client) (*Recorder, error) {
	var errs []error
	r := &Recorder{appended: make(map[level.Level]*Counter, len(level.All()))}

	for _, l := range level.All() {
		counter, err := c.NewCounter(EntriesMetric(l))
		errs = append(errs, err)
		r.appended[l] = counter
	}

	var err error
	r.dropped, err = c.NewCounter(MetricDropped)
	errs = append(errs, err)
	r.persisted, err = c.NewCounter(MetricPersisted)
	errs = append(errs, err)
	r.persistBytes, err = c.NewHistogram(MetricPersistBytes)
	errs = append(errs, err)
	r.loggers, err = c.NewGauge(MetricLoggers)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// EntryAppended counts an entry stored at level l.
func (r *Recorder) EntryAppended(l level.Level) {
	if c, ok := r.appended[l]; ok {
		c.Inc()
	}
}

// EntryDropped counts an entry rejected by the threshold.
func (r *Recorder) EntryDropped(level.Level) { r.dropped.Inc() }

// Persisted records a successful write of size bytes.
func (r *Recorder) Persisted(size int) {
	r.persisted.Inc()
	r.persistBytes.Observe(float64(size))
}

// LoggerCreated tracks a logger added to a registry.
func (r *Recorder) LoggerCreated() { r.loggers.Inc() }

// LoggerRemoved tracks a logger dropped from a registry.
func (r *Recorder) LoggerRemoved() { r.loggers.Dec() }
