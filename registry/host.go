package registry

import (
	"errors"

	"github.com/tarmac-project/weblog"
	"github.com/tarmac-project/weblog/console"
	"github.com/tarmac-project/weblog/kv"
	"github.com/tarmac-project/weblog/metrics"
)

// ErrHostSetup wraps failures while building host capability clients.
var ErrHostSetup = errors.New("failed to set up host capabilities")

// HostCall defines the waPC host function signature shared by every capability.
type HostCall func(string, string, string, []byte) ([]byte, error)

// HostConfig controls NewHost.
type HostConfig struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig weblog.RuntimeConfig

	// HostCall overrides the waPC host function for every capability.
	HostCall HostCall

	// DisableStore keeps loggers in memory only.
	DisableStore bool

	// DisableMetrics skips the metrics capability.
	DisableMetrics bool

	// Registry supplies the remaining options. Its Store, Console and Metrics are replaced.
	Registry Config
}

// NewHost creates a Registry whose loggers persist, print and report through the host.
func NewHost(cfg HostConfig) (*Registry, error) {
	rcfg := cfg.Registry
	rcfg.Store, rcfg.Console, rcfg.Metrics = nil, nil, nil

	if !cfg.DisableStore {
		store, err := kv.New(kv.Config{SDKConfig: cfg.SDKConfig, HostCall: kv.HostCall(cfg.HostCall)})
		if err != nil {
			return nil, errors.Join(ErrHostSetup, err)
		}
		rcfg.Store = store
	}

	host, err := console.NewHost(console.HostConfig{SDKConfig: cfg.SDKConfig, HostCall: console.HostCall(cfg.HostCall)})
	if err != nil {
		return nil, errors.Join(ErrHostSetup, err)
	}
	rcfg.Console = host

	if !cfg.DisableMetrics {
		client, err := metrics.New(metrics.Config{SDKConfig: cfg.SDKConfig, HostCall: metrics.HostCall(cfg.HostCall)})
		if err != nil {
			return nil, errors.Join(ErrHostSetup, err)
		}
		recorder, err := metrics.NewRecorder(client)
		if err != nil {
			return nil, errors.Join(ErrHostSetup, err)
		}
		rcfg.Metrics = recorder
	}

	return New(rcfg), nil
}
