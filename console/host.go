package console

import (
	"github.com/tarmac-project/weblog"
	"github.com/tarmac-project/weblog/level"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// HostCall defines the waPC host function signature used by the host console.
type HostCall func(string, string, string, []byte) ([]byte, error)

// HostConfig controls how a Host console interacts with the host runtime.
type HostConfig struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig weblog.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall
}

// Host prints lines through the host logging capability.
type Host struct {
	runtime  weblog.RuntimeConfig
	hostCall HostCall
}

var _ Console = (*Host)(nil)

// NewHost creates a Console backed by the host logging capability.
func NewHost(cfg HostConfig) (*Host, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &Host{runtime: cfg.SDKConfig.WithDefaults(), hostCall: hostCall}, nil
}

// Print sends the line text to the host. Delivery is best-effort.
func (h *Host) Print(line Line) {
	_, _ = h.hostCall(h.runtime.Namespace, capabilityName, hostFunction(line.Level), []byte(line.Text))
}

// hostFunction maps a level onto the host logging function that records it.
func hostFunction(l level.Level) string {
	switch l {
	case level.Error:
		return "Error"
	case level.Warning:
		return "Warn"
	case level.Debug:
		return "Debug"
	case level.Trace:
		return "Trace"
	default:
		return "Info"
	}
}
