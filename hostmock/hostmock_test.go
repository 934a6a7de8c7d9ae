package hostmock

import (
	"bytes"
	"errors"
	"testing"
)

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	ok := func() []byte { return []byte("ok") }

	tt := []struct {
		name       string
		cfg        Config
		namespace  string
		capability string
		function   string
		want       []byte
		wantErr    error
	}{
		{
			name:       "matching route",
			cfg:        Config{ExpectedNamespace: "tarmac", ExpectedCapability: "kvstore", ExpectedFunction: "get", Response: ok},
			namespace:  "tarmac",
			capability: "kvstore",
			function:   "get",
			want:       []byte("ok"),
		},
		{
			name:       "blank expectations match anything",
			cfg:        Config{Response: ok},
			namespace:  "other",
			capability: "logging",
			function:   "Trace",
			want:       []byte("ok"),
		},
		{
			name:       "fail returns no response",
			cfg:        Config{Fail: true, Error: ErrMockError, Response: ok},
			namespace:  "tarmac",
			capability: "kvstore",
			function:   "get",
			wantErr:    ErrMockError,
		},
		{
			name:       "fail skips expectations",
			cfg:        Config{Fail: true, ExpectedNamespace: "expected"},
			namespace:  "tarmac",
			capability: "kvstore",
			function:   "get",
			wantErr:    ErrOperationFailed,
		},
		{
			name:       "namespace mismatch",
			cfg:        Config{ExpectedNamespace: "expected", Response: ok},
			namespace:  "tarmac",
			capability: "kvstore",
			function:   "get",
			wantErr:    ErrUnexpectedNamespace,
		},
		{
			name:       "capability mismatch with wildcard function",
			cfg:        Config{ExpectedCapability: "metrics", Response: ok},
			namespace:  "tarmac",
			capability: "kvstore",
			function:   "get",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name:       "function mismatch",
			cfg:        Config{ExpectedCapability: "kvstore", ExpectedFunction: "set", Response: ok},
			namespace:  "tarmac",
			capability: "kvstore",
			function:   "get",
			wantErr:    ErrUnexpectedFunction,
		},
		{
			name: "validator rejects payload",
			cfg: Config{
				PayloadValidator: func([]byte) error { return ErrMockError },
				Response:         ok,
			},
			namespace:  "tarmac",
			capability: "kvstore",
			function:   "set",
			wantErr:    ErrMockError,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New Mock instance creation failed: %v", err)
			}

			got, err := mock.HostCall(tc.namespace, tc.capability, tc.function, []byte("payload"))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Mock call returned unexpected error: got %v, want %v", err, tc.wantErr)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Mock call returned unexpected response: got %q, want %q", got, tc.want)
			}
			if len(mock.Calls) != 1 {
				t.Fatalf("expected the call to be recorded, got %d calls", len(mock.Calls))
			}
		})
	}
}

func TestHostMockWildcards(t *testing.T) {
	mock, err := New(Config{
		ExpectedCapability: "kvstore",
		Response:           func() []byte { return []byte("ok") },
	})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	for _, fn := range []string{"get", "set"} {
		got, err := mock.HostCall("any", "kvstore", fn, nil)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", fn, err)
		}
		if string(got) != "ok" {
			t.Fatalf("unexpected response for %s: %q", fn, got)
		}
	}

	if _, err := mock.HostCall("any", "logging", "Info", nil); !errors.Is(err, ErrUnexpectedCapability) {
		t.Fatalf("expected ErrUnexpectedCapability, got %v", err)
	}
}

func TestHostMockResponder(t *testing.T) {
	mock, err := New(Config{
		ExpectedNamespace: "test",
		Responder: func(capability, function string, payload []byte) ([]byte, error) {
			if capability == "broken" {
				return nil, ErrMockError
			}
			return []byte(capability + "/" + function + ":" + string(payload)), nil
		},
	})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	got, err := mock.HostCall("test", "logging", "Info", []byte("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "logging/Info:hi" {
		t.Fatalf("unexpected response: %q", got)
	}

	if _, err := mock.HostCall("test", "broken", "x", nil); !errors.Is(err, ErrMockError) {
		t.Fatalf("expected ErrMockError, got %v", err)
	}
}

func TestHostMockConflictingResponse(t *testing.T) {
	_, err := New(Config{
		Response:  func() []byte { return nil },
		Responder: func(string, string, []byte) ([]byte, error) { return nil, nil },
	})
	if !errors.Is(err, ErrConflictingResponse) {
		t.Fatalf("expected ErrConflictingResponse, got %v", err)
	}
}

func TestHostMockRecordsCalls(t *testing.T) {
	mock, err := New(Config{Fail: true})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	payload := []byte("first")
	_, _ = mock.HostCall("ns", "kvstore", "set", payload)
	_, _ = mock.HostCall("ns", "kvstore", "set", []byte("second"))
	_, _ = mock.HostCall("ns", "kvstore", "get", nil)
	payload[0] = 'F'

	if len(mock.Calls) != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", len(mock.Calls))
	}
	if string(mock.Calls[0].Payload) != "first" {
		t.Fatalf("recorded payload must be a copy, got %q", mock.Calls[0].Payload)
	}
	if got := mock.Count("kvstore", "set"); got != 2 {
		t.Fatalf("expected 2 set calls, got %d", got)
	}
}
