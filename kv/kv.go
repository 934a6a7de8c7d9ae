package kv

import (
	"errors"
	"fmt"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/kvstore"
	"github.com/tarmac-project/weblog"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "kvstore"
	fnGet          = "get"
	fnSet          = "set"
	fnDelete       = "delete"
	fnKeys         = "keys"

	hostStatusOK       = int32(200)
	hostStatusPartial  = int32(206)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)
)

var (
	// ErrInvalidKey indicates an empty key.
	ErrInvalidKey = errors.New("key is invalid")

	// ErrInvalidValue indicates a nil value.
	ErrInvalidValue = errors.New("value is invalid")

	// ErrKeyNotFound is returned when the host has no value for the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrMarshalRequest wraps failures while encoding the request payload.
	ErrMarshalRequest = errors.New("failed to marshal request")

	// ErrUnmarshalResponse wraps failures while decoding the host response.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")
)

// HostCall defines the waPC host function signature used by KV operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// KV defines the key-value capability interface.
type KV interface {
	// Get returns the value stored under key.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key.
	Delete(key string) error

	// Keys lists every stored key.
	Keys() ([]string, error)

	// Close releases resources held by the client.
	Close() error
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig weblog.RuntimeConfig

	// HostCall overrides the waPC host function used for KV operations.
	HostCall HostCall
}

// Client is the key-value capability client implementation.
type Client struct {
	runtime  weblog.RuntimeConfig
	hostCall HostCall
}

// Ensure Client satisfies the KV interface at compile time.
var _ KV = (*Client)(nil)

// New creates a KV client with namespace defaults and optional host-call override.
func New(config Config) (*Client, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &Client{runtime: config.SDKConfig.WithDefaults(), hostCall: hostCall}, nil
}

// Get returns the value stored under key.
func (c *Client) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	var resp proto.KVStoreGetResponse
	if err := c.call(fnGet, &proto.KVStoreGet{Key: key}, &resp); err != nil {
		return nil, err
	}
	if err := validateStatus(resp.GetStatus()); err != nil {
		return nil, err
	}

	return resp.GetData(), nil
}

// Set stores value under key.
func (c *Client) Set(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	if value == nil {
		return ErrInvalidValue
	}

	var resp proto.KVStoreSetResponse
	if err := c.call(fnSet, &proto.KVStoreSet{Key: key, Data: value}, &resp); err != nil {
		return err
	}

	return validateStatus(resp.GetStatus())
}

// Delete removes key from the store.
func (c *Client) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	var resp proto.KVStoreDeleteResponse
	if err := c.call(fnDelete, &proto.KVStoreDelete{Key: key}, &resp); err != nil {
		return err
	}

	return validateStatus(resp.GetStatus())
}

// Keys lists every key known to the host store.
func (c *Client) Keys() ([]string, error) {
	var resp proto.KVStoreKeysResponse
	if err := c.call(fnKeys, &proto.KVStoreKeys{ReturnProto: true}, &resp); err != nil {
		return nil, err
	}
	if err := validateStatus(resp.GetStatus()); err != nil {
		return nil, err
	}

	return resp.GetKeys(), nil
}

// Close releases resources held by the client.
func (c *Client) Close() error { return nil }

type vtMarshaler interface {
	MarshalVT() ([]byte, error)
}

type vtUnmarshaler interface {
	UnmarshalVT([]byte) error
}

// call marshals req, performs the host call and decodes the answer into resp.
func (c *Client) call(fn string, req vtMarshaler, resp vtUnmarshaler) error {
	b, err := req.MarshalVT()
	if err != nil {
		return errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := c.hostCall(c.runtime.Namespace, capabilityName, fn, b)
	if callErr != nil {
		return errors.Join(weblog.ErrHostCall, callErr)
	}

	if err := resp.UnmarshalVT(respBytes); err != nil {
		return errors.Join(weblog.ErrHostResponseInvalid, ErrUnmarshalResponse, err)
	}

	return nil
}

func validateStatus(status *sdkproto.Status) error {
	if status == nil {
		return weblog.ErrHostResponseInvalid
	}

	code := status.GetCode()
	switch code {
	case hostStatusOK, hostStatusPartial:
		return nil
	case hostStatusMissing:
		return ErrKeyNotFound
	case hostStatusBadInput, hostStatusError:
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		return errors.Join(weblog.ErrHostError, errors.New(detail))
	default:
		return errors.Join(weblog.ErrHostResponseInvalid, fmt.Errorf("unexpected host status code %d", code))
	}
}
