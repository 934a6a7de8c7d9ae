/*
Package hostmock provides a scripted waPC host for wire-level tests.

Capability clients in this module (kv, console, metrics) accept a HostCall
function. Passing Mock.HostCall lets a test check which namespace, capability
and function a client routes to, inspect the protobuf payload it sends, and
script the bytes or the failure the host answers with.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "kvstore",
	  ExpectedFunction:   "set",
	  PayloadValidator: func(p []byte) error {
	    var req kvstore.KVStoreSet
	    return req.UnmarshalVT(p)
	  },
	  Response: func() []byte { return okSetResponse },
	})

	client, _ := kv.New(kv.Config{HostCall: m.HostCall})

Behavior

  - Every call is appended to Calls before anything else happens.
  - If Fail is true, HostCall returns Error, or ErrOperationFailed when Error is nil.
  - Expected fields that are left blank match anything.
  - PayloadValidator runs next when provided.
  - Responder, when set, answers the call. It is the way to serve several
    capabilities from one mock, for example when testing registry.NewHost.
  - Otherwise Response provides the bytes, or nil when it is unset.
*/
package hostmock
