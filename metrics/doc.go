/*
Package metrics reports logger activity to the host metrics capability.

Client hands out Counter, Gauge and Histogram handles backed by protobuf
payloads sent over waPC. Emission is best-effort: Inc, Dec and Observe never
return errors and host failures are swallowed so that logging never fails
because metrics did.

Recorder bundles the handles weblog needs. It satisfies the Metrics interfaces
of the logger and registry packages.
*/
package metrics
