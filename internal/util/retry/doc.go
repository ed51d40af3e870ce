// Package retry provides backoff retry logic for operations whose
// failure mode is "not yet available" rather than "rejected".
//
// The [WithBackoff] function retries an operation with configurable
// attempts, delay, and multiplier. fdb uses it for NodePort discovery,
// where the platform assigns the port asynchronously. A multiplier of
// 1.0 yields a fixed cadence.
package retry
