// Package history keeps a newest-first log of intents submitted through
// the dashboard. It is a convenience cache over the backend's request
// state endpoint: each record remembers the request id a submission
// produced, so the dashboard can later poll for the assigned intent id.
//
// The log is append-only and storage-agnostic: MemoryStore for tests and
// ephemeral runs, BadgerStore for a persistent single-key record list.
package history
