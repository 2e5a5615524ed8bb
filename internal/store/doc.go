// Package store is the persistent store behind the muse-studio assistant.
// It owns every piece of durable application state and keeps it internally
// consistent over an unreliable, externally-corruptible key/value medium.
//
// # Architecture
//
// All durable state lives in one root aggregate (State), serialized as a
// single JSON blob in one KV slot. Every mutating operation is a complete
// load -> mutate -> save cycle; collections are always persisted together
// and no partial write is ever visible to subsequent calls. There is no
// lock or transaction token: correctness relies on the absence of
// concurrent writers within one execution context, and cross-context races
// resolve as last-write-wins.
//
// Supporting slots outside the blob hold notification bookkeeping
// (lastView_<section>_<userID>, lastView_admin_<section>,
// dismissedNews_<userID>) and the daily news cache.
//
// # Self-healing
//
// The medium is assumed corruptible. load sanitizes defensively: an
// unparsable or non-object blob silently resets to the empty state, and
// each collection is sanitized independently so one corrupted collection
// does not invalidate its siblings. Initialize additionally enforces the
// privileged-account invariants (exactly one admin, demo account present)
// and hard-resets to a minimal valid state if bootstrap itself fails.
//
// # Subsystems
//
//   - Bootstrap: Initialize, run once before any other access
//   - Usage tracker: per-user per-day counters with transparent rollover
//   - Notification tracker: derived badge counts from view timestamps and
//     a dismissed-item set
//   - Activity log: bounded newest-first record of non-admin actions
//   - Entity repositories: typed CRUD over each collection
//
// # Error Handling
//
// Absent lookups return nil results, never errors. Save failures are
// logged and swallowed: persistence is best effort and callers do not
// retry. Errors surface only for medium I/O failures on reads and for the
// fatal hard-reset path.
//
// # Testing
//
// Construct a Store over kv.NewMemory() for isolated unit tests; the
// in-memory medium allows direct slot corruption to exercise the
// sanitization paths.
package store
