// Package parallel provides the worker pool and partitioning used by the
// contour pipeline.
//
// A job is split into phases. Each phase is one WorkerPool.Rendezvous call:
// every worker id gets exactly one task and the call returns only after all
// of them finish, which orders every write of a phase before every read of
// the next. Data is split between workers with SpanOf and Assign so that
// concurrent writes never overlap:
//
//   - SpanOf: even division of [0, n) into contiguous half-open ranges
//   - Assign: a SpanOf over grid rows plus the trailing-row ownership flag
//
// Thread safety: WorkerPool is safe for concurrent use. Callers are
// responsible for keeping per-worker writes disjoint.
package parallel
