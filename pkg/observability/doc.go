/*
Package observability provides lifecycle hooks for monitoring advent runs.

It includes Prometheus metrics for part outcomes and durations, structured
logging of every module and part, and a helper to combine several hook sets
into the single domain.LifecycleHooks value the engine accepts.
*/
package observability
