/*
Package report turns a stream of domain.ExecutionResult values into output.

Two reporters are provided: Text, a colored human readable format, and JSON,
one JSON object per line (NDJSON). Both keep a Tally so the caller can derive
the overall status of the run: the run succeeded only if every part did.
*/
package report
