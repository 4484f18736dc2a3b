/*
Package runtime is the execution core of the advent harness.

It turns a domain.Selection into a run in two phases:

 1. Pre-flight: filter the catalog and instantiate every selected puzzle. Any
    construction failure aborts the whole run with a single aggregated
    *domain.LoadError.
 2. Execution: for each puzzle, resolve its input once, then run part one and
    part two, each inside its own failure boundary. A missing or blank input
    fails both parts without running either.
*/
package runtime
