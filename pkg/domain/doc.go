/*
Package domain contains the core domain models of the advent harness.

It defines the identity of a puzzle module, the capability every module must
implement, the selection criteria for a run and the per-operation results the
engine produces. This package is kept pure and free of external dependencies
like I/O or persistence.

# Key Entities

  - Solution: the two-operation capability (PartOne, PartTwo) every puzzle implements.
  - Descriptor: identity record (Year, Day, Ref) plus the factory that builds a Solution.
  - Selection: the filter applied to the catalog for a single run.
  - ExecutionResult: the outcome of one part of one puzzle (success text or failure kind).
  - LoadError: the aggregated report of every module that failed to construct.
*/
package domain
