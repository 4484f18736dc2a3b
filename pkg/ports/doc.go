/*
Package ports defines the driven ports (interfaces) of the advent engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to read puzzle inputs from the filesystem, an embedded bundle, Redis
or memory without knowing which.

# Key Interfaces

  - InputStore: a lookup table from domain.InputKey to an input blob.
*/
package ports
