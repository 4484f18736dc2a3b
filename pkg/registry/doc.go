// Package registry builds the puzzle catalog.
//
// Puzzle packages register a factory under a logical path from their init
// functions. The path carries the puzzle identity by convention: it must end
// in Year<yyyy>.Day<dd> (for example "Year2024.Day01"). Paths that do not
// follow the convention are silently left out of the catalog; this is
// discovery, not validation.
package registry
