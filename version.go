package advent

// Version is the release of the advent harness.
const Version = "0.3.0"
