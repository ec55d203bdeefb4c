package vin

// Version is the library version. It is overwritten during release
// builds.
var Version = "v0.3.0"

// Build is the build timestamp set during release builds.
var Build = "n/a"
