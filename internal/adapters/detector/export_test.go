package detector

// Detect exposes the environment decision for testing.
var Detect = detect
