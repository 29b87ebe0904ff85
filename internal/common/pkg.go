package common

// UnknownStr is the fallback label for unrecognized kinds and severities.
const UnknownStr = "unknown"
