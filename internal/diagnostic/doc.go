// Package diagnostic provides structured build-time findings for the
// bulk copy generator.
//
// Key capabilities:
//   - Rejection of marked types that are unexported or not structs
//   - Warnings for degenerate candidates (zero columns) and skipped fields
//   - Stable diagnostic codes for tooling
package diagnostic
