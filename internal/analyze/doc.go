// Package analyze provides package loading and candidate discovery for
// the bulk copy generator.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct types marked with the //bulkcopy:generate directive and to build
// a canonical in-memory descriptor of their columns.
//
// Key types:
//   - TypeID: package import path + type name
//   - Candidate: one marked struct with its ordered member list
//   - Member: field name, column name, rendered Go type, nullability
package analyze
