// Package gen provides deterministic Go code generation for the bulk
// copy adapters.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code. Each candidate renders to one file in its
// own package:
//   - column list and destination table identifier
//   - adapter type (instantiation of the bulkcopy runtime cursor)
//   - sequence and channel constructors
//   - positional values function
//   - convenience copy functions wiring the adapter into CopyFrom
package gen
