// Package bulkcopy provides the runtime half of the generated adapters:
// a generic row cursor over a lazily-produced sequence of model values,
// shaped to pgx's CopyFromSource contract.
//
// The generated code per marked type is a thin instantiation of Source
// with a positional values function; everything stateful lives here.
//
// A Source is driven by exactly one caller (the COPY driver) and holds
// no shared mutable state. The only suspension point is the pull itself;
// cancellation is observed between rows, never mid-value-read.
package bulkcopy
