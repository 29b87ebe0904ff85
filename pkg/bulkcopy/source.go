package bulkcopy

import (
	"context"
	"iter"
)

// Source adapts a sequence of T values to the row cursor contract the
// COPY driver pulls from: Next, Values, Err. It is bound to one sequence
// and discarded after the sequence is exhausted or the copy fails.
//
// Faults carried by the sequence surface unchanged through Err; Source
// introduces no error categories of its own.
type Source[T any] struct {
	ctx    context.Context
	next   func() (T, error, bool)
	stop   func()
	values func(T) []any
	cur    T
	err    error
	done   bool
}

// NewSource returns a Source over seq. values maps one item to its
// positional column values; the generated code passes a pure field
// extraction.
//
// ctx is checked between rows: cancellation stops iteration before the
// next item is produced and is reported through Err.
func NewSource[T any](ctx context.Context, seq iter.Seq2[T, error], values func(T) []any) *Source[T] {
	next, stop := iter.Pull2(seq)

	return &Source[T]{
		ctx:    ctx,
		next:   next,
		stop:   stop,
		values: values,
	}
}

// Next advances to the next row. It returns false at end of sequence,
// on a sequence fault, or when the context is cancelled; once false it
// stays false.
func (s *Source[T]) Next() bool {
	if s.done {
		return false
	}

	if err := s.ctx.Err(); err != nil {
		s.fail(err)
		return false
	}

	v, err, ok := s.next()
	if !ok {
		s.done = true
		s.stop()

		// A sequence that stopped because the context fired (e.g. the
		// channel bridge) must still report the cancellation.
		if cerr := s.ctx.Err(); cerr != nil {
			s.err = cerr
		}

		return false
	}

	if err != nil {
		s.fail(err)
		return false
	}

	s.cur = v

	return true
}

// Values returns the current row's column values in declaration order.
func (s *Source[T]) Values() ([]any, error) {
	return s.values(s.cur), nil
}

// Err returns the sequence fault or cancellation that ended iteration,
// unwrapped, or nil after a clean end of sequence.
func (s *Source[T]) Err() error {
	return s.err
}

// Close releases the underlying iterator. It is idempotent and safe to
// call after exhaustion.
func (s *Source[T]) Close() {
	s.done = true
	s.stop()
}

func (s *Source[T]) fail(err error) {
	s.err = err
	s.done = true
	s.stop()
}

// Chan bridges a producer channel into a sequence: items are yielded as
// they arrive, a closed channel ends the sequence, and ctx cancellation
// stops the drain between items.
func Chan[T any](ctx context.Context, ch <-chan T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok {
					return
				}

				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
