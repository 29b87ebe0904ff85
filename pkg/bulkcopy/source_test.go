package bulkcopy

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int64
	Name string
}

func rowValues(r row) []any {
	return []any{r.ID, r.Name}
}

// seqOf yields the given rows in order, fault-free.
func seqOf(items ...row) iter.Seq2[row, error] {
	return func(yield func(row, error) bool) {
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
	}
}

// countingSeq wraps seq and counts how many items were actually produced.
func countingSeq(seq iter.Seq2[row, error], produced *int) iter.Seq2[row, error] {
	return func(yield func(row, error) bool) {
		for v, err := range seq {
			*produced++

			if !yield(v, err) {
				return
			}
		}
	}
}

func TestSource_Next_ExhaustsSequence(t *testing.T) {
	src := NewSource(context.Background(), seqOf(
		row{ID: 1, Name: "a"},
		row{ID: 2, Name: "b"},
		row{ID: 3, Name: "c"},
	), rowValues)
	defer src.Close()

	var rows [][]any

	for src.Next() {
		vals, err := src.Values()
		require.NoError(t, err)

		rows = append(rows, vals)
	}

	require.NoError(t, src.Err())
	require.Len(t, rows, 3)
	assert.Equal(t, []any{int64(1), "a"}, rows[0])
	assert.Equal(t, []any{int64(3), "c"}, rows[2])

	// Once false, stays false.
	assert.False(t, src.Next())
	assert.False(t, src.Next())
	assert.NoError(t, src.Err())
}

func TestSource_Values_CurrentRowOnly(t *testing.T) {
	src := NewSource(context.Background(), seqOf(
		row{ID: 10, Name: "x"},
		row{ID: 20, Name: "y"},
	), rowValues)
	defer src.Close()

	require.True(t, src.Next())

	vals, err := src.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(10), "x"}, vals)

	require.True(t, src.Next())

	vals, err = src.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(20), "y"}, vals)
}

func TestSource_CancelBeforeFirstItem(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	produced := 0
	src := NewSource(ctx, countingSeq(seqOf(row{ID: 1}), &produced), rowValues)
	defer src.Close()

	assert.False(t, src.Next())
	require.ErrorIs(t, src.Err(), context.Canceled)
	assert.Zero(t, produced, "no item should be produced after cancellation")
}

func TestSource_CancelMidSequence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	produced := 0
	src := NewSource(ctx, countingSeq(seqOf(
		row{ID: 1, Name: "first"},
		row{ID: 2, Name: "second"},
	), &produced), rowValues)
	defer src.Close()

	require.True(t, src.Next())

	vals, err := src.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "first"}, vals)

	cancel()

	assert.False(t, src.Next())
	require.ErrorIs(t, src.Err(), context.Canceled)
	assert.Equal(t, 1, produced)
}

func TestSource_FaultPassthrough(t *testing.T) {
	errBoom := errors.New("producer exploded")

	seq := func(yield func(row, error) bool) {
		if !yield(row{ID: 1}, nil) {
			return
		}

		yield(row{}, errBoom)
	}

	src := NewSource(context.Background(), iter.Seq2[row, error](seq), rowValues)
	defer src.Close()

	require.True(t, src.Next())
	assert.False(t, src.Next())

	// The original fault, unwrapped.
	require.ErrorIs(t, src.Err(), errBoom)
	assert.Equal(t, errBoom, src.Err())

	// Faults halt further advancement.
	assert.False(t, src.Next())
}

func TestSource_Close_Idempotent(t *testing.T) {
	src := NewSource(context.Background(), seqOf(row{ID: 1}), rowValues)

	src.Close()
	src.Close()

	assert.False(t, src.Next())
	assert.NoError(t, src.Err())
}

func TestChan_DrainsUntilClose(t *testing.T) {
	ch := make(chan row, 2)
	ch <- row{ID: 1, Name: "a"}
	ch <- row{ID: 2, Name: "b"}
	close(ch)

	src := NewSource(context.Background(), Chan(context.Background(), ch), rowValues)
	defer src.Close()

	var rows [][]any

	for src.Next() {
		vals, err := src.Values()
		require.NoError(t, err)

		rows = append(rows, vals)
	}

	require.NoError(t, src.Err())
	require.Len(t, rows, 2)
	assert.Equal(t, []any{int64(1), "a"}, rows[0])
}

func TestSource_ChanCancelReportsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ch := make(chan row) // producer never sends
	src := NewSource(ctx, Chan(ctx, ch), rowValues)
	defer src.Close()

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	assert.False(t, src.Next())
	require.ErrorIs(t, src.Err(), context.Canceled)
}
