package capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/termine-direkt/pkg/types"
)

type fakeCounter struct {
	counts   map[types.TimeString]int
	ordinals map[types.TimeString][]int
	err      error
	calls    int
}

func (f *fakeCounter) CountForSlot(ctx context.Context, businessID int64, date time.Time, slot types.TimeString) (int, error) {
	f.calls++
	return f.counts[slot], f.err
}

func (f *fakeCounter) SlotOrdinals(ctx context.Context, businessID int64, date time.Time, slot types.TimeString) ([]int, error) {
	f.calls++
	return f.ordinals[slot], f.err
}

func (f *fakeCounter) CountsByTime(ctx context.Context, businessID int64, date time.Time) (map[types.TimeString]int, error) {
	f.calls++
	return f.counts, f.err
}

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestLedger_IsFull(t *testing.T) {
	counter := &fakeCounter{counts: map[types.TimeString]int{"18:00": 3, "18:45": 2}}
	ledger := NewLedger(counter)
	ctx := context.Background()

	full, err := ledger.IsFull(ctx, 1, day, "18:00", 3)
	require.NoError(t, err)
	assert.True(t, full)

	full, err = ledger.IsFull(ctx, 1, day, "18:45", 3)
	require.NoError(t, err)
	assert.False(t, full)

	full, err = ledger.IsFull(ctx, 1, day, "18:45", 2)
	require.NoError(t, err)
	assert.True(t, full)

	full, err = ledger.IsFull(ctx, 1, day, "19:30", 1)
	require.NoError(t, err)
	assert.False(t, full)
}

func TestLedger_NeverCaches(t *testing.T) {
	counter := &fakeCounter{counts: map[types.TimeString]int{"18:00": 1}}
	ledger := NewLedger(counter)
	ctx := context.Background()

	first, err := ledger.CountFor(ctx, 1, day, "18:00")
	require.NoError(t, err)
	counter.counts["18:00"] = 2
	second, err := ledger.CountFor(ctx, 1, day, "18:00")
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 2, counter.calls)
}

func TestLedger_Errors(t *testing.T) {
	cause := errors.New("db down")
	ledger := NewLedger(&fakeCounter{err: cause})
	ctx := context.Background()

	_, err := ledger.CountFor(ctx, 1, day, "18:00")
	assert.ErrorIs(t, err, ErrCount)
	assert.ErrorIs(t, err, cause)

	_, err = ledger.IsFull(ctx, 1, day, "18:00", 3)
	assert.ErrorIs(t, err, ErrCount)

	_, err = ledger.CountsByTime(ctx, 1, day)
	assert.ErrorIs(t, err, cause)

	_, err = ledger.NextOrdinal(ctx, 1, day, "18:00", 3)
	assert.ErrorIs(t, err, cause)
}

func TestLedger_NextOrdinal(t *testing.T) {
	counter := &fakeCounter{ordinals: map[types.TimeString][]int{
		"18:00": {1, 3},
		"18:45": {1, 2, 3},
	}}
	ledger := NewLedger(counter)
	ctx := context.Background()

	ordinal, err := ledger.NextOrdinal(ctx, 1, day, "18:00", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ordinal)

	ordinal, err = ledger.NextOrdinal(ctx, 1, day, "18:45", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, ordinal)

	ordinal, err = ledger.NextOrdinal(ctx, 1, day, "19:30", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, ordinal)
}

func TestFirstFreeOrdinal(t *testing.T) {
	assert.Equal(t, 1, FirstFreeOrdinal(nil, 3))
	assert.Equal(t, 3, FirstFreeOrdinal([]int{2, 1}, 3))
	assert.Equal(t, 0, FirstFreeOrdinal([]int{1}, 1))
	assert.Equal(t, 0, FirstFreeOrdinal([]int{2, 3}, 1))
}
