package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenRows behaves like a result set whose connection dropped before the
// rows were fully streamed. pgx reports that only through Rows.Err after
// Next returns false.
type brokenRows struct {
	pgx.Rows
	err error
}

func (r brokenRows) Next() bool { return false }
func (r brokenRows) Err() error { return r.err }
func (r brokenRows) Close()     {}

type brokenTx struct {
	pgx.Tx
	rows pgx.Rows
}

func (t brokenTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return t.rows, nil
}

func TestListQueriesSurfaceMidIterationErrors(t *testing.T) {
	connErr := errors.New("unexpected EOF")
	ctx := TxContext(context.Background(), brokenTx{rows: brokenRows{err: connErr}})

	t.Run("recent attendance records", func(t *testing.T) {
		records, err := NewAttendanceRepository(nil).GetRecent(ctx, "staff-1", 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, records)
	})

	t.Run("break intervals", func(t *testing.T) {
		intervals, err := NewBreakRepository(nil).ListByAttendance(ctx, "att-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, intervals)
	})

	t.Run("staff list", func(t *testing.T) {
		members, err := NewStaffRepository(nil).List(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, members)
	})

	t.Run("daily report rows", func(t *testing.T) {
		rows, err := NewReportRepository(nil).GetDailyRows(ctx, "2026-08-28")
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, rows)
	})

	t.Run("late check-ins", func(t *testing.T) {
		entries, err := NewReportRepository(nil).GetLateCheckIns(ctx, "2026-08-28")
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, entries)
	})

	t.Run("location history", func(t *testing.T) {
		entries, err := NewReportRepository(nil).GetLocationHistory(ctx, "2026-08-28")
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, entries)
	})
}
