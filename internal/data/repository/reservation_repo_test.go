package repository

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"facility-booking/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDB hands out ids from an atomic counter on INSERT..RETURNING and
// records every statement, so tests can prove id assignment never reads
// the table.
type fakeDB struct {
	idSeq int64

	mu         sync.Mutex
	statements []string
}

func (f *fakeDB) record(sql string) {
	f.mu.Lock()
	f.statements = append(f.statements, sql)
	f.mu.Unlock()
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql)
	return nil, pgx.ErrNoRows
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.record(sql)
	return &fakeRow{db: f, sql: sql}
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return &fakeTx{db: f}, nil
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }
func (f *fakeDB) Close()                         {}

type fakeRow struct {
	db  *fakeDB
	sql string
}

func (r *fakeRow) Scan(dest ...any) error {
	if strings.Contains(r.sql, "RETURNING id") {
		if id, ok := dest[0].(*int64); ok {
			*id = atomic.AddInt64(&r.db.idSeq, 1)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *fakeTx) Commit(ctx context.Context) error          { return nil }
func (t *fakeTx) Rollback(ctx context.Context) error        { return nil }

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, arguments...)
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *fakeTx) Conn() *pgx.Conn { return nil }

func TestCreate_ConcurrentWritersGetDistinctIDs(t *testing.T) {
	db := &fakeDB{}
	repo := NewStudioReservationRepository(db, zap.NewNop())

	const writers = 20
	ids := make(chan int64, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := &entity.StudioReservation{
				ReservationCore: entity.ReservationCore{UserID: 5, Day: "2026-09-01", Start: "10:00", End: "12:00"},
				StudioID:        1,
				Title:           "Standup",
			}
			if err := repo.Create(context.Background(), res, nil, nil); err == nil {
				ids <- res.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	require.Len(t, seen, writers)

	// Id assignment is the store's job: no statement may read the
	// current maximum back first.
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, sql := range db.statements {
		assert.NotContains(t, strings.ToLower(sql), "max(", "id must come from the sequence, not a table scan")
	}
}

func TestCreate_LinksShareTheReservationSlot(t *testing.T) {
	db := &fakeDB{}
	repo := NewStudioReservationRepository(db, zap.NewNop())

	res := &entity.StudioReservation{
		ReservationCore: entity.ReservationCore{UserID: 5, Day: "2026-09-01", Start: "10:00", End: "12:00"},
		StudioID:        1,
		Title:           "Standup",
	}
	require.NoError(t, repo.Create(context.Background(), res, []int64{7, 8}, []int64{9}))
	assert.Equal(t, int64(1), res.ID)

	var teamInserts, equipmentInserts int
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, sql := range db.statements {
		if strings.Contains(sql, "INSERT INTO reservation_teams") {
			teamInserts++
		}
		if strings.Contains(sql, "INSERT INTO reservation_equipment") {
			equipmentInserts++
		}
	}
	assert.Equal(t, 2, teamInserts)
	assert.Equal(t, 1, equipmentInserts)
}
