package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestSQLite(t *testing.T) (*SQLiteJournal, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name = 'transactions'`)
	assert.NoError(t, err)
	defer rows.Close()

	assert.True(t, rows.Next())
	assert.NoError(t, rows.Err())
}

func TestSQLiteRecordRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := Transaction{
		ID:        "01ABC",
		RunID:     "real",
		From:      2,
		To:        0,
		Requested: 200,
		Paid:      150,
		Reason:    "rent on Mayfair",
		Completed: false,
	}
	assert.NoError(t, j.Record(rec))

	got, err := j.GetTransaction("01ABC")
	assert.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestSQLiteGetTransactionMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.GetTransaction("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteListByRun(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	// ULIDs are lexically ordered, so insertion order survives ORDER BY id.
	assert.NoError(t, j.Record(Transaction{ID: "01A", RunID: "real", Paid: 10, Completed: true}))
	assert.NoError(t, j.Record(Transaction{ID: "01B", RunID: "sim-x", Paid: 20, Simulation: true}))
	assert.NoError(t, j.Record(Transaction{ID: "01C", RunID: "real", Paid: 30, Completed: true}))

	real, err := j.ListByRun("real")
	assert.NoError(t, err)
	assert.Len(t, real, 2)
	assert.Equal(t, "01A", real[0].ID)
	assert.Equal(t, "01C", real[1].ID)

	sim, err := j.ListByRun("sim-x")
	assert.NoError(t, err)
	assert.Len(t, sim, 1)
	assert.True(t, sim[0].Simulation)

	none, err := j.ListByRun("sim-y")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteNetFlow(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	assert.NoError(t, j.Record(Transaction{ID: "01A", RunID: "real", From: 0, To: 2, Paid: 200, Completed: true}))
	assert.NoError(t, j.Record(Transaction{ID: "01B", RunID: "real", From: 2, To: 3, Paid: 50, Completed: true}))
	assert.NoError(t, j.Record(Transaction{ID: "01C", RunID: "sim-x", From: 2, To: 0, Paid: 999, Simulation: true}))

	net, err := j.NetFlow("real", 2)
	assert.NoError(t, err)
	assert.Equal(t, 150, net)

	net, err = j.NetFlow("real", 3)
	assert.NoError(t, err)
	assert.Equal(t, 50, net)

	// Empty partition sums to zero.
	net, err = j.NetFlow("sim-other", 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, net)
}
