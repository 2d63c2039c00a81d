package ledger

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSVJournal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audit.csv")

	j, err := NewCSV(path)
	assert.NoError(t, err)

	assert.NoError(t, j.Record(Transaction{
		ID: "01A", RunID: "real", From: 2, To: 0,
		Requested: 60, Paid: 60, Reason: "buy Old Kent Road", Completed: true,
	}))
	assert.NoError(t, j.Record(Transaction{
		ID: "01B", RunID: "real", From: 3, To: 2,
		Requested: 24, Paid: 10, Reason: "rent on Old Kent Road",
	}))
	assert.NoError(t, j.Close())

	f, err := os.Open(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	rows, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "run_id", "from", "to", "requested", "paid", "reason", "completed", "reversed", "simulation"}, rows[0])
	assert.Equal(t, []string{"01A", "real", "2", "0", "60", "60", "buy Old Kent Road", "true", "false", "false"}, rows[1])
	assert.Equal(t, []string{"01B", "real", "3", "2", "24", "10", "rent on Old Kent Road", "false", "false", "false"}, rows[2])
}
