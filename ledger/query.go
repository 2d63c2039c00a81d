package ledger

import (
	"database/sql"
	"fmt"
)

const selectColumns = `id, run_id, from_account, to_account, requested, paid, reason, completed, reversed, simulation`

// GetTransaction returns a single audit record by id.
func (j *SQLiteJournal) GetTransaction(id string) (Transaction, error) {
	row := j.db.QueryRow(`
		SELECT `+selectColumns+`
		FROM transactions
		WHERE id = ?`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Transaction{}, fmt.Errorf("transaction %q not found", id)
		}
		return Transaction{}, err
	}
	return t, nil
}

// ListByRun returns every record in the given run partition, insertion order.
func (j *SQLiteJournal) ListByRun(runID string) ([]Transaction, error) {
	rows, err := j.db.Query(`
		SELECT `+selectColumns+`
		FROM transactions
		WHERE run_id = ?
		ORDER BY id ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NetFlow returns the signed sum of paid amounts for the account within a
// run: credits positive, debits negative.
func (j *SQLiteJournal) NetFlow(runID string, account AccountID) (int, error) {
	row := j.db.QueryRow(`
		SELECT COALESCE(SUM(CASE WHEN to_account = ? THEN paid ELSE 0 END), 0)
		     - COALESCE(SUM(CASE WHEN from_account = ? THEN paid ELSE 0 END), 0)
		FROM transactions
		WHERE run_id = ?`, account, account, runID)

	var net int
	if err := row.Scan(&net); err != nil {
		return 0, err
	}
	return net, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (Transaction, error) {
	var t Transaction
	err := row.Scan(
		&t.ID,
		&t.RunID,
		&t.From,
		&t.To,
		&t.Requested,
		&t.Paid,
		&t.Reason,
		&t.Completed,
		&t.Reversed,
		&t.Simulation,
	)
	return t, err
}
