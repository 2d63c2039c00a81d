package ledger

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) Record(t Transaction) error {
	_, err := j.db.Exec(`
		INSERT INTO transactions
		(id, run_id, from_account, to_account, requested, paid, reason, completed, reversed, simulation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.RunID, t.From, t.To, t.Requested, t.Paid,
		t.Reason, t.Completed, t.Reversed, t.Simulation,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
