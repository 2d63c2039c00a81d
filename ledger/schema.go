package ledger

const Schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	from_account INTEGER NOT NULL,
	to_account INTEGER NOT NULL,
	requested INTEGER NOT NULL,
	paid INTEGER NOT NULL,
	reason TEXT NOT NULL,
	completed INTEGER NOT NULL,
	reversed INTEGER NOT NULL,
	simulation INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_run ON transactions(run_id);
`
