// Package ledger holds the money: an arena of accounts addressed by integer
// id, and the append-only transaction audit trail, partitioned by run id so
// real-game records and forecast-simulation records never mix. Settlement
// policy (liquidation, partial payment, bankruptcy) lives in the game
// package; this layer is pure bookkeeping.
package ledger

// AccountID indexes an account within a Ledger.
type AccountID int

// Account is a balance cell owned by one game entity. The owner is recorded
// by name only; the ledger never reaches back into game state.
type Account struct {
	ID      AccountID
	Owner   string
	Balance int
}

// Transaction is one audit record. Paid may be less than Requested when the
// payer could not raise the full amount (a partial payment). Simulation
// records never move money; they exist so forecasting code can read what
// would have been paid.
type Transaction struct {
	ID         string
	RunID      string
	From       AccountID
	To         AccountID
	Requested  int
	Paid       int
	Reason     string
	Completed  bool
	Reversed   bool
	Simulation bool
}

// Ledger is the account arena plus the audit trail. Completed records are
// optionally teed into a Journal sink for offline analytics.
type Ledger struct {
	accounts []Account
	records  []Transaction
	byRun    map[string][]int
	journal  Journal
}

func New() *Ledger {
	return &Ledger{byRun: make(map[string][]int)}
}

// SetJournal attaches a persistent sink. Records appended after this call
// are forwarded to it; clones made for simulation do not inherit it.
func (l *Ledger) SetJournal(j Journal) { l.journal = j }

// Open creates an account for the named owner and returns its id.
func (l *Ledger) Open(owner string, balance int) AccountID {
	id := AccountID(len(l.accounts))
	l.accounts = append(l.accounts, Account{ID: id, Owner: owner, Balance: balance})
	return id
}

// Account returns a copy of the account record.
func (l *Ledger) Account(id AccountID) Account { return l.accounts[id] }

// Balance returns the current balance of the account.
func (l *Ledger) Balance(id AccountID) int { return l.accounts[id].Balance }

// Credit adds amount to the account. amount must be non-negative.
func (l *Ledger) Credit(id AccountID, amount int) {
	l.accounts[id].Balance += amount
}

// Debit removes amount from the account. The caller guarantees the account
// holds at least amount; the transaction layer arranges that via liquidation
// before debiting.
func (l *Ledger) Debit(id AccountID, amount int) {
	l.accounts[id].Balance -= amount
}

// Record appends a transaction to the audit trail and forwards it to the
// journal sink if one is attached.
func (l *Ledger) Record(t Transaction) {
	idx := len(l.records)
	l.records = append(l.records, t)
	l.byRun[t.RunID] = append(l.byRun[t.RunID], idx)
	if l.journal != nil {
		_ = l.journal.Record(t)
	}
}

// Run returns the transactions recorded under the given run id, in order.
func (l *Ledger) Run(runID string) []Transaction {
	idxs := l.byRun[runID]
	out := make([]Transaction, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, l.records[i])
	}
	return out
}

// ByAccount returns every transaction touching the account, in order.
func (l *Ledger) ByAccount(id AccountID) []Transaction {
	var out []Transaction
	for _, t := range l.records {
		if t.From == id || t.To == id {
			out = append(out, t)
		}
	}
	return out
}

// Transactions returns the full audit trail in order.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// Reverse undoes a completed transaction by id, moving the paid amount back
// and marking the record reversed.
func (l *Ledger) Reverse(id string) bool {
	for i := range l.records {
		t := &l.records[i]
		if t.ID != id {
			continue
		}
		if !t.Completed || t.Reversed || t.Simulation {
			return false
		}
		l.Debit(t.To, t.Paid)
		l.Credit(t.From, t.Paid)
		t.Reversed = true
		return true
	}
	return false
}

// Total sums every account balance. Useful for conservation checks: the
// total only changes if money is created or destroyed.
func (l *Ledger) Total() int {
	sum := 0
	for _, a := range l.accounts {
		sum += a.Balance
	}
	return sum
}

// Clone returns an independent copy of the accounts with an empty audit
// trail and no journal. Simulation clones record into their own partitions
// and are discarded wholesale, so the history need not travel with them.
func (l *Ledger) Clone() *Ledger {
	c := New()
	c.accounts = make([]Account, len(l.accounts))
	copy(c.accounts, l.accounts)
	return c
}
