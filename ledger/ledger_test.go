package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenAndBalance(t *testing.T) {
	t.Parallel()

	l := New()
	bank := l.Open("Bank", 12755)
	alice := l.Open("Alice", 1500)

	assert.Equal(t, AccountID(0), bank)
	assert.Equal(t, AccountID(1), alice)
	assert.Equal(t, 12755, l.Balance(bank))
	assert.Equal(t, 1500, l.Balance(alice))
	assert.Equal(t, "Alice", l.Account(alice).Owner)
}

func TestCreditDebit(t *testing.T) {
	t.Parallel()

	l := New()
	a := l.Open("Alice", 100)

	l.Credit(a, 50)
	assert.Equal(t, 150, l.Balance(a))

	l.Debit(a, 120)
	assert.Equal(t, 30, l.Balance(a))
}

func TestTotalConservation(t *testing.T) {
	t.Parallel()

	l := New()
	bank := l.Open("Bank", 10000)
	alice := l.Open("Alice", 1500)
	bob := l.Open("Bob", 1500)

	before := l.Total()

	l.Debit(bank, 200)
	l.Credit(alice, 200)
	l.Debit(alice, 75)
	l.Credit(bob, 75)

	assert.Equal(t, before, l.Total())
}

func TestRunPartitions(t *testing.T) {
	t.Parallel()

	l := New()

	l.Record(Transaction{ID: "t1", RunID: "real", Paid: 10, Completed: true})
	l.Record(Transaction{ID: "t2", RunID: "sim-abc", Paid: 20, Simulation: true})
	l.Record(Transaction{ID: "t3", RunID: "real", Paid: 30, Completed: true})

	real := l.Run("real")
	assert.Len(t, real, 2)
	assert.Equal(t, "t1", real[0].ID)
	assert.Equal(t, "t3", real[1].ID)

	sim := l.Run("sim-abc")
	assert.Len(t, sim, 1)
	assert.Equal(t, "t2", sim[0].ID)

	assert.Empty(t, l.Run("sim-unknown"))
	assert.Len(t, l.Transactions(), 3)
}

func TestByAccount(t *testing.T) {
	t.Parallel()

	l := New()
	l.Record(Transaction{ID: "t1", From: 1, To: 2, Paid: 10})
	l.Record(Transaction{ID: "t2", From: 2, To: 3, Paid: 20})
	l.Record(Transaction{ID: "t3", From: 3, To: 1, Paid: 30})

	ts := l.ByAccount(2)
	assert.Len(t, ts, 2)
	assert.Equal(t, "t1", ts[0].ID)
	assert.Equal(t, "t2", ts[1].ID)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	l := New()
	alice := l.Open("Alice", 100)
	bob := l.Open("Bob", 100)

	l.Debit(alice, 40)
	l.Credit(bob, 40)
	l.Record(Transaction{ID: "t1", RunID: "real", From: alice, To: bob, Requested: 40, Paid: 40, Completed: true})

	assert.True(t, l.Reverse("t1"))
	assert.Equal(t, 100, l.Balance(alice))
	assert.Equal(t, 100, l.Balance(bob))
	assert.True(t, l.Run("real")[0].Reversed)

	// Already reversed.
	assert.False(t, l.Reverse("t1"))
}

func TestReverseRefusesPartialAndSimulation(t *testing.T) {
	t.Parallel()

	l := New()
	l.Open("Alice", 100)
	l.Open("Bob", 100)

	l.Record(Transaction{ID: "partial", From: 0, To: 1, Requested: 40, Paid: 25, Completed: false})
	l.Record(Transaction{ID: "sim", From: 0, To: 1, Requested: 40, Paid: 40, Completed: true, Simulation: true})

	assert.False(t, l.Reverse("partial"))
	assert.False(t, l.Reverse("sim"))
	assert.False(t, l.Reverse("missing"))
	assert.Equal(t, 100, l.Balance(0))
	assert.Equal(t, 100, l.Balance(1))
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	l := New()
	alice := l.Open("Alice", 100)
	l.Record(Transaction{ID: "t1", RunID: "real", Paid: 10, Completed: true})

	c := l.Clone()
	assert.Equal(t, 100, c.Balance(alice))
	assert.Empty(t, c.Transactions())

	c.Credit(alice, 50)
	c.Record(Transaction{ID: "s1", RunID: "sim-x", Paid: 5, Simulation: true})

	assert.Equal(t, 100, l.Balance(alice))
	assert.Len(t, l.Transactions(), 1)
	assert.Empty(t, l.Run("sim-x"))
}

type captureJournal struct {
	records []Transaction
	closed  bool
}

func (c *captureJournal) Record(t Transaction) error {
	c.records = append(c.records, t)
	return nil
}

func (c *captureJournal) Close() error { c.closed = true; return nil }

func TestRecordTeesToJournal(t *testing.T) {
	t.Parallel()

	l := New()
	j := &captureJournal{}
	l.SetJournal(j)

	l.Record(Transaction{ID: "t1", RunID: "real", Paid: 10, Completed: true})
	assert.Len(t, j.records, 1)
	assert.Equal(t, "t1", j.records[0].ID)

	// Clones drop the sink.
	c := l.Clone()
	c.Record(Transaction{ID: "s1", RunID: "sim-x", Paid: 5})
	assert.Len(t, j.records, 1)
}
