package ledger

// Journal is a persistent sink for audit records. Implementations must be
// safe to call once per transaction for the lifetime of a game.
type Journal interface {
	Record(Transaction) error
	Close() error
}
