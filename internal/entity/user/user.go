package user

// Record is the single owner of the ledger. Only the PIN hash is kept.
type Record struct {
	ID      int64
	PinHash string
}
