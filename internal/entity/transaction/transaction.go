package transaction

import (
	"time"

	"max.ks1230/finance-tracker/internal/entity/category"
)

// Transaction amounts are always positive; the sign comes from Type.
// Date is a calendar day stored as UTC midnight.
type Transaction struct {
	ID           int64
	Amount       float64
	Date         time.Time
	Description  string
	Type         category.Type
	CategoryID   int64
	CategoryName string
}

// Filter bounds are inclusive. Nil fields are not applied.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *category.Type
}

func (f Filter) Match(t Transaction) bool {
	if f.StartDate != nil && t.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.Date.After(*f.EndDate) {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	return true
}

// Event kinds published after a successful change.
const (
	KindTransactionCreated = "transaction.created"
	KindTransactionDeleted = "transaction.deleted"
	KindCategoryCreated    = "category.created"
	KindCategoryDeleted    = "category.deleted"
)

type ChangeEvent struct {
	Kind       string    `json:"kind"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
