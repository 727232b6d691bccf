package category

import "strings"

type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

func ParseType(s string) (Type, bool) {
	switch t := Type(strings.TrimSpace(s)); t {
	case Income, Expense:
		return t, true
	}
	return "", false
}

type Category struct {
	ID   int64
	Name string
	Type Type
}

// Defaults are seeded into an empty store on first start.
func Defaults() []Category {
	return []Category{
		{Name: "Salary", Type: Income},
		{Name: "Freelance", Type: Income},
		{Name: "Food", Type: Expense},
		{Name: "Rent", Type: Expense},
		{Name: "Transport", Type: Expense},
		{Name: "Entertainment", Type: Expense},
	}
}
