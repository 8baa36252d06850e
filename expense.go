package brick

import "fmt"

// ExpenseCategory classifies a business expense.
type ExpenseCategory string

const (
	ExpenseRent        ExpenseCategory = "rent"
	ExpenseFreight     ExpenseCategory = "freight"
	ExpenseTools       ExpenseCategory = "tools"
	ExpenseUtilities   ExpenseCategory = "utilities"
	ExpenseMarketing   ExpenseCategory = "marketing"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseOther       ExpenseCategory = "other"
)

// AllExpenseCategories lists every expense category.
var AllExpenseCategories = []ExpenseCategory{
	ExpenseRent, ExpenseFreight, ExpenseTools, ExpenseUtilities,
	ExpenseMarketing, ExpenseMaintenance, ExpenseOther,
}

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	for _, v := range AllExpenseCategories {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown expense category %q", s)
}

// Expense is one business expense. Expenses are immutable after creation
// except for deletion.
type Expense struct {
	ID          string
	Description string
	Amount      Money
	Category    ExpenseCategory
	Date        Date // calendar date, no time-of-day
}

// MarshalJSON writes the expense with a stable field order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// ExpenseDraft carries the user-supplied fields of a new expense.
type ExpenseDraft struct {
	Description string
	Amount      Money
	Category    ExpenseCategory
	Date        Date
}

// Validate checks the draft: a description is required, the amount cannot
// be negative and the category must be known. A zero date is filled with
// today by the ledger, not rejected.
func (d ExpenseDraft) Validate() error {
	if d.Description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if d.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if _, err := ParseExpenseCategory(string(d.Category)); err != nil {
		return &ValidationError{Field: "category", Reason: err.Error()}
	}
	return nil
}
