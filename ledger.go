package brick

import (
	"fmt"
	"iter"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Saver persists a full snapshot of a ledger. The ledger notifies its saver
// after every mutation (write-through); a failing save never undoes the
// in-memory mutation.
type Saver interface {
	Save(*Ledger) error
}

// Ledger owns the three collections of BrickManager: the inventory items,
// the sales history and the business expenses. All mutations go through it,
// so the lifecycle rules hold: sales are only created by CompleteSale,
// never edited, never deleted; deleting an item leaves its sales untouched.
//
// A Ledger is not safe for concurrent use. The application is single-user
// and every command runs one mutation to completion before the next.
type Ledger struct {
	items    []Item
	sales    []Sale
	expenses []Expense

	saver Saver

	// now is the clock used to timestamp mutations, overridable in tests.
	now func() time.Time
}

// NewLedger creates an empty ledger with no saver attached.
func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// SetSaver attaches the write-through persistence hook.
func (l *Ledger) SetSaver(s Saver) { l.saver = s }

// persist notifies the saver of the current snapshot. A failure is logged
// and otherwise ignored: the in-memory state stays authoritative until the
// user retries an action.
func (l *Ledger) persist() {
	if l.saver == nil {
		return
	}
	if err := l.saver.Save(l); err != nil {
		log.Printf("warning: could not persist ledger: %v", err)
	}
}

func (l *Ledger) itemIndex(id string) (int, bool) {
	for i := range l.items {
		if l.items[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Item returns the item with this id.
func (l *Ledger) Item(id string) (Item, error) {
	i, ok := l.itemIndex(id)
	if !ok {
		return Item{}, &NotFoundError{Kind: "item", ID: id}
	}
	return l.items[i], nil
}

// AddItem creates a new inventory item from the draft. The ledger assigns
// the id, sets the status to available and timestamps the creation.
func (l *Ledger) AddItem(d ItemDraft) (Item, error) {
	if err := d.Validate(); err != nil {
		return Item{}, err
	}
	item := Item{
		ID:           uuid.NewString(),
		Name:         d.Name,
		Category:     d.Category,
		Condition:    d.Condition,
		CostPrice:    d.CostPrice,
		SalePrice:    d.SalePrice,
		Status:       StatusAvailable,
		Description:  d.Description,
		AcquiredFrom: d.AcquiredFrom,
		DateAdded:    l.now(),
	}
	l.items = append(l.items, item)
	l.persist()
	return item, nil
}

// UpdateItem merges the patch into the item with this id. The id and the
// creation timestamp cannot change.
func (l *Ledger) UpdateItem(id string, p ItemPatch) (Item, error) {
	i, ok := l.itemIndex(id)
	if !ok {
		return Item{}, &NotFoundError{Kind: "item", ID: id}
	}
	updated, err := p.apply(l.items[i])
	if err != nil {
		return Item{}, err
	}
	l.items[i] = updated
	l.persist()
	return updated, nil
}

// DeleteItem removes the item with this id. Historical sales referencing it
// are kept as they are: they carry their own snapshot of the item name.
func (l *Ledger) DeleteItem(id string) error {
	i, ok := l.itemIndex(id)
	if !ok {
		return &NotFoundError{Kind: "item", ID: id}
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.persist()
	return nil
}

// CompleteSale turns an available item into a sold one and records the
// sale. Both mutations happen in memory before the single persist
// notification, so the two collections cannot diverge.
//
// The profit is fixed at sale time as amount minus the item's cost price.
// A negative profit (a loss) is recorded, not rejected.
func (l *Ledger) CompleteSale(itemID string, amount Money, method PaymentMethod) (Sale, error) {
	i, ok := l.itemIndex(itemID)
	if !ok {
		return Sale{}, &NotFoundError{Kind: "item", ID: itemID}
	}
	item := l.items[i]
	if item.Status != StatusAvailable {
		return Sale{}, &InvalidStateError{Kind: "item", ID: itemID, Reason: "not available for sale (status " + string(item.Status) + ")"}
	}
	if amount.IsNegative() {
		return Sale{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Sale{}, &ValidationError{Field: "payment method", Reason: err.Error()}
	}
	sale := Sale{
		ID:            uuid.NewString(),
		ItemID:        item.ID,
		ItemName:      item.Name,
		SaleDate:      l.now(),
		Amount:        amount,
		PaymentMethod: method,
		Profit:        amount.Sub(item.CostPrice),
	}
	l.sales = append(l.sales, sale)
	l.items[i].Status = StatusSold
	l.persist()
	return sale, nil
}

// AddExpense records a new business expense. A zero date defaults to today.
func (l *Ledger) AddExpense(d ExpenseDraft) (Expense, error) {
	if err := d.Validate(); err != nil {
		return Expense{}, err
	}
	if d.Date.IsZero() {
		d.Date = DateOf(l.now())
	}
	expense := Expense{
		ID:          uuid.NewString(),
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        d.Date,
	}
	l.expenses = append(l.expenses, expense)
	l.persist()
	return expense, nil
}

// DeleteExpense removes the expense with this id.
func (l *Ledger) DeleteExpense(id string) error {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			l.persist()
			return nil
		}
	}
	return &NotFoundError{Kind: "expense", ID: id}
}

// Expense returns the expense with this id.
func (l *Ledger) Expense(id string) (Expense, error) {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			return l.expenses[i], nil
		}
	}
	return Expense{}, &NotFoundError{Kind: "expense", ID: id}
}

// Items returns an iterator over the inventory, in insertion order,
// yielding only items accepted by every filter.
func (l *Ledger) Items(filters ...func(Item) bool) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, item := range l.items {
			accept := true
			for _, filter := range filters {
				if !filter(item) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Sales returns an iterator over the sales history in recording order
// (chronological, since sales are timestamped at creation).
func (l *Ledger) Sales() iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if !yield(s) {
				return
			}
		}
	}
}

// Expenses returns an iterator over the expenses in recording order.
func (l *Ledger) Expenses() iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range l.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

// SalesNewestFirst returns the sales history in reverse-chronological
// order, the order the history view displays.
func (l *Ledger) SalesNewestFirst() []Sale {
	out := make([]Sale, len(l.sales))
	copy(out, l.sales)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out
}

// ExpensesNewestFirst returns the expenses in reverse-chronological order
// by date.
func (l *Ledger) ExpensesNewestFirst() []Expense {
	out := make([]Expense, len(l.expenses))
	copy(out, l.expenses)
	sort.SliceStable(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out
}

// ResolveItemID returns the full id of the unique item whose id starts
// with prefix, so that commands can take the abbreviated ids shown in
// tables. NotFoundError when nothing matches, ValidationError when the
// prefix is ambiguous.
func (l *Ledger) ResolveItemID(prefix string) (string, error) {
	var found string
	for i := range l.items {
		if strings.HasPrefix(l.items[i].ID, prefix) {
			if found != "" {
				return "", &ValidationError{Field: "id", Reason: fmt.Sprintf("%q matches more than one item", prefix)}
			}
			found = l.items[i].ID
		}
	}
	if found == "" {
		return "", &NotFoundError{Kind: "item", ID: prefix}
	}
	return found, nil
}

// ResolveExpenseID is ResolveItemID for expenses.
func (l *Ledger) ResolveExpenseID(prefix string) (string, error) {
	var found string
	for i := range l.expenses {
		if strings.HasPrefix(l.expenses[i].ID, prefix) {
			if found != "" {
				return "", &ValidationError{Field: "id", Reason: fmt.Sprintf("%q matches more than one expense", prefix)}
			}
			found = l.expenses[i].ID
		}
	}
	if found == "" {
		return "", &NotFoundError{Kind: "expense", ID: prefix}
	}
	return found, nil
}

// ByCategory returns a predicate that keeps items of this exact category.
func ByCategory(c Category) func(Item) bool {
	return func(i Item) bool { return i.Category == c }
}

// ByStatus returns a predicate that keeps items in this status.
func ByStatus(s ItemStatus) func(Item) bool {
	return func(i Item) bool { return i.Status == s }
}

// ByQuery returns a predicate that keeps items whose name or description
// contains the query, case-insensitively. An empty query keeps everything.
func ByQuery(query string) func(Item) bool {
	q := strings.ToLower(query)
	return func(i Item) bool {
		return q == "" ||
			strings.Contains(strings.ToLower(i.Name), q) ||
			strings.Contains(strings.ToLower(i.Description), q)
	}
}
