package brick

import (
	"errors"
	"slices"
	"testing"
	"time"
)

// fixedClock pins the ledger clock for deterministic timestamps.
func fixedClock(l *Ledger, at time.Time) { l.now = func() time.Time { return at } }

func testItem(name string, cost float64) ItemDraft {
	return ItemDraft{
		Name:      name,
		Category:  CategoryFurniture,
		Condition: ConditionGood,
		CostPrice: M(cost),
		SalePrice: M(cost * 2),
	}
}

func TestAddItem(t *testing.T) {
	l := NewLedger()
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	fixedClock(l, at)

	item, err := l.AddItem(testItem("Oak chair", 100))
	if err != nil {
		t.Fatal(err)
	}
	if item.ID == "" {
		t.Error("AddItem should assign an id")
	}
	if item.Status != StatusAvailable {
		t.Errorf("new item status = %v, want available", item.Status)
	}
	if !item.DateAdded.Equal(at) {
		t.Errorf("DateAdded = %v, want %v", item.DateAdded, at)
	}

	got, err := l.Item(item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Oak chair" {
		t.Errorf("Item() = %v, want the added item", got)
	}
}

func TestAddItemValidation(t *testing.T) {
	l := NewLedger()

	tests := []struct {
		name  string
		draft ItemDraft
	}{
		{"empty name", ItemDraft{Category: CategoryOther, Condition: ConditionGood}},
		{"unknown category", ItemDraft{Name: "x", Category: "vehicles", Condition: ConditionGood}},
		{"unknown condition", ItemDraft{Name: "x", Category: CategoryOther, Condition: "used"}},
		{"negative cost", ItemDraft{Name: "x", Category: CategoryOther, Condition: ConditionGood, CostPrice: M(-1)}},
		{"negative price", ItemDraft{Name: "x", Category: CategoryOther, Condition: ConditionGood, SalePrice: M(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.AddItem(tt.draft)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("AddItem error = %v, want a ValidationError", err)
			}
		})
	}
	if n := len(slices.Collect(l.Items())); n != 0 {
		t.Errorf("rejected drafts should not be added, got %d items", n)
	}
}

func TestUpdateItem(t *testing.T) {
	l := NewLedger()
	item, _ := l.AddItem(testItem("Lamp", 20))

	name := "Brass lamp"
	price := M(80)
	updated, err := l.UpdateItem(item.ID, ItemPatch{Name: &name, SalePrice: &price})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Brass lamp" || !updated.SalePrice.Equal(M(80)) {
		t.Errorf("patched item = %+v", updated)
	}
	if updated.ID != item.ID || !updated.DateAdded.Equal(item.DateAdded) {
		t.Error("patch must not change the id or the creation date")
	}
	// Unpatched fields stay.
	if !updated.CostPrice.Equal(M(20)) {
		t.Errorf("cost price changed to %v", updated.CostPrice)
	}

	// Sold is not a patchable status.
	sold := StatusSold
	if _, err := l.UpdateItem(item.ID, ItemPatch{Status: &sold}); err == nil {
		t.Error("patching status to sold should be rejected")
	}

	if _, err := l.UpdateItem("no-such-id", ItemPatch{Name: &name}); err == nil {
		t.Error("updating a missing item should fail")
	} else {
		var nerr *NotFoundError
		if !errors.As(err, &nerr) {
			t.Errorf("error = %v, want a NotFoundError", err)
		}
	}
}

func TestCompleteSale(t *testing.T) {
	l := NewLedger()
	at := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	fixedClock(l, at)
	item, _ := l.AddItem(testItem("Table", 100))

	sale, err := l.CompleteSale(item.ID, M(130), PayPix)
	if err != nil {
		t.Fatal(err)
	}
	if !sale.Amount.Equal(M(130)) || !sale.Profit.Equal(M(30)) {
		t.Errorf("sale amount %v profit %v, want 130 and 30", sale.Amount, sale.Profit)
	}
	if sale.ItemID != item.ID || sale.ItemName != "Table" {
		t.Errorf("sale should snapshot the item: %+v", sale)
	}
	if !sale.SaleDate.Equal(at) {
		t.Errorf("SaleDate = %v, want %v", sale.SaleDate, at)
	}

	got, _ := l.Item(item.ID)
	if got.Status != StatusSold {
		t.Errorf("item status after sale = %v, want sold", got.Status)
	}
}

func TestCompleteSaleAtALoss(t *testing.T) {
	l := NewLedger()
	item, _ := l.AddItem(testItem("Broken radio", 100))

	sale, err := l.CompleteSale(item.ID, M(60), PayCash)
	if err != nil {
		t.Fatal(err)
	}
	if !sale.Profit.Equal(M(-40)) {
		t.Errorf("profit = %v, want -40: selling at a loss is allowed", sale.Profit)
	}
}

func TestCompleteSaleRejections(t *testing.T) {
	l := NewLedger()
	item, _ := l.AddItem(testItem("Sofa", 300))

	if _, err := l.CompleteSale("no-such-id", M(10), PayCash); err == nil {
		t.Error("selling a missing item should fail")
	}
	if _, err := l.CompleteSale(item.ID, M(-10), PayCash); err == nil {
		t.Error("a negative sale amount should be rejected")
	}
	if _, err := l.CompleteSale(item.ID, M(10), "barter"); err == nil {
		t.Error("an unknown payment method should be rejected")
	}

	// First sale succeeds, second must hit the lifecycle rule.
	if _, err := l.CompleteSale(item.ID, M(350), PayCard); err != nil {
		t.Fatal(err)
	}
	_, err := l.CompleteSale(item.ID, M(350), PayCard)
	var serr *InvalidStateError
	if !errors.As(err, &serr) {
		t.Errorf("double sell error = %v, want an InvalidStateError", err)
	}
	if n := len(slices.Collect(l.Sales())); n != 1 {
		t.Errorf("sales recorded = %d, want 1", n)
	}
}

func TestDeleteItemKeepsSales(t *testing.T) {
	l := NewLedger()
	item, _ := l.AddItem(testItem("Mirror", 50))
	sale, _ := l.CompleteSale(item.ID, M(75), PayCash)

	if err := l.DeleteItem(item.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Item(item.ID); err == nil {
		t.Error("item should be gone")
	}

	sales := slices.Collect(l.Sales())
	if len(sales) != 1 || sales[0].ID != sale.ID || sales[0].ItemName != "Mirror" {
		t.Errorf("sales after item deletion = %+v, want the original sale intact", sales)
	}
	if !l.TotalRevenue().Equal(M(75)) {
		t.Errorf("revenue after item deletion = %v, want 75", l.TotalRevenue())
	}
}

func TestAddExpense(t *testing.T) {
	l := NewLedger()
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	fixedClock(l, at)

	expense, err := l.AddExpense(ExpenseDraft{Description: "Shop rent", Amount: M(500), Category: ExpenseRent})
	if err != nil {
		t.Fatal(err)
	}
	if expense.Date != DateOf(at) {
		t.Errorf("zero draft date should default to today, got %v", expense.Date)
	}

	dated, err := l.AddExpense(ExpenseDraft{Description: "Van fuel", Amount: M(80), Category: ExpenseFreight, Date: MustParseDate("2024-02-01")})
	if err != nil {
		t.Fatal(err)
	}
	if dated.Date != MustParseDate("2024-02-01") {
		t.Errorf("explicit date lost, got %v", dated.Date)
	}

	if _, err := l.AddExpense(ExpenseDraft{Amount: M(10), Category: ExpenseOther}); err == nil {
		t.Error("an expense without description should be rejected")
	}
	if _, err := l.AddExpense(ExpenseDraft{Description: "x", Amount: M(-10), Category: ExpenseOther}); err == nil {
		t.Error("a negative expense should be rejected")
	}
	if _, err := l.AddExpense(ExpenseDraft{Description: "x", Amount: M(10), Category: "bribes"}); err == nil {
		t.Error("an unknown expense category should be rejected")
	}
}

func TestDeleteExpense(t *testing.T) {
	l := NewLedger()
	expense, _ := l.AddExpense(ExpenseDraft{Description: "Tape", Amount: M(5), Category: ExpenseTools})

	if err := l.DeleteExpense(expense.ID); err != nil {
		t.Fatal(err)
	}
	if err := l.DeleteExpense(expense.ID); err == nil {
		t.Error("deleting twice should fail")
	}
	if n := len(slices.Collect(l.Expenses())); n != 0 {
		t.Errorf("expenses left = %d, want 0", n)
	}
}

func TestItemsFilters(t *testing.T) {
	l := NewLedger()
	l.AddItem(ItemDraft{Name: "Oak chair", Category: CategoryFurniture, Condition: ConditionGood, Description: "solid oak"})
	l.AddItem(ItemDraft{Name: "TV stand", Category: CategoryFurniture, Condition: ConditionFair})
	radio, _ := l.AddItem(ItemDraft{Name: "Radio", Category: CategoryElectronics, Condition: ConditionPoor})
	l.CompleteSale(radio.ID, M(10), PayCash)

	names := func(filters ...func(Item) bool) []string {
		var out []string
		for item := range l.Items(filters...) {
			out = append(out, item.Name)
		}
		return out
	}

	tests := []struct {
		name     string
		filters  []func(Item) bool
		expected []string
	}{
		{"no filter", nil, []string{"Oak chair", "TV stand", "Radio"}},
		{"by category", []func(Item) bool{ByCategory(CategoryFurniture)}, []string{"Oak chair", "TV stand"}},
		{"by status", []func(Item) bool{ByStatus(StatusSold)}, []string{"Radio"}},
		{"by query on name", []func(Item) bool{ByQuery("chair")}, []string{"Oak chair"}},
		{"by query on description", []func(Item) bool{ByQuery("OAK")}, []string{"Oak chair"}},
		{"combined", []func(Item) bool{ByCategory(CategoryFurniture), ByQuery("stand")}, []string{"TV stand"}},
		{"no match", []func(Item) bool{ByQuery("piano")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := names(tt.filters...); !slices.Equal(got, tt.expected) {
				t.Errorf("Items() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResolveItemID(t *testing.T) {
	l := NewLedger()
	l.items = []Item{
		{ID: "aaaa1111", Name: "one"},
		{ID: "aaab2222", Name: "two"},
		{ID: "bbbb3333", Name: "three"},
	}

	tests := []struct {
		prefix   string
		expected string
		err      bool
	}{
		{"bbbb", "bbbb3333", false},
		{"aaaa1111", "aaaa1111", false},
		{"aaab", "aaab2222", false},
		{"aaa", "", true}, // ambiguous
		{"zzz", "", true}, // no match
	}

	for _, tt := range tests {
		got, err := l.ResolveItemID(tt.prefix)
		if tt.err {
			if err == nil {
				t.Errorf("ResolveItemID(%q) = %q, want error", tt.prefix, got)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ResolveItemID(%q) = %q, %v, want %q", tt.prefix, got, err, tt.expected)
		}
	}
}

func TestSalesNewestFirst(t *testing.T) {
	l := NewLedger()
	days := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, day := range days {
		fixedClock(l, day)
		item, _ := l.AddItem(testItem("item", float64(i+1)))
		if _, err := l.CompleteSale(item.ID, M(10), PayCash); err != nil {
			t.Fatal(err)
		}
	}

	sales := l.SalesNewestFirst()
	for i := 1; i < len(sales); i++ {
		if sales[i].SaleDate.After(sales[i-1].SaleDate) {
			t.Errorf("sales out of order at %d: %v after %v", i, sales[i].SaleDate, sales[i-1].SaleDate)
		}
	}
}

// recordingSaver counts write-through notifications.
type recordingSaver struct {
	saves int
	err   error
}

func (s *recordingSaver) Save(*Ledger) error { s.saves++; return s.err }

func TestWriteThrough(t *testing.T) {
	l := NewLedger()
	saver := &recordingSaver{}
	l.SetSaver(saver)

	item, _ := l.AddItem(testItem("Desk", 40))
	l.CompleteSale(item.ID, M(90), PayCash)
	l.AddExpense(ExpenseDraft{Description: "Wax", Amount: M(3), Category: ExpenseMaintenance})

	if saver.saves != 3 {
		t.Errorf("saves = %d, want one per mutation (3)", saver.saves)
	}

	// Rejected mutations must not notify.
	l.CompleteSale(item.ID, M(90), PayCash)
	if saver.saves != 3 {
		t.Errorf("a rejected mutation should not persist, saves = %d", saver.saves)
	}

	// A failing save keeps the in-memory mutation.
	saver.err = errors.New("disk full")
	if _, err := l.AddItem(testItem("Shelf", 15)); err != nil {
		t.Fatalf("a failing saver must not fail the mutation: %v", err)
	}
	if n := len(slices.Collect(l.Items())); n != 3 {
		t.Errorf("items = %d, want 3", n)
	}
}
