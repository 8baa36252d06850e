package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/brickmgr/brick"
)

func TestInventoryMarkdown(t *testing.T) {
	items := []brick.Item{{
		ID:        "0195a8b2-3c4d-4e5f-8a9b-0c1d2e3f4a5b",
		Name:      "Oak chair",
		Category:  brick.CategoryFurniture,
		Condition: brick.ConditionGood,
		CostPrice: brick.M(100),
		SalePrice: brick.M(250),
		Status:    brick.StatusAvailable,
	}}

	out := InventoryMarkdown(items)
	for _, want := range []string{"# Inventory", "Oak chair", "furniture", "R$100,00", "R$250,00", "available"} {
		if !strings.Contains(out, want) {
			t.Errorf("inventory markdown missing %q:\n%s", want, out)
		}
	}
	// Tables show the abbreviated id, not the full uuid.
	if !strings.Contains(out, "0195a8b2") || strings.Contains(out, "0195a8b2-3c4d") {
		t.Errorf("inventory markdown should abbreviate the id:\n%s", out)
	}
}

func TestInventoryMarkdownEmpty(t *testing.T) {
	out := InventoryMarkdown(nil)
	if !strings.Contains(out, "No items.") {
		t.Errorf("empty inventory markdown:\n%s", out)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l := brick.NewLedger()
	item, err := l.AddItem(brick.ItemDraft{Name: "Table", Category: brick.CategoryFurniture, Condition: brick.ConditionGood, CostPrice: brick.M(100), SalePrice: brick.M(150)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.CompleteSale(item.ID, brick.M(130), brick.PayPix); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddExpense(brick.ExpenseDraft{Description: "Rent", Amount: brick.M(50), Category: brick.ExpenseRent, Date: brick.MustParseDate("2024-01-10")}); err != nil {
		t.Fatal(err)
	}

	on := brick.DateOf(time.Now())
	out := SummaryMarkdown(brick.NewSummary(l, on, 6))
	for _, want := range []string{"BrickManager Summary", "## Monthly", "rent", "R$50,00"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary markdown missing %q:\n%s", want, out)
		}
	}
}

func TestSaleMarkdown(t *testing.T) {
	out := SaleMarkdown(brick.Sale{
		ID:            "sale-1",
		ItemName:      "Radio",
		SaleDate:      time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC),
		Amount:        brick.M(60),
		PaymentMethod: brick.PayCash,
		Profit:        brick.M(-40),
	})
	for _, want := range []string{"Sold: Radio", "2024-03-02", "R$60,00", "-R$40,00"} {
		if !strings.Contains(out, want) {
			t.Errorf("sale markdown missing %q:\n%s", want, out)
		}
	}
}
