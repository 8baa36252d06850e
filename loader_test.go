package brick

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestLoadLedgerMissingStore(t *testing.T) {
	ledger, err := LoadLedger(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("a missing store should load as empty: %v", err)
	}
	if n := len(slices.Collect(ledger.Items())); n != 0 {
		t.Errorf("items = %d, want 0", n)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")

	l := NewLedger()
	fixedClock(l, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	item, err := l.AddItem(testItem("Oak chair", 100))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.CompleteSale(item.ID, M(130), PayPix); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddExpense(ExpenseDraft{Description: "Rent", Amount: M(50), Category: ExpenseRent, Date: MustParseDate("2024-01-10")}); err != nil {
		t.Fatal(err)
	}

	if err := SaveLedger(dir, l); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{ItemsFile, SalesFile, ExpensesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("store file %s missing: %v", name, err)
		}
	}

	back, err := LoadLedger(dir)
	if err != nil {
		t.Fatal(err)
	}
	items := slices.Collect(back.Items())
	if len(items) != 1 || items[0].ID != item.ID || items[0].Status != StatusSold {
		t.Errorf("items = %+v", items)
	}
	if !back.TotalRevenue().Equal(M(130)) || !back.GrossProfit().Equal(M(30)) || !back.TotalExpenses().Equal(M(50)) {
		t.Errorf("figures after reload: revenue %v profit %v expenses %v", back.TotalRevenue(), back.GrossProfit(), back.TotalExpenses())
	}
}

func TestLoadLedgerCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SalesFile), []byte("{broken\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadLedger(dir)
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want a DeserializationError", err)
	}
	if derr.Source != SalesFile || derr.Line != 1 {
		t.Errorf("error located at %s:%d, want %s:1", derr.Source, derr.Line, SalesFile)
	}
}

func TestDirSaverWriteThrough(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")

	l := NewLedger()
	l.SetSaver(DirSaver{Dir: dir})
	if _, err := l.AddItem(testItem("Desk", 40)); err != nil {
		t.Fatal(err)
	}

	// The mutation alone must have written the store.
	back, err := LoadLedger(dir)
	if err != nil {
		t.Fatal(err)
	}
	items := slices.Collect(back.Items())
	if len(items) != 1 || items[0].Name != "Desk" {
		t.Errorf("store after write-through = %+v", items)
	}
}
