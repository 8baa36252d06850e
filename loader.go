package brick

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Store file names, the three logical keys of BrickManager's persistence.
const (
	ItemsFile    = "items.jsonl"
	SalesFile    = "sales.jsonl"
	ExpensesFile = "expenses.jsonl"
)

// LoadLedger reads a full ledger from the store directory. A missing
// directory or a missing file yields an empty collection, not an error;
// malformed content yields a DeserializationError.
func LoadLedger(dir string) (*Ledger, error) {
	ledger := NewLedger()

	items, err := loadFile(dir, ItemsFile, DecodeItems)
	if err != nil {
		return nil, err
	}
	sales, err := loadFile(dir, SalesFile, DecodeSales)
	if err != nil {
		return nil, err
	}
	expenses, err := loadFile(dir, ExpensesFile, DecodeExpenses)
	if err != nil {
		return nil, err
	}

	ledger.items = items
	ledger.sales = sales
	ledger.expenses = expenses
	return ledger, nil
}

func loadFile[T any](dir, name string, decode func(r io.Reader, source string) ([]T, error)) ([]T, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", path, err)
	}
	defer f.Close()
	return decode(f, name)
}

// SaveLedger writes a full snapshot of the ledger into the store
// directory, creating it if needed. Each file is written whole: the store
// has no incremental format.
func SaveLedger(dir string, l *Ledger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	if err := writeFile(dir, ItemsFile, l.items, EncodeItems); err != nil {
		return err
	}
	if err := writeFile(dir, SalesFile, l.sales, EncodeSales); err != nil {
		return err
	}
	return writeFile(dir, ExpensesFile, l.expenses, EncodeExpenses)
}

func writeFile[T any](dir, name string, values []T, encode func(w io.Writer, values []T) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create store file %q: %w", path, err)
	}
	if err := encode(f, values); err != nil {
		f.Close()
		return fmt.Errorf("could not write store file %q: %w", path, err)
	}
	return f.Close()
}

// DirSaver adapts SaveLedger to the ledger's write-through hook.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(l *Ledger) error { return SaveLedger(s.Dir, l) }
