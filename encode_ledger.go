package brick

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The store format is JSONL: one entity per line, stable field order,
// human-inspectable and diff-friendly. Each collection lives in its own
// stream (items, sales, expenses), matching the three logical store keys.

// jitem is the shape read back from the items stream. Writing goes through
// Item.MarshalJSON to control the field order.
type jitem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Condition    string `json:"condition"`
	Cost         Money  `json:"cost"`
	Price        Money  `json:"price"`
	Status       string `json:"status"`
	Description  string `json:"description"`
	AcquiredFrom string `json:"acquiredFrom"`
	Added        string `json:"added"`
}

func (j jitem) item() (Item, error) {
	category, err := ParseCategory(j.Category)
	if err != nil {
		return Item{}, err
	}
	condition, err := ParseCondition(j.Condition)
	if err != nil {
		return Item{}, err
	}
	status, err := ParseStatus(j.Status)
	if err != nil {
		return Item{}, err
	}
	added, err := time.Parse(time.RFC3339, j.Added)
	if err != nil {
		return Item{}, fmt.Errorf("invalid added timestamp %q: %w", j.Added, err)
	}
	if j.ID == "" {
		return Item{}, fmt.Errorf("item is missing an id")
	}
	return Item{
		ID:           j.ID,
		Name:         j.Name,
		Category:     category,
		Condition:    condition,
		CostPrice:    j.Cost,
		SalePrice:    j.Price,
		Status:       status,
		Description:  j.Description,
		AcquiredFrom: j.AcquiredFrom,
		DateAdded:    added,
	}, nil
}

// jsale is the shape read back from the sales stream.
type jsale struct {
	ID       string `json:"id"`
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Date     string `json:"date"`
	Amount   Money  `json:"amount"`
	Method   string `json:"method"`
	Profit   Money  `json:"profit"`
}

func (j jsale) sale() (Sale, error) {
	method, err := ParsePaymentMethod(j.Method)
	if err != nil {
		return Sale{}, err
	}
	when, err := time.Parse(time.RFC3339, j.Date)
	if err != nil {
		return Sale{}, fmt.Errorf("invalid sale date %q: %w", j.Date, err)
	}
	if j.ID == "" {
		return Sale{}, fmt.Errorf("sale is missing an id")
	}
	return Sale{
		ID:            j.ID,
		ItemID:        j.ItemID,
		ItemName:      j.ItemName,
		SaleDate:      when,
		Amount:        j.Amount,
		PaymentMethod: method,
		Profit:        j.Profit,
	}, nil
}

// jexpense is the shape read back from the expenses stream.
type jexpense struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	Category    string `json:"category"`
	Date        Date   `json:"date"`
}

func (j jexpense) expense() (Expense, error) {
	category, err := ParseExpenseCategory(j.Category)
	if err != nil {
		return Expense{}, err
	}
	if j.ID == "" {
		return Expense{}, fmt.Errorf("expense is missing an id")
	}
	return Expense{
		ID:          j.ID,
		Description: j.Description,
		Amount:      j.Amount,
		Category:    category,
		Date:        j.Date,
	}, nil
}

func encodeLines[T any](w io.Writer, values []T) error {
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// decodeLines reads one JSON object per line. source names the stream in
// errors; any failure is reported as a DeserializationError.
func decodeLines[J any, T any](r io.Reader, source string, convert func(J) (T, error)) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var j J
		if err := json.Unmarshal(raw, &j); err != nil {
			return nil, &DeserializationError{Source: source, Line: line, Err: err}
		}
		v, err := convert(j)
		if err != nil {
			return nil, &DeserializationError{Source: source, Line: line, Err: err}
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, &DeserializationError{Source: source, Err: err}
	}
	return out, nil
}

// EncodeItems writes the items as JSONL.
func EncodeItems(w io.Writer, items []Item) error { return encodeLines(w, items) }

// DecodeItems reads items from a JSONL stream. source is used in error
// messages only.
func DecodeItems(r io.Reader, source string) ([]Item, error) {
	return decodeLines(r, source, jitem.item)
}

// EncodeSales writes the sales as JSONL.
func EncodeSales(w io.Writer, sales []Sale) error { return encodeLines(w, sales) }

// DecodeSales reads sales from a JSONL stream.
func DecodeSales(r io.Reader, source string) ([]Sale, error) {
	return decodeLines(r, source, jsale.sale)
}

// EncodeExpenses writes the expenses as JSONL.
func EncodeExpenses(w io.Writer, expenses []Expense) error { return encodeLines(w, expenses) }

// DecodeExpenses reads expenses from a JSONL stream.
func DecodeExpenses(r io.Reader, source string) ([]Expense, error) {
	return decodeLines(r, source, jexpense.expense)
}
