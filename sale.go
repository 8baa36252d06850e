package brick

import (
	"fmt"
	"time"
)

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PayCash  PaymentMethod = "cash"
	PayPix   PaymentMethod = "pix" // Brazilian instant transfer
	PayCard  PaymentMethod = "card"
	PayOther PaymentMethod = "other"
)

// AllPaymentMethods lists every payment method.
var AllPaymentMethods = []PaymentMethod{PayCash, PayPix, PayCard, PayOther}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, v := range AllPaymentMethods {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Sale records one completed sale event. A Sale is immutable after
// creation: there is no update and no delete operation on sales.
//
// ItemName is a snapshot of the item's name at sale time. It is never
// recomputed, so sales history survives later edits or deletion of the
// item.
type Sale struct {
	ID            string
	ItemID        string
	ItemName      string
	SaleDate      time.Time
	Amount        Money // the amount actually paid, which may differ from the asking price
	PaymentMethod PaymentMethod
	Profit        Money // Amount minus the item's cost price at sale time; may be negative
}

// MarshalJSON writes the sale with a stable field order.
func (s Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("itemId", s.ItemID)
	w.Append("itemName", s.ItemName)
	w.Append("date", s.SaleDate.Format(time.RFC3339))
	w.Append("amount", s.Amount)
	w.Append("method", s.PaymentMethod)
	w.Append("profit", s.Profit)
	return w.MarshalJSON()
}
