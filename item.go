package brick

import (
	"fmt"
	"time"
)

// ItemStatus is the lifecycle state of an inventory item.
//
// Only the sale workflow moves an item to StatusSold; repair and reserved
// are reachable by direct edit.
type ItemStatus string

const (
	StatusAvailable ItemStatus = "available"
	StatusSold      ItemStatus = "sold"
	StatusRepair    ItemStatus = "repair"
	StatusReserved  ItemStatus = "reserved"
)

// AllStatuses lists every item status, in lifecycle order.
var AllStatuses = []ItemStatus{StatusAvailable, StatusSold, StatusRepair, StatusReserved}

func ParseStatus(s string) (ItemStatus, error) {
	for _, v := range AllStatuses {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown item status %q", s)
}

// Condition grades the physical state of an item.
type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// AllConditions lists every condition, best first.
var AllConditions = []Condition{ConditionNew, ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

func ParseCondition(s string) (Condition, error) {
	for _, v := range AllConditions {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown condition %q", s)
}

// Category classifies an inventory item.
type Category string

const (
	CategoryFurniture   Category = "furniture"
	CategoryElectronics Category = "electronics"
	CategoryAppliances  Category = "appliances"
	CategoryDecor       Category = "decor"
	CategoryOther       Category = "other"
)

// AllCategories lists every item category.
var AllCategories = []Category{CategoryFurniture, CategoryElectronics, CategoryAppliances, CategoryDecor, CategoryOther}

func ParseCategory(s string) (Category, error) {
	for _, v := range AllCategories {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Item is one inventory unit acquired for resale.
//
// ID and DateAdded are assigned once by the ledger and never change.
type Item struct {
	ID           string
	Name         string
	Category     Category
	Condition    Condition
	CostPrice    Money // what the item cost to acquire
	SalePrice    Money // the asking price, not necessarily the amount it sells for
	Status       ItemStatus
	Description  string
	AcquiredFrom string
	DateAdded    time.Time
}

// MarshalJSON writes the item with a stable field order.
func (i Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("name", i.Name)
	w.Append("category", i.Category)
	w.Append("condition", i.Condition)
	w.Append("cost", i.CostPrice)
	w.Append("price", i.SalePrice)
	w.Append("status", i.Status)
	w.Optional("description", i.Description)
	w.Optional("acquiredFrom", i.AcquiredFrom)
	w.Append("added", i.DateAdded.Format(time.RFC3339))
	return w.MarshalJSON()
}

// ItemDraft carries the user-supplied fields of a new item. The ledger
// assigns id, status and timestamp.
type ItemDraft struct {
	Name         string
	Category     Category
	Condition    Condition
	CostPrice    Money
	SalePrice    Money
	Description  string
	AcquiredFrom string
}

// Validate checks the draft against the creation rules: a name is required
// and prices cannot be negative.
func (d ItemDraft) Validate() error {
	if d.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if _, err := ParseCategory(string(d.Category)); err != nil {
		return &ValidationError{Field: "category", Reason: err.Error()}
	}
	if _, err := ParseCondition(string(d.Condition)); err != nil {
		return &ValidationError{Field: "condition", Reason: err.Error()}
	}
	if d.CostPrice.IsNegative() {
		return &ValidationError{Field: "cost price", Reason: "must not be negative"}
	}
	if d.SalePrice.IsNegative() {
		return &ValidationError{Field: "sale price", Reason: "must not be negative"}
	}
	return nil
}

// ItemPatch is a partial update of an item. Nil fields are left untouched.
// There is deliberately no way to patch the id or the creation timestamp.
type ItemPatch struct {
	Name         *string
	Category     *Category
	Condition    *Condition
	CostPrice    *Money
	SalePrice    *Money
	Status       *ItemStatus
	Description  *string
	AcquiredFrom *string
}

// apply merges the patch into item, validating each patched field.
func (p ItemPatch) apply(item Item) (Item, error) {
	if p.Name != nil {
		if *p.Name == "" {
			return item, &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		item.Name = *p.Name
	}
	if p.Category != nil {
		if _, err := ParseCategory(string(*p.Category)); err != nil {
			return item, &ValidationError{Field: "category", Reason: err.Error()}
		}
		item.Category = *p.Category
	}
	if p.Condition != nil {
		if _, err := ParseCondition(string(*p.Condition)); err != nil {
			return item, &ValidationError{Field: "condition", Reason: err.Error()}
		}
		item.Condition = *p.Condition
	}
	if p.CostPrice != nil {
		if p.CostPrice.IsNegative() {
			return item, &ValidationError{Field: "cost price", Reason: "must not be negative"}
		}
		item.CostPrice = *p.CostPrice
	}
	if p.SalePrice != nil {
		if p.SalePrice.IsNegative() {
			return item, &ValidationError{Field: "sale price", Reason: "must not be negative"}
		}
		item.SalePrice = *p.SalePrice
	}
	if p.Status != nil {
		if _, err := ParseStatus(string(*p.Status)); err != nil {
			return item, &ValidationError{Field: "status", Reason: err.Error()}
		}
		if *p.Status == StatusSold {
			return item, &ValidationError{Field: "status", Reason: "items become sold by recording a sale"}
		}
		item.Status = *p.Status
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.AcquiredFrom != nil {
		item.AcquiredFrom = *p.AcquiredFrom
	}
	return item, nil
}
