package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Order is a purchase order. The JSON field names follow the wire format
// the dashboard frontend already speaks (fname, invoiceNo, orderedDate).
// Clients may send fields beyond these; they are kept in Extra.
type Order struct {
	BaseModel
	FirstName   string      `json:"fname"`
	LastName    string      `json:"lname"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Phone       string      `gorm:"index" json:"phone"`
	Email       string      `json:"email"`
	Product     ProductList `gorm:"type:jsonb" json:"product"`
	InvoiceNo   int64       `gorm:"uniqueIndex" json:"invoiceNo"`
	OrderedDate time.Time   `gorm:"not null" json:"orderedDate"`
	Status      string      `json:"status,omitempty"`
	Extra       ExtraFields `gorm:"type:jsonb" json:"extra,omitempty"`
}

// ProductLine is one entry of an order's product array. Only name and
// quantity are interpreted; any other keys round-trip through Extra.
type ProductLine struct {
	Name     string
	Quantity float64
	Extra    map[string]any
}

// MarshalJSON flattens Extra back into the line item object.
func (p ProductLine) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+2)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["name"] = p.Name
	out["quantity"] = p.Quantity
	return json.Marshal(out)
}

// UnmarshalJSON captures name/quantity and stashes the remaining keys.
func (p *ProductLine) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["name"].(string); ok {
		p.Name = v
	}
	if v, ok := raw["quantity"].(float64); ok {
		p.Quantity = v
	}
	delete(raw, "name")
	delete(raw, "quantity")
	if len(raw) > 0 {
		p.Extra = raw
	}
	return nil
}

// ProductList stores an order's line items as a jsonb array.
type ProductList []ProductLine

// Value implements driver.Valuer. A nil list is stored as an empty jsonb
// array so aggregation over the column never sees a scalar.
func (p ProductList) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *ProductList) Scan(value any) error {
	if value == nil {
		*p = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return fmt.Errorf("unsupported type %T for ProductList", value)
}

// ExtraFields holds order body fields outside the core schema, stored as
// a jsonb map.
type ExtraFields map[string]any

// Value implements driver.Valuer.
func (f ExtraFields) Value() (driver.Value, error) {
	if len(f) == 0 {
		return nil, nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner.
func (f *ExtraFields) Scan(value any) error {
	if value == nil {
		*f = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	}
	return fmt.Errorf("unsupported type %T for ExtraFields", value)
}
