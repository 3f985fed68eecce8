package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents one catalog item. An ID of 0 means the product has
// never been persisted; the store assigns ids on create.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Description string          `gorm:"type:varchar(250)" validate:"max=250"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Available   bool            `gorm:"not null"`
	Category    Category        `gorm:"type:varchar(63);not null"`
}

// Serialize renders the product into its wire mapping. Price is emitted as
// a decimal string so no caller ever sees a binary float, and category is
// emitted by symbolic name. The id is null until the store has assigned one.
func (p *Product) Serialize() map[string]interface{} {
	data := map[string]interface{}{
		"id":          nil,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
	if p.ID != 0 {
		data["id"] = p.ID
	}
	return data
}

// Deserialize validates a wire mapping and populates the receiver. The id
// is left untouched; only persistence operations assign it.
//
// name, description, price and available are required and type-checked.
// category is the one asymmetry: an absent key falls back to UNKNOWN so
// older payloads keep working, while a present but unrecognized value is
// rejected like any other bad field.
func (p *Product) Deserialize(data map[string]interface{}) error {
	name, err := requireString(data, "name")
	if err != nil {
		return err
	}

	description, err := requireString(data, "description")
	if err != nil {
		return err
	}

	price, err := requirePrice(data)
	if err != nil {
		return err
	}

	rawAvailable, ok := data["available"]
	if !ok {
		return NewDataValidationError("Invalid product: missing available")
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return NewDataValidationError(
			fmt.Sprintf("Invalid type for boolean [available]: %T", rawAvailable))
	}

	category, err := deserializeCategory(data)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

func requireString(data map[string]interface{}, field string) (string, error) {
	raw, ok := data[field]
	if !ok {
		return "", NewDataValidationError("Invalid product: missing " + field)
	}
	value, ok := raw.(string)
	if !ok {
		return "", NewDataValidationError(
			fmt.Sprintf("Invalid type for string [%s]: %T", field, raw))
	}
	return value, nil
}

// requirePrice accepts the price either as a decimal string ("12.50") or as
// a bare JSON number. Strings are the canonical form since that is what
// Serialize emits.
func requirePrice(data map[string]interface{}) (decimal.Decimal, error) {
	raw, ok := data["price"]
	if !ok {
		return decimal.Decimal{}, NewDataValidationError("Invalid product: missing price")
	}
	switch value := raw.(type) {
	case string:
		price, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Decimal{}, NewDataValidationError(
				fmt.Sprintf("Invalid value for decimal [price]: %s", value))
		}
		return price, nil
	case float64:
		return decimal.NewFromFloat(value), nil
	default:
		return decimal.Decimal{}, NewDataValidationError(
			fmt.Sprintf("Invalid type for decimal [price]: %T", raw))
	}
}

func deserializeCategory(data map[string]interface{}) (Category, error) {
	raw, present := data["category"]
	if !present {
		return CategoryFromOptionalName("", false)
	}
	name, ok := raw.(string)
	if !ok {
		return CategoryUnknown, NewDataValidationError(
			fmt.Sprintf("Invalid type for string [category]: %T", raw))
	}
	return CategoryFromOptionalName(name, true)
}
