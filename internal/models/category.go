package models

import (
	"database/sql/driver"
	"fmt"
)

// Category is the closed set of product category labels.
// The zero value is CategoryUnknown, which doubles as the fallback for
// payloads that omit the category field entirely.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	byName := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		byName[name] = c
	}
	return byName
}()

// String returns the symbolic name of the category. This is the only form
// that ever crosses the wire or reaches the database; the integer values
// are internal and carry no meaning across restarts or migrations.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryUnknown]
}

// CategoryFromName resolves a category by its exact, case-sensitive name.
// Unrecognized names are a validation error, never CategoryUnknown.
func CategoryFromName(name string) (Category, error) {
	if c, ok := categoriesByName[name]; ok {
		return c, nil
	}
	return CategoryUnknown, NewDataValidationError(fmt.Sprintf("Invalid attribute: %s", name))
}

// CategoryFromOptionalName resolves a category that may be absent from a
// payload. An absent key maps to CategoryUnknown for backward compatibility
// with older payloads; a name that is present but unrecognized is still an
// error. Keep this separate from CategoryFromName so "missing" is never
// conflated with "invalid".
func CategoryFromOptionalName(name string, present bool) (Category, error) {
	if !present {
		return CategoryUnknown, nil
	}
	return CategoryFromName(name)
}

// Value implements driver.Valuer so GORM stores the category by name.
func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner for reading the category name back out.
func (c *Category) Scan(value interface{}) error {
	var name string
	switch v := value.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	case nil:
		*c = CategoryUnknown
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Category", value)
	}
	parsed, err := CategoryFromName(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
