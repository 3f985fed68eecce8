package models_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/models"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Fedora",
		"description": "A red hat",
		"price":       "12.50",
		"available":   true,
		"category":    "CLOTHS",
	}
}

func TestSerialize(t *testing.T) {
	product := &models.Product{
		ID:          7,
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    models.CategoryCloths,
	}

	data := product.Serialize()
	assert.Equal(t, uint(7), data["id"])
	assert.Equal(t, "Fedora", data["name"])
	assert.Equal(t, "A red hat", data["description"])
	assert.Equal(t, "12.50", data["price"])
	assert.Equal(t, true, data["available"])
	assert.Equal(t, "CLOTHS", data["category"])

	// Price crosses the wire as a string, never a binary float.
	_, isString := data["price"].(string)
	assert.True(t, isString)
}

func TestSerializeUnpersistedIDIsNull(t *testing.T) {
	product := &models.Product{Name: "Fedora"}
	data := product.Serialize()
	assert.Nil(t, data["id"])
}

func TestDeserializeRoundTrip(t *testing.T) {
	original := &models.Product{
		ID:          3,
		Name:        "Wrench",
		Description: "A sturdy wrench",
		Price:       decimal.RequireFromString("9.99"),
		Available:   false,
		Category:    models.CategoryTools,
	}

	clone := &models.Product{}
	require.NoError(t, clone.Deserialize(original.Serialize()))

	assert.Equal(t, original.Name, clone.Name)
	assert.Equal(t, original.Description, clone.Description)
	assert.True(t, original.Price.Equal(clone.Price))
	assert.Equal(t, original.Available, clone.Available)
	assert.Equal(t, original.Category, clone.Category)
	// Deserialize never touches the id.
	assert.Equal(t, uint(0), clone.ID)
}

func TestDeserializeMissingRequiredFields(t *testing.T) {
	for _, field := range []string{"name", "description", "price", "available"} {
		payload := validPayload()
		delete(payload, field)

		err := (&models.Product{}).Deserialize(payload)
		require.Error(t, err, "missing %s should fail", field)

		var validationErr *models.DataValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), fmt.Sprintf("missing %s", field))
	}
}

func TestDeserializeMissingCategoryDefaultsToUnknown(t *testing.T) {
	payload := validPayload()
	delete(payload, "category")

	product := &models.Product{}
	require.NoError(t, product.Deserialize(payload))
	assert.Equal(t, models.CategoryUnknown, product.Category)
}

func TestDeserializeInvalidCategory(t *testing.T) {
	payload := validPayload()
	payload["category"] = "HATS"

	err := (&models.Product{}).Deserialize(payload)
	var validationErr *models.DataValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDeserializeBooleanStrictness(t *testing.T) {
	// Would-be-truthy tokens still fail: only a JSON boolean is accepted.
	for _, bad := range []interface{}{"yes", "true", 1.0} {
		payload := validPayload()
		payload["available"] = bad

		err := (&models.Product{}).Deserialize(payload)
		require.Error(t, err, "available=%v should fail", bad)
		assert.Contains(t, err.Error(), "Invalid type for boolean [available]")
	}
}

func TestDeserializeStringTypeChecks(t *testing.T) {
	payload := validPayload()
	payload["name"] = 12.5
	err := (&models.Product{}).Deserialize(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid type for string [name]")

	payload = validPayload()
	payload["description"] = false
	err = (&models.Product{}).Deserialize(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid type for string [description]")
}

func TestDeserializePriceForms(t *testing.T) {
	// Canonical form: decimal string.
	product := &models.Product{}
	require.NoError(t, product.Deserialize(validPayload()))
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))

	// JSON numbers are tolerated.
	payload := validPayload()
	payload["price"] = 12.5
	product = &models.Product{}
	require.NoError(t, product.Deserialize(payload))
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.5")))

	// Unparsable strings and wrong types fail.
	payload = validPayload()
	payload["price"] = "twelve fifty"
	assert.Error(t, (&models.Product{}).Deserialize(payload))

	payload = validPayload()
	payload["price"] = true
	assert.Error(t, (&models.Product{}).Deserialize(payload))
}
