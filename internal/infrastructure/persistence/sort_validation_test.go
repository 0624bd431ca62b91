package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder("ASC"))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("; DROP TABLE customers"))
}

func TestValidateSortField(t *testing.T) {
	t.Run("allows whitelisted fields", func(t *testing.T) {
		assert.Equal(t, "name", ValidateSortField("name", CustomerSortFields, "created_at"))
		assert.Equal(t, "cheque_date", ValidateSortField("cheque_date", ChequeSortFields, "created_at"))
	})

	t.Run("falls back to the default for unknown fields", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("password", CustomerSortFields, "created_at"))
		assert.Equal(t, "date", ValidateSortField("items; --", SaleSortFields, "date"))
		assert.Equal(t, "date", ValidateSortField("", PurchaseSortFields, "date"))
	})
}
