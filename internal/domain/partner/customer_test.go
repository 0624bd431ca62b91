package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates customer successfully", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CUST001", "Test Customer")

		require.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, "CUST001", customer.Code)
		assert.Equal(t, "Test Customer", customer.Name)
		assert.Equal(t, CustomerStatusActive, customer.Status)
		assert.Equal(t, tenantID, customer.TenantID)
		assert.Equal(t, 5, customer.CreditRating)
		assert.Equal(t, RiskCategoryMedium, customer.RiskCategory)
		assert.True(t, customer.CreditLimit.IsZero())
		assert.True(t, customer.AvailableCredit.IsZero())
		assert.Empty(t, customer.CreditHistory)
		assert.Len(t, customer.GetDomainEvents(), 1)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "cust002", "Test Customer")

		require.NoError(t, err)
		assert.Equal(t, "CUST002", customer.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "", "Test Customer")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "code cannot be empty")
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CUST@001", "Test Customer")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "can only contain")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CUST001", "")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})
}

func TestCustomerSetCreditLimit(t *testing.T) {
	tenantID := uuid.New()

	t.Run("sets limit and makes credit available", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST001", "Test Customer")

		err := customer.SetCreditLimit(decimal.NewFromInt(50000))

		require.NoError(t, err)
		assert.True(t, customer.CreditLimit.Equal(decimal.NewFromInt(50000)))
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(50000)))
	})

	t.Run("preserves exposure when limit changes", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST002", "Test Customer")
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(10000)))
		require.NoError(t, customer.ReserveCredit(decimal.NewFromInt(4000)))

		err := customer.SetCreditLimit(decimal.NewFromInt(20000))

		require.NoError(t, err)
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(16000)))
	})

	t.Run("clamps available credit when limit is reduced", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST003", "Test Customer")
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(10000)))
		require.NoError(t, customer.ReserveCredit(decimal.NewFromInt(8000)))

		err := customer.SetCreditLimit(decimal.NewFromInt(5000))

		require.NoError(t, err)
		assert.True(t, customer.AvailableCredit.IsZero())
		assert.False(t, customer.AvailableCredit.GreaterThan(customer.CreditLimit))
	})

	t.Run("fails with negative limit", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST004", "Test Customer")

		err := customer.SetCreditLimit(decimal.NewFromInt(-1))

		assert.Error(t, err)
	})
}

func TestCustomerReserveCredit(t *testing.T) {
	tenantID := uuid.New()

	newCustomerWithCredit := func(code string, limit, available int64) *Customer {
		customer, _ := NewCustomer(tenantID, code, "Test Customer")
		customer.CreditLimit = decimal.NewFromInt(limit)
		customer.AvailableCredit = decimal.NewFromInt(available)
		customer.ClearDomainEvents()
		return customer
	}

	t.Run("reserves credit within the available amount", func(t *testing.T) {
		customer := newCustomerWithCredit("CUST001", 10000, 10000)

		err := customer.ReserveCredit(decimal.NewFromInt(5000))

		require.NoError(t, err)
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(5000)))
		assert.Len(t, customer.GetDomainEvents(), 1)
	})

	t.Run("rejects amount exceeding available credit and leaves credit unchanged", func(t *testing.T) {
		customer := newCustomerWithCredit("CUST002", 50000, 5000)

		err := customer.ReserveCredit(decimal.NewFromInt(10000))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Credit limit exceeded")
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(5000)))
		assert.Empty(t, customer.GetDomainEvents())
	})

	t.Run("rejects reservation for inactive customer", func(t *testing.T) {
		customer := newCustomerWithCredit("CUST003", 10000, 10000)
		require.NoError(t, customer.Deactivate())

		err := customer.ReserveCredit(decimal.NewFromInt(1000))

		assert.Error(t, err)
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("rejects reservation for suspended customer", func(t *testing.T) {
		customer := newCustomerWithCredit("CUST004", 10000, 10000)
		require.NoError(t, customer.Suspend())

		err := customer.ReserveCredit(decimal.NewFromInt(1000))

		assert.Error(t, err)
	})

	t.Run("zero amount is a no-op", func(t *testing.T) {
		customer := newCustomerWithCredit("CUST005", 10000, 10000)

		err := customer.ReserveCredit(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		customer := newCustomerWithCredit("CUST006", 10000, 10000)

		err := customer.ReserveCredit(decimal.NewFromInt(-500))

		assert.Error(t, err)
	})
}

func TestCustomerReleaseCredit(t *testing.T) {
	tenantID := uuid.New()

	t.Run("restores reserved credit", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST001", "Test Customer")
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(10000)))
		require.NoError(t, customer.ReserveCredit(decimal.NewFromInt(5000)))

		err := customer.ReleaseCredit(decimal.NewFromInt(5000))

		require.NoError(t, err)
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("clamps release to the credit limit", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST002", "Test Customer")
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(10000)))

		err := customer.ReleaseCredit(decimal.NewFromInt(99999))

		require.NoError(t, err)
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("reserve then release round-trips", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST003", "Test Customer")
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(50000)))
		customer.AvailableCredit = decimal.NewFromInt(45000)

		require.NoError(t, customer.ReserveCredit(decimal.NewFromInt(40000)))
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(5000)))

		err := customer.ReserveCredit(decimal.NewFromInt(10000))
		assert.Error(t, err)
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(5000)))

		require.NoError(t, customer.ReleaseCredit(decimal.NewFromInt(40000)))
		assert.True(t, customer.AvailableCredit.Equal(decimal.NewFromInt(45000)))
	})
}

func TestCustomerChangeCreditRating(t *testing.T) {
	tenantID := uuid.New()

	t.Run("records history entry before applying new rating", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST001", "Test Customer")

		err := customer.ChangeCreditRating(8, "consistent on-time payments")

		require.NoError(t, err)
		assert.Equal(t, 8, customer.CreditRating)
		require.Len(t, customer.CreditHistory, 1)
		assert.Equal(t, 5, customer.CreditHistory[0].PreviousRating)
		assert.Equal(t, 8, customer.CreditHistory[0].NewRating)
		assert.Equal(t, "consistent on-time payments", customer.CreditHistory[0].Reason)
		assert.False(t, customer.CreditHistory[0].Date.IsZero())
	})

	t.Run("history is append-only across changes", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST002", "Test Customer")

		require.NoError(t, customer.ChangeCreditRating(7, "first review"))
		require.NoError(t, customer.ChangeCreditRating(3, "missed payments"))

		require.Len(t, customer.CreditHistory, 2)
		assert.Equal(t, 7, customer.CreditHistory[1].PreviousRating)
		assert.Equal(t, 3, customer.CreditHistory[1].NewRating)
	})

	t.Run("fails with out-of-range rating", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST003", "Test Customer")

		assert.Error(t, customer.ChangeCreditRating(0, "reason"))
		assert.Error(t, customer.ChangeCreditRating(11, "reason"))
		assert.Empty(t, customer.CreditHistory)
	})

	t.Run("fails with empty reason", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST004", "Test Customer")

		assert.Error(t, customer.ChangeCreditRating(7, "  "))
	})
}

func TestCustomerStatusTransitions(t *testing.T) {
	tenantID := uuid.New()

	t.Run("suspend and reactivate", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST001", "Test Customer")

		require.NoError(t, customer.Suspend())
		assert.True(t, customer.IsSuspended())

		require.NoError(t, customer.Activate())
		assert.True(t, customer.IsActive())
	})

	t.Run("cannot activate an active customer", func(t *testing.T) {
		customer, _ := NewCustomer(tenantID, "CUST002", "Test Customer")

		assert.Error(t, customer.Activate())
	})
}

func TestCustomerCreditUtilization(t *testing.T) {
	tenantID := uuid.New()
	customer, _ := NewCustomer(tenantID, "CUST001", "Test Customer")

	assert.True(t, customer.CreditUtilization().IsZero())

	require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(10000)))
	require.NoError(t, customer.ReserveCredit(decimal.NewFromInt(2500)))

	assert.True(t, customer.CreditUtilization().Equal(decimal.NewFromInt(25)))
	assert.True(t, customer.CreditExposure().Equal(decimal.NewFromInt(2500)))
}

func TestCustomerVersionIncrement(t *testing.T) {
	tenantID := uuid.New()

	t.Run("starts at version 1", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CUST001", "Test Customer")
		require.NoError(t, err)

		assert.Equal(t, 1, customer.Version)
	})

	t.Run("every mutation bumps the version for the optimistic lock", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CUST001", "Test Customer")
		require.NoError(t, err)

		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(10000)))
		assert.Equal(t, 2, customer.Version)

		require.NoError(t, customer.ReserveCredit(decimal.NewFromInt(100)))
		assert.Equal(t, 3, customer.Version)

		require.NoError(t, customer.ReleaseCredit(decimal.NewFromInt(100)))
		assert.Equal(t, 4, customer.Version)

		require.NoError(t, customer.ChangeCreditRating(7, "prompt payments"))
		assert.Equal(t, 5, customer.Version)

		require.NoError(t, customer.Deactivate())
		assert.Equal(t, 6, customer.Version)
	})

	t.Run("rejected mutations leave the version unchanged", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "CUST001", "Test Customer")
		require.NoError(t, err)
		require.NoError(t, customer.SetCreditLimit(decimal.NewFromInt(100)))

		assert.Error(t, customer.ReserveCredit(decimal.NewFromInt(500)))
		assert.Equal(t, 2, customer.Version)
	})
}
