package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReceivedCheque(t *testing.T, number string) *Cheque {
	t.Helper()
	customerID := uuid.New()
	cheque, err := NewCheque(uuid.New(), number, ChequeTypeReceived, ChequeTransactionSale,
		&customerID, nil, decimal.NewFromInt(5000), time.Now().AddDate(0, 0, -1), "First National")
	require.NoError(t, err)
	return cheque
}

func TestNewCheque(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()
	supplierID := uuid.New()

	t.Run("seeds status history on creation", func(t *testing.T) {
		cheque, err := NewCheque(tenantID, "CHQ-001", ChequeTypeReceived, ChequeTransactionSale,
			&customerID, nil, decimal.NewFromInt(5000), time.Now(), "First National")

		require.NoError(t, err)
		assert.Equal(t, ChequeStatusPending, cheque.Status)
		require.Len(t, cheque.StatusHistory, 1)
		assert.Equal(t, ChequeStatusPending, cheque.StatusHistory[0].Status)
		assert.Equal(t, "Cheque created", cheque.StatusHistory[0].Notes)
		assert.Equal(t, cheque.Status, cheque.CurrentHistoryEntry().Status)
	})

	t.Run("sale cheque requires a customer and drops any supplier", func(t *testing.T) {
		_, err := NewCheque(tenantID, "CHQ-002", ChequeTypeReceived, ChequeTransactionSale,
			nil, &supplierID, decimal.NewFromInt(5000), time.Now(), "")
		assert.Error(t, err)

		cheque, err := NewCheque(tenantID, "CHQ-003", ChequeTypeReceived, ChequeTransactionSale,
			&customerID, &supplierID, decimal.NewFromInt(5000), time.Now(), "")
		require.NoError(t, err)
		assert.NotNil(t, cheque.CustomerID)
		assert.Nil(t, cheque.SupplierID)
	})

	t.Run("purchase cheque requires a supplier", func(t *testing.T) {
		_, err := NewCheque(tenantID, "CHQ-004", ChequeTypeIssued, ChequeTransactionPurchase,
			&customerID, nil, decimal.NewFromInt(5000), time.Now(), "")
		assert.Error(t, err)

		cheque, err := NewCheque(tenantID, "CHQ-005", ChequeTypeIssued, ChequeTransactionPurchase,
			nil, &supplierID, decimal.NewFromInt(5000), time.Now(), "")
		require.NoError(t, err)
		assert.Nil(t, cheque.CustomerID)
		assert.NotNil(t, cheque.SupplierID)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewCheque(tenantID, "CHQ-006", ChequeTypeReceived, ChequeTransactionSale,
			&customerID, nil, decimal.Zero, time.Now(), "")
		assert.Error(t, err)

		_, err = NewCheque(tenantID, "CHQ-007", ChequeTypeReceived, ChequeTransactionSale,
			&customerID, nil, decimal.NewFromInt(-100), time.Now(), "")
		assert.Error(t, err)
	})

	t.Run("rejects invalid cheque type", func(t *testing.T) {
		_, err := NewCheque(tenantID, "CHQ-008", ChequeType("postdated"), ChequeTransactionSale,
			&customerID, nil, decimal.NewFromInt(100), time.Now(), "")
		assert.Error(t, err)
	})
}

func TestChequeTransitions(t *testing.T) {
	t.Run("pending to deposited to cleared builds the full trail", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-001")

		require.NoError(t, cheque.Deposit("handed to bank"))
		require.NoError(t, cheque.Clear(""))

		require.Len(t, cheque.StatusHistory, 3)
		assert.Equal(t, ChequeStatusPending, cheque.StatusHistory[0].Status)
		assert.Equal(t, ChequeStatusDeposited, cheque.StatusHistory[1].Status)
		assert.Equal(t, ChequeStatusCleared, cheque.StatusHistory[2].Status)

		require.NotNil(t, cheque.DepositDate)
		require.NotNil(t, cheque.ClearanceDate)
		assert.False(t, cheque.ClearanceDate.Before(*cheque.DepositDate))
	})

	t.Run("pending can clear directly", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-002")

		require.NoError(t, cheque.Clear("cleared same day"))

		assert.Equal(t, ChequeStatusCleared, cheque.Status)
		assert.NotNil(t, cheque.ClearanceDate)
	})

	t.Run("bounce without a reason is rejected", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-003")
		require.NoError(t, cheque.Deposit(""))

		err := cheque.Transition(ChequeStatusBounced, "insufficient funds noted")

		require.Error(t, err)
		assert.Equal(t, ChequeStatusDeposited, cheque.Status)
		assert.Len(t, cheque.StatusHistory, 2)
		assert.Nil(t, cheque.BounceDate)
	})

	t.Run("bounce with a reason sets the bounce date", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-004")
		require.NoError(t, cheque.Deposit(""))

		require.NoError(t, cheque.Bounce("insufficient funds", ""))

		assert.Equal(t, ChequeStatusBounced, cheque.Status)
		assert.Equal(t, "insufficient funds", cheque.BounceReason)
		require.NotNil(t, cheque.BounceDate)
		assert.False(t, cheque.BounceDate.Before(*cheque.DepositDate))
	})

	t.Run("cleared is terminal", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-005")
		require.NoError(t, cheque.Clear(""))

		assert.Error(t, cheque.Deposit(""))
		assert.Error(t, cheque.Bounce("reason", ""))
		assert.Error(t, cheque.Cancel(""))
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-006")
		require.NoError(t, cheque.Cancel("customer reissued"))

		assert.Error(t, cheque.Deposit(""))
		assert.True(t, cheque.Status.IsTerminal())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-007")

		err := cheque.Transition(ChequeStatus("shredded"), "")

		require.Error(t, err)
		assert.Len(t, cheque.StatusHistory, 1)
	})

	t.Run("rejects clearing a post-dated cheque early", func(t *testing.T) {
		customerID := uuid.New()
		cheque, err := NewCheque(uuid.New(), "CHQ-008", ChequeTypeReceived, ChequeTransactionSale,
			&customerID, nil, decimal.NewFromInt(5000), time.Now().AddDate(0, 0, 10), "")
		require.NoError(t, err)

		err = cheque.Clear("")

		require.Error(t, err)
		assert.Equal(t, ChequeStatusPending, cheque.Status)
	})

	t.Run("rejects oversized notes", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-009")

		long := make([]byte, maxNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}

		assert.Error(t, cheque.Deposit(string(long)))
	})
}

func TestChequeDerivedReads(t *testing.T) {
	customerID := uuid.New()

	t.Run("overdue only while pending past thirty days", func(t *testing.T) {
		cheque, err := NewCheque(uuid.New(), "CHQ-001", ChequeTypeReceived, ChequeTransactionSale,
			&customerID, nil, decimal.NewFromInt(5000), time.Now().AddDate(0, 0, -45), "")
		require.NoError(t, err)

		assert.True(t, cheque.IsOverdue())
		assert.Greater(t, cheque.DaysSinceChequeDate(), overdueAfterDays)

		require.NoError(t, cheque.Clear(""))
		assert.False(t, cheque.IsOverdue())
	})

	t.Run("fresh cheque is not overdue", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-002")

		assert.False(t, cheque.IsOverdue())
	})

	t.Run("processing duration needs both dates", func(t *testing.T) {
		cheque := newReceivedCheque(t, "CHQ-003")
		assert.Nil(t, cheque.ProcessingDuration())

		require.NoError(t, cheque.Deposit(""))
		assert.Nil(t, cheque.ProcessingDuration())

		require.NoError(t, cheque.Clear(""))
		duration := cheque.ProcessingDuration()
		require.NotNil(t, duration)
		assert.GreaterOrEqual(t, *duration, 0)
	})
}

func TestChequeBankCharges(t *testing.T) {
	cheque := newReceivedCheque(t, "CHQ-001")

	require.NoError(t, cheque.SetBankCharges(decimal.NewFromFloat(25.50)))
	assert.True(t, cheque.BankCharges.Equal(decimal.NewFromFloat(25.50)))

	assert.Error(t, cheque.SetBankCharges(decimal.NewFromInt(-1)))
}
