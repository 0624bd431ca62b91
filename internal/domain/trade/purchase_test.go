package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPurchaseItems(t *testing.T) []PurchaseItem {
	t.Helper()
	item, err := NewPurchaseItem("Raw material", decimal.NewFromInt(20), decimal.NewFromInt(50))
	require.NoError(t, err)
	return []PurchaseItem{*item}
}

func TestNewPurchase(t *testing.T) {
	tenantID := uuid.New()
	supplierID := uuid.New()

	t.Run("creates purchase with outstanding balance", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-001", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.NewFromInt(400), futureDate(30), nil)

		require.NoError(t, err)
		assert.Equal(t, "PO-001", purchase.PurchaseOrderID)
		assert.True(t, purchase.TotalAmount.Equal(decimal.NewFromInt(1000)))
		assert.True(t, purchase.RemainingAmount.Equal(decimal.NewFromInt(600)))
		assert.Equal(t, PurchaseStatusOrdered, purchase.Status)
		assert.Equal(t, DeliveryStatusPending, purchase.DeliveryStatus)
		assert.NotNil(t, purchase.DueDate)
	})

	t.Run("full payment at creation auto-promotes to paid", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-002", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentCash,
			decimal.NewFromInt(1000), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, PurchaseStatusPaid, purchase.Status)
		assert.True(t, purchase.RemainingAmount.IsZero())
		assert.Nil(t, purchase.DueDate)
	})

	t.Run("overpayment clamps remaining amount to zero", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-003", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentCash,
			decimal.NewFromInt(1500), nil, nil)

		require.NoError(t, err)
		assert.True(t, purchase.RemainingAmount.IsZero())
		assert.Equal(t, PurchaseStatusPaid, purchase.Status)
	})

	t.Run("requires a due date while a balance remains", func(t *testing.T) {
		_, err := NewPurchase(tenantID, "PO-004", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentCredit,
			decimal.Zero, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "due date")
	})

	t.Run("rejects invalid payment method", func(t *testing.T) {
		_, err := NewPurchase(tenantID, "PO-005", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentMethod("barter"),
			decimal.NewFromInt(1000), nil, nil)

		assert.Error(t, err)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewPurchase(tenantID, "PO-006", supplierID, time.Now(), nil,
			decimal.Zero, decimal.Zero, PurchasePaymentCash,
			decimal.Zero, nil, nil)

		assert.Error(t, err)
	})
}

func TestPurchaseRecordPayment(t *testing.T) {
	tenantID := uuid.New()
	supplierID := uuid.New()

	newOrderedPurchase := func(t *testing.T, po string) *Purchase {
		purchase, err := NewPurchase(tenantID, po, supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.Zero, futureDate(30), nil)
		require.NoError(t, err)
		return purchase
	}

	t.Run("partial payment reduces the balance", func(t *testing.T) {
		purchase := newOrderedPurchase(t, "PO-001")

		require.NoError(t, purchase.RecordPayment(decimal.NewFromInt(300)))

		assert.True(t, purchase.RemainingAmount.Equal(decimal.NewFromInt(700)))
		assert.Equal(t, PurchaseStatusOrdered, purchase.Status)
		assert.NotNil(t, purchase.DueDate)
	})

	t.Run("paying in full promotes ordered to paid and clears the due date", func(t *testing.T) {
		purchase := newOrderedPurchase(t, "PO-002")

		require.NoError(t, purchase.RecordPayment(decimal.NewFromInt(1000)))

		assert.Equal(t, PurchaseStatusPaid, purchase.Status)
		assert.True(t, purchase.RemainingAmount.IsZero())
		assert.Nil(t, purchase.DueDate)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		purchase := newOrderedPurchase(t, "PO-003")

		assert.Error(t, purchase.RecordPayment(decimal.Zero))
		assert.Error(t, purchase.RecordPayment(decimal.NewFromInt(-100)))
	})

	t.Run("rejects payments against a completed purchase", func(t *testing.T) {
		purchase := newOrderedPurchase(t, "PO-004")
		require.NoError(t, purchase.RecordPayment(decimal.NewFromInt(1000)))
		require.NoError(t, purchase.Complete())

		assert.Error(t, purchase.RecordPayment(decimal.NewFromInt(1)))
	})
}

func TestPurchaseDelivery(t *testing.T) {
	tenantID := uuid.New()
	supplierID := uuid.New()

	t.Run("marking received records the delivery date once", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-001", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.Zero, futureDate(30), futureDate(7))
		require.NoError(t, err)

		delivered := time.Now()
		require.NoError(t, purchase.MarkReceived(delivered))

		assert.Equal(t, PurchaseStatusReceived, purchase.Status)
		assert.Equal(t, DeliveryStatusDelivered, purchase.DeliveryStatus)
		require.NotNil(t, purchase.ActualDelivery)
		assert.True(t, purchase.ActualDelivery.Equal(delivered))

		assert.Error(t, purchase.MarkReceived(time.Now()))
	})

	t.Run("tracks shipping before delivery", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-002", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.Zero, futureDate(30), nil)
		require.NoError(t, err)

		require.NoError(t, purchase.UpdateDeliveryStatus(DeliveryStatusShipped))
		assert.Equal(t, DeliveryStatusShipped, purchase.DeliveryStatus)

		require.NoError(t, purchase.UpdateDeliveryStatus(DeliveryStatusDelayed))
		assert.Equal(t, DeliveryStatusDelayed, purchase.DeliveryStatus)
	})

	t.Run("delivery is overdue past the expected date", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-003", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.Zero, futureDate(30), futureDate(-2))
		require.NoError(t, err)

		assert.True(t, purchase.IsDeliveryOverdue())
	})
}

func TestPurchaseStatusRules(t *testing.T) {
	tenantID := uuid.New()
	supplierID := uuid.New()

	t.Run("cannot complete with an outstanding balance", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-001", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.Zero, futureDate(30), nil)
		require.NoError(t, err)
		require.NoError(t, purchase.MarkReceived(time.Now()))

		err = purchase.Complete()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outstanding")
	})

	t.Run("received then paid then completed", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-002", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.Zero, futureDate(30), nil)
		require.NoError(t, err)

		require.NoError(t, purchase.MarkReceived(time.Now()))
		require.NoError(t, purchase.RecordPayment(decimal.NewFromInt(1000)))
		require.NoError(t, purchase.MarkPaid())
		require.NoError(t, purchase.Complete())

		assert.Equal(t, PurchaseStatusCompleted, purchase.Status)
		assert.True(t, purchase.IsSettled())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-003", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentCash,
			decimal.NewFromInt(1000), nil, nil)
		require.NoError(t, err)
		require.NoError(t, purchase.Complete())

		assert.Error(t, purchase.MarkPaid())
		assert.Error(t, purchase.Complete())
	})
}

func TestPurchaseDaysUntilDue(t *testing.T) {
	tenantID := uuid.New()
	supplierID := uuid.New()

	t.Run("counts down to the due date while a balance remains", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-001", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentBankTransfer,
			decimal.Zero, futureDate(30), nil)
		require.NoError(t, err)

		days, ok := purchase.DaysUntilDue()
		require.True(t, ok)
		assert.InDelta(t, 30, days, 1)
	})

	t.Run("no due date once the purchase is settled", func(t *testing.T) {
		purchase, err := NewPurchase(tenantID, "PO-002", supplierID, time.Now(), testPurchaseItems(t),
			decimal.Zero, decimal.Zero, PurchasePaymentCash,
			decimal.NewFromInt(1000), nil, nil)
		require.NoError(t, err)

		_, ok := purchase.DaysUntilDue()
		assert.False(t, ok)
	})
}
