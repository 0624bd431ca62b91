package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockChequeRepository creates a GormChequeRepository with a mocked SQL connection
func newMockChequeRepository(t *testing.T) (*GormChequeRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormChequeRepository(gormDB), mock, mockDB
}

func TestGormChequeRepository_FindByIDForTenant(t *testing.T) {
	t.Run("finds cheque within tenant", func(t *testing.T) {
		repo, mock, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		chequeID := uuid.New()
		tenantID := uuid.New()
		customerID := uuid.New()
		history := `[{"status":"pending","date":"2026-01-10T09:00:00Z","notes":"Cheque created"}]`

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "cheque_number", "type", "transaction_type", "customer_id", "amount", "cheque_date", "bank_name", "status", "status_history", "bank_charges"}).
			AddRow(chequeID, tenantID, "CHQ-001", "received", "sale", customerID, decimal.NewFromInt(2500), time.Now(), "First National", "pending", history, decimal.Zero)

		mock.ExpectQuery(`SELECT \* FROM "cheques" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, chequeID, 1).
			WillReturnRows(rows)

		cheque, err := repo.FindByIDForTenant(context.Background(), tenantID, chequeID)

		assert.NoError(t, err)
		require.NotNil(t, cheque)
		assert.Equal(t, "CHQ-001", cheque.ChequeNumber)
		assert.Equal(t, finance.ChequeStatusPending, cheque.Status)
		require.Len(t, cheque.StatusHistory, 1)
		assert.Equal(t, finance.ChequeStatusPending, cheque.StatusHistory[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent cheque", func(t *testing.T) {
		repo, mock, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		chequeID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "cheques" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, chequeID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		cheque, err := repo.FindByIDForTenant(context.Background(), tenantID, chequeID)

		assert.Error(t, err)
		assert.Nil(t, cheque)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChequeRepository_FindByChequeNumber(t *testing.T) {
	t.Run("normalizes the number before lookup", func(t *testing.T) {
		repo, mock, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		chequeID := uuid.New()
		tenantID := uuid.New()
		customerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "cheque_number", "type", "transaction_type", "customer_id", "amount", "cheque_date", "status", "status_history", "bank_charges"}).
			AddRow(chequeID, tenantID, "CHQ-001", "received", "sale", customerID, decimal.NewFromInt(2500), time.Now(), "pending", "[]", decimal.Zero)

		mock.ExpectQuery(`SELECT \* FROM "cheques" WHERE tenant_id = \$1 AND cheque_number = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, "CHQ-001", 1).
			WillReturnRows(rows)

		cheque, err := repo.FindByChequeNumber(context.Background(), tenantID, " chq-001 ")

		assert.NoError(t, err)
		assert.NotNil(t, cheque)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChequeRepository_FindAllForTenant(t *testing.T) {
	t.Run("overdue filter restricts to stale pending cheques", func(t *testing.T) {
		repo, mock, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		customerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "cheque_number", "type", "transaction_type", "customer_id", "amount", "cheque_date", "status", "status_history", "bank_charges"}).
			AddRow(uuid.New(), tenantID, "CHQ-042", "received", "sale", customerID, decimal.NewFromInt(900), time.Now().AddDate(0, 0, -45), "pending", "[]", decimal.Zero)

		mock.ExpectQuery(`SELECT \* FROM "cheques" WHERE tenant_id = \$1 AND \(status = \$2 AND cheque_date < \$3\)`).
			WithArgs(tenantID, finance.ChequeStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(rows)

		filter := shared.DefaultFilter()
		filter.Filters["overdue"] = true

		cheques, err := repo.FindAllForTenant(context.Background(), tenantID, filter)

		assert.NoError(t, err)
		require.Len(t, cheques, 1)
		assert.True(t, cheques[0].IsOverdue())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChequeRepository_Save(t *testing.T) {
	t.Run("saves cheque", func(t *testing.T) {
		repo, mock, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		customerID := uuid.New()
		cheque, err := finance.NewCheque(tenantID, "CHQ-001", finance.ChequeTypeReceived, finance.ChequeTransactionSale,
			&customerID, nil, decimal.NewFromInt(2500), time.Now(), "First National")
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "cheques" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), cheque)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChequeRepository_DeleteForTenant(t *testing.T) {
	t.Run("returns error for non-existent cheque", func(t *testing.T) {
		repo, mock, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		chequeID := uuid.New()

		mock.ExpectExec(`DELETE FROM "cheques" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, chequeID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForTenant(context.Background(), tenantID, chequeID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChequeRepository_ExistsBySupplier(t *testing.T) {
	t.Run("returns true when a cheque references the supplier", func(t *testing.T) {
		repo, mock, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		supplierID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "cheques" WHERE tenant_id = \$1 AND supplier_id = \$2`).
			WithArgs(tenantID, supplierID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		exists, err := repo.ExistsBySupplier(context.Background(), tenantID, supplierID)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChequeRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements ChequeRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockChequeRepository(t)
		defer mockDB.Close()

		var _ finance.ChequeRepository = repo
	})
}
