package finance

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ChequeRepository defines the interface for cheque persistence
type ChequeRepository interface {
	// FindByID finds a cheque by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cheque, error)

	// FindByIDForTenant finds a cheque by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Cheque, error)

	// FindByChequeNumber finds a cheque by its number within a tenant
	FindByChequeNumber(ctx context.Context, tenantID uuid.UUID, chequeNumber string) (*Cheque, error)

	// FindAllForTenant finds all cheques for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Cheque, error)

	// FindByStatus finds cheques by status for a tenant
	FindByStatus(ctx context.Context, tenantID uuid.UUID, status ChequeStatus, filter shared.Filter) ([]Cheque, error)

	// Save creates or updates a cheque
	Save(ctx context.Context, cheque *Cheque) error

	// DeleteForTenant deletes a cheque within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts cheques for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByChequeNumber checks if a cheque with the given number exists in
	// the tenant, optionally excluding one record (for updates)
	ExistsByChequeNumber(ctx context.Context, tenantID uuid.UUID, chequeNumber string, excludeID *uuid.UUID) (bool, error)

	// ExistsBySupplier checks if any cheque references the given supplier
	ExistsBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID) (bool, error)
}
