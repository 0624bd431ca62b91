package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindByIDForTenant finds a sale by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Sale, error)

	// FindByTransactionID finds a sale by its transaction ID within a tenant
	FindByTransactionID(ctx context.Context, tenantID uuid.UUID, transactionID string) (*Sale, error)

	// FindAllForTenant finds all sales for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Sale, error)

	// FindByCustomer finds sales for a customer within a tenant
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) ([]Sale, error)

	// Save creates or updates a sale
	Save(ctx context.Context, sale *Sale) error

	// DeleteForTenant deletes a sale within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts sales for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByTransactionID checks if a sale with the given transaction ID exists
	// in the tenant, optionally excluding one record (for updates)
	ExistsByTransactionID(ctx context.Context, tenantID uuid.UUID, transactionID string, excludeID *uuid.UUID) (bool, error)
}

// PurchaseRepository defines the interface for purchase order persistence
type PurchaseRepository interface {
	// FindByID finds a purchase by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)

	// FindByIDForTenant finds a purchase by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Purchase, error)

	// FindByPurchaseOrderID finds a purchase by its order ID within a tenant
	FindByPurchaseOrderID(ctx context.Context, tenantID uuid.UUID, purchaseOrderID string) (*Purchase, error)

	// FindAllForTenant finds all purchases for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Purchase, error)

	// FindBySupplier finds purchases for a supplier within a tenant
	FindBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID, filter shared.Filter) ([]Purchase, error)

	// Save creates or updates a purchase
	Save(ctx context.Context, purchase *Purchase) error

	// DeleteForTenant deletes a purchase within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts purchases for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByPurchaseOrderID checks if a purchase with the given order ID exists
	// in the tenant, optionally excluding one record (for updates)
	ExistsByPurchaseOrderID(ctx context.Context, tenantID uuid.UUID, purchaseOrderID string, excludeID *uuid.UUID) (bool, error)
}
