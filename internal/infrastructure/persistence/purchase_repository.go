package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase by its ID
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a purchase by ID within a tenant
func (r *GormPurchaseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPurchaseOrderID finds a purchase by its order ID within a tenant
func (r *GormPurchaseRepository) FindByPurchaseOrderID(ctx context.Context, tenantID uuid.UUID, purchaseOrderID string) (*trade.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND purchase_order_id = ?", tenantID, strings.TrimSpace(purchaseOrderID)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all purchases for a tenant
func (r *GormPurchaseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.Purchase, error) {
	var purchaseModels []models.PurchaseModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PurchaseModel{}).Where("tenant_id = ?", tenantID), filter)

	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, err
	}

	purchases := make([]trade.Purchase, len(purchaseModels))
	for i, model := range purchaseModels {
		purchases[i] = *model.ToDomain()
	}
	return purchases, nil
}

// FindBySupplier finds purchases for a supplier within a tenant
func (r *GormPurchaseRepository) FindBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID, filter shared.Filter) ([]trade.Purchase, error) {
	var purchaseModels []models.PurchaseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PurchaseModel{}).
			Where("tenant_id = ? AND supplier_id = ?", tenantID, supplierID),
		filter,
	)

	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, err
	}

	purchases := make([]trade.Purchase, len(purchaseModels))
	for i, model := range purchaseModels {
		purchases[i] = *model.ToDomain()
	}
	return purchases, nil
}

// Save creates or updates a purchase
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *trade.Purchase) error {
	model := models.PurchaseModelFromDomain(purchase)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a purchase within a tenant
func (r *GormPurchaseRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PurchaseModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts purchases for a tenant
func (r *GormPurchaseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PurchaseModel{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByPurchaseOrderID checks if a purchase with the given order ID exists in the tenant
func (r *GormPurchaseRepository) ExistsByPurchaseOrderID(ctx context.Context, tenantID uuid.UUID, purchaseOrderID string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.PurchaseModel{}).
		Where("tenant_id = ? AND purchase_order_id = ?", tenantID, strings.TrimSpace(purchaseOrderID))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormPurchaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PurchaseSortFields, "date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPurchaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("purchase_order_id ILIKE ? OR notes ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "delivery_status":
			query = query.Where("delivery_status = ?", value)
		case "payment_method":
			query = query.Where("payment_method = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "date_from":
			query = query.Where("date >= ?", value)
		case "date_to":
			query = query.Where("date <= ?", value)
		case "outstanding":
			if value == true {
				query = query.Where("remaining_amount > 0")
			} else {
				query = query.Where("remaining_amount = 0")
			}
		}
	}

	return query
}

// Ensure GormPurchaseRepository implements PurchaseRepository
var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
