package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormChequeRepository implements ChequeRepository using GORM
type GormChequeRepository struct {
	db *gorm.DB
}

// NewGormChequeRepository creates a new GormChequeRepository
func NewGormChequeRepository(db *gorm.DB) *GormChequeRepository {
	return &GormChequeRepository{db: db}
}

// FindByID finds a cheque by its ID
func (r *GormChequeRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Cheque, error) {
	var model models.ChequeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a cheque by ID within a tenant
func (r *GormChequeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.Cheque, error) {
	var model models.ChequeModel
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

// FindByChequeNumber finds a cheque by its number within a tenant
func (r *GormChequeRepository) FindByChequeNumber(ctx context.Context, tenantID uuid.UUID, chequeNumber string) (*finance.Cheque, error) {
	var model models.ChequeModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND cheque_number = ?", tenantID, strings.ToUpper(strings.TrimSpace(chequeNumber))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all cheques for a tenant
func (r *GormChequeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.Cheque, error) {
	var chequeModels []models.ChequeModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ChequeModel{}).Where("tenant_id = ?", tenantID), filter)

	if err := query.Find(&chequeModels).Error; err != nil {
		return nil, err
	}

	cheques := make([]finance.Cheque, len(chequeModels))
	for i, model := range chequeModels {
		cheques[i] = *model.ToDomain()
	}
	return cheques, nil
}

// FindByStatus finds cheques by status for a tenant
func (r *GormChequeRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status finance.ChequeStatus, filter shared.Filter) ([]finance.Cheque, error) {
	var chequeModels []models.ChequeModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ChequeModel{}).
			Where("tenant_id = ? AND status = ?", tenantID, status),
		filter,
	)

	if err := query.Find(&chequeModels).Error; err != nil {
		return nil, err
	}

	cheques := make([]finance.Cheque, len(chequeModels))
	for i, model := range chequeModels {
		cheques[i] = *model.ToDomain()
	}
	return cheques, nil
}

// Save creates or updates a cheque
func (r *GormChequeRepository) Save(ctx context.Context, cheque *finance.Cheque) error {
	model := models.ChequeModelFromDomain(cheque)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a cheque within a tenant
func (r *GormChequeRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ChequeModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts cheques for a tenant
func (r *GormChequeRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ChequeModel{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByChequeNumber checks if a cheque with the given number exists in the tenant
func (r *GormChequeRepository) ExistsByChequeNumber(ctx context.Context, tenantID uuid.UUID, chequeNumber string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.ChequeModel{}).
		Where("tenant_id = ? AND cheque_number = ?", tenantID, strings.ToUpper(strings.TrimSpace(chequeNumber)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsBySupplier checks if any cheque references the given supplier
func (r *GormChequeRepository) ExistsBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ChequeModel{}).
		Where("tenant_id = ? AND supplier_id = ?", tenantID, supplierID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormChequeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ChequeSortFields, "cheque_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormChequeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("cheque_number ILIKE ? OR bank_name ILIKE ? OR notes ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "transaction_type":
			query = query.Where("transaction_type = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "bank_name":
			query = query.Where("bank_name = ?", value)
		case "date_from":
			query = query.Where("cheque_date >= ?", value)
		case "date_to":
			query = query.Where("cheque_date <= ?", value)
		case "overdue":
			if overdue, ok := value.(bool); ok && overdue {
				cutoff := time.Now().AddDate(0, 0, -30)
				query = query.Where("status = ? AND cheque_date < ?", finance.ChequeStatusPending, cutoff)
			}
		}
	}

	return query
}

// Ensure GormChequeRepository implements ChequeRepository
var _ finance.ChequeRepository = (*GormChequeRepository)(nil)
