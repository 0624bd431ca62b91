package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"code":             true,
	"name":             true,
	"contact_name":     true,
	"status":           true,
	"credit_rating":    true,
	"credit_limit":     true,
	"available_credit": true,
	"risk_category":    true,
}

// SupplierSortFields contains allowed sort fields for suppliers
var SupplierSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"code":         true,
	"name":         true,
	"contact_name": true,
	"status":       true,
	"bank_name":    true,
}

// SaleSortFields contains allowed sort fields for sales
var SaleSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"transaction_id": true,
	"customer_id":    true,
	"date":           true,
	"total":          true,
	"cash":           true,
	"credit":         true,
	"payment_method": true,
	"due_date":       true,
	"status":         true,
}

// PurchaseSortFields contains allowed sort fields for purchases
var PurchaseSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"purchase_order_id": true,
	"supplier_id":       true,
	"date":              true,
	"total":             true,
	"paid_amount":       true,
	"remaining_amount":  true,
	"due_date":          true,
	"delivery_status":   true,
	"status":            true,
}

// ChequeSortFields contains allowed sort fields for cheques
var ChequeSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"cheque_number":  true,
	"type":           true,
	"amount":         true,
	"cheque_date":    true,
	"clearance_date": true,
	"bank_name":      true,
	"status":         true,
}
