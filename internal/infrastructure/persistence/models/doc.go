// Package models contains GORM persistence models that map domain entities
// to database tables. Embedded value collections (line items, rating and
// status histories) are serialized to jsonb columns here so the domain
// aggregates stay free of persistence concerns.
package models
