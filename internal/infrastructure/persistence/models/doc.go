// Package models contains the persistence models mapping the ERP record
// store's tables to the domain read models. Table and column names follow the
// store's own naming (tab-prefixed tables, 0/1 integer flags); the ToDomain
// conversions are the only place that naming leaks into this service.
package models
