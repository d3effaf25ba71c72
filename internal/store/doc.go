// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's business rules, allowing services to be exercised
// against fakes in tests and against PostgreSQL in production.
package store
