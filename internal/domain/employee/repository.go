package employee

import "context"

// EmployeeRepository persists flat employee records.
type EmployeeRepository interface {
	// Save inserts the record or replaces the stored one with the same ID.
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
	// List returns records in registration order.
	List(ctx context.Context) ([]Record, error)
}
