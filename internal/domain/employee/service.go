package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee registers a new employee, generating an ID when none is given
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees in registration order
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee applies a partial update
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee from the registry
	DeleteEmployee(ctx context.Context, id string) error

	// Import reads employee records from CSV, skipping invalid rows
	Import(ctx context.Context, r io.Reader) (ImportResult, error)

	// Export writes every employee as CSV in registration order
	Export(ctx context.Context, w io.Writer) error

	// Restore reloads persisted employees, if a repository is configured
	Restore(ctx context.Context) (int, error)
}
