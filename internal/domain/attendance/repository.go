package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, r Record) error
	CreateBatch(ctx context.Context, records []Record) error
	// List returns every stored record in insertion order.
	List(ctx context.Context) ([]Record, error)
}
