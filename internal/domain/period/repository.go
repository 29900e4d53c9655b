package period

import "context"

type PeriodRepository interface {
	// GetOrCreate finds the period for (year, month) or inserts it with
	// status open. Concurrent first-time callers race on the (year, month)
	// uniqueness constraint; losers re-read the winner's row.
	GetOrCreate(ctx context.Context, year, month int) (Period, error)

	Get(ctx context.Context, year, month int) (Period, error)
	List(ctx context.Context) ([]Period, error)

	// GetForUpdate takes a row-level lock on the period. Must run inside a
	// transaction; build, lock and unlock all serialize on this lock.
	GetForUpdate(ctx context.Context, year, month int) (Period, error)
	GetForUpdateByID(ctx context.Context, id string) (Period, error)

	UpdateStatus(ctx context.Context, id string, status Status) (Period, error)
}
