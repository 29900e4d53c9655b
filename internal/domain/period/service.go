package period

import "context"

type PeriodService interface {
	GetOrCreate(ctx context.Context, year, month int) (PeriodResponse, error)
	Get(ctx context.Context, year, month int) (PeriodResponse, error)
	List(ctx context.Context) ([]PeriodResponse, error)

	// Lock and Unlock require an admin caller and are idempotent: locking a
	// locked period or unlocking an open one succeeds without side effects.
	Lock(ctx context.Context, year, month int) (PeriodResponse, error)
	Unlock(ctx context.Context, year, month int) (PeriodResponse, error)
}
