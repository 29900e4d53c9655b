package period

import "time"

// Status enum
type Status string

const (
	StatusOpen   Status = "open"
	StatusLocked Status = "locked"
)

// Period is one calendar month's payroll cycle. Exactly one row exists per
// (year, month), enforced by a database uniqueness constraint.
type Period struct {
	ID        string
	Year      int
	Month     int
	Status    Status
	CreatedAt time.Time
	LockedAt  *time.Time
}

func (p Period) IsLocked() bool {
	return p.Status == StatusLocked
}
