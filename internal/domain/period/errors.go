package period

import "errors"

var (
	ErrPeriodNotFound = errors.New("payroll period not found")
	ErrPeriodLocked   = errors.New("payroll period is locked")
)
