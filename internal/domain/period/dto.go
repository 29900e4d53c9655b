package period

import "time"

type PeriodResponse struct {
	ID        string     `json:"id"`
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	LockedAt  *time.Time `json:"locked_at,omitempty"`
}

func ToResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		Year:      p.Year,
		Month:     p.Month,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		LockedAt:  p.LockedAt,
	}
}
