package statutory

import (
	"context"
	"time"

	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
)

type BracketServiceImpl struct {
	bracketRepo statutory.BracketRepository
	timeout     time.Duration
}

func NewBracketService(bracketRepo statutory.BracketRepository, timeout time.Duration) statutory.BracketService {
	return &BracketServiceImpl{bracketRepo: bracketRepo, timeout: timeout}
}

func (s *BracketServiceImpl) ListBrackets(ctx context.Context, scheme string) ([]statutory.BracketResponse, error) {
	sch := statutory.Scheme(scheme)
	if sch != statutory.SchemeSocso && sch != statutory.SchemeEIS {
		return nil, statutory.ErrUnknownScheme
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	brackets, err := s.bracketRepo.ListByScheme(ctx, sch)
	if err != nil {
		return nil, err
	}

	result := make([]statutory.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		result = append(result, statutory.ToResponse(b))
	}

	return result, nil
}
