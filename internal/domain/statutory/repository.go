package statutory

import "context"

type BracketRepository interface {
	// ListByScheme returns the bracket table ordered by wage_min ascending.
	ListByScheme(ctx context.Context, scheme Scheme) ([]Bracket, error)
}
