package statutory

import "context"

type BracketService interface {
	ListBrackets(ctx context.Context, scheme string) ([]BracketResponse, error)
}
