package statutory

import "errors"

var (
	ErrUnknownScheme = errors.New("unknown statutory scheme")
)
