package adjustment

import "errors"

var (
	ErrManualItemNotFound = errors.New("manual item not found")
)
