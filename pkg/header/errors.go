package header

import "errors"

var (
	ErrUnknownVariant  = errors.New("header: unknown variant")
	ErrInvalidVariants = errors.New("header: invalid variant definitions")
)
